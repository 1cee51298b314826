package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	goalModel "github.com/hong13131/godlife/internal/goal/model"
	"github.com/hong13131/godlife/pkg/civil"
)

type testGoal struct {
	ID          string     `gorm:"primaryKey;column:id"`
	UserID      string     `gorm:"column:user_id;not null"`
	TeamID      *string    `gorm:"column:team_id"`
	Title       string     `gorm:"column:title;not null"`
	TargetCount int        `gorm:"column:target_count;not null"`
	Unit        string     `gorm:"column:unit;not null"`
	Category    *string    `gorm:"column:category"`
	Notes       *string    `gorm:"column:notes"`
	Status      *string    `gorm:"column:status"`
	Month       time.Time  `gorm:"column:month;type:date;not null"`
	StartDate   *time.Time `gorm:"column:start_date;type:date"`
	EndDate     *time.Time `gorm:"column:end_date;type:date"`
	CreatedAt   time.Time  `gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;default:CURRENT_TIMESTAMP"`
}

func (testGoal) TableName() string {
	return "goals"
}

type testCheck struct {
	ID        string    `gorm:"primaryKey;column:id"`
	GoalID    string    `gorm:"column:goal_id;not null;uniqueIndex:idx_checks_goal_date"`
	Date      time.Time `gorm:"column:date;type:date;not null;uniqueIndex:idx_checks_goal_date"`
	Value     float64   `gorm:"column:value;not null;default:1"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (testCheck) TableName() string {
	return "checks"
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&testGoal{}, &testCheck{})
	require.NoError(t, err)

	return db
}

func seedGoal(t *testing.T, repo Repository, userID uuid.UUID, title string, month civil.Date) *goalModel.Goal {
	t.Helper()
	goal := &goalModel.Goal{
		UserID:      userID,
		Title:       title,
		TargetCount: 10,
		Unit:        "times",
		Month:       month,
	}
	require.NoError(t, repo.Create(context.Background(), goal))
	return goal
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())

		month, _ := civil.ParseMonth("2025-09")
		goal := &goalModel.Goal{
			UserID:      uuid.New(),
			Title:       "Run",
			TargetCount: 10,
			Unit:        "km",
			Month:       month,
		}

		err := repo.Create(ctx, goal)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, goal.ID)

		var count int64
		db.Model(&testGoal{}).Where("title = ?", "Run").Count(&count)
		assert.Equal(t, int64(1), count)
	})
}

func TestRepository_ListByMonth(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by owner and month, newest first", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())
		userID := uuid.New()

		sep, _ := civil.ParseMonth("2025-09")
		oct, _ := civil.ParseMonth("2025-10")

		first := seedGoal(t, repo, userID, "Run", sep)
		db.Model(&testGoal{}).Where("id = ?", first.ID.String()).
			Update("created_at", time.Now().Add(-time.Hour))
		second := seedGoal(t, repo, userID, "Read", sep)
		seedGoal(t, repo, userID, "Swim", oct)
		seedGoal(t, repo, uuid.New(), "Other", sep)

		goals, err := repo.ListByMonth(ctx, userID, sep)

		require.NoError(t, err)
		require.Len(t, goals, 2)
		assert.Equal(t, second.ID, goals[0].ID)
		assert.Equal(t, first.ID, goals[1].ID)
	})

	t.Run("includes checks", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())
		userID := uuid.New()

		sep, _ := civil.ParseMonth("2025-09")
		goal := seedGoal(t, repo, userID, "Run", sep)

		day, _ := civil.ParseDate("2025-09-03")
		db.Exec("INSERT INTO checks (id, goal_id, date, value) VALUES (?, ?, ?, ?)",
			uuid.New().String(), goal.ID.String(), day.Time(), 2.0)

		goals, err := repo.ListByMonth(ctx, userID, sep)

		require.NoError(t, err)
		require.Len(t, goals, 1)
		require.Len(t, goals[0].Checks, 1)
		assert.Equal(t, 2.0, goals[0].Checks[0].Value)
		assert.Equal(t, "2025-09-03", goals[0].Checks[0].Date.String())
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())

		sep, _ := civil.ParseMonth("2025-09")
		goals, err := repo.ListByMonth(ctx, uuid.New(), sep)

		require.NoError(t, err)
		assert.NotNil(t, goals)
		assert.Empty(t, goals)
	})
}

func TestRepository_GetOwned(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())
		userID := uuid.New()

		sep, _ := civil.ParseMonth("2025-09")
		goal := seedGoal(t, repo, userID, "Run", sep)

		found, err := repo.GetOwned(ctx, userID, goal.ID)

		require.NoError(t, err)
		assert.Equal(t, goal.ID, found.ID)
		assert.Equal(t, "Run", found.Title)
	})

	t.Run("not owned", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())

		sep, _ := civil.ParseMonth("2025-09")
		goal := seedGoal(t, repo, uuid.New(), "Run", sep)

		found, err := repo.GetOwned(ctx, uuid.New(), goal.ID)

		assert.Nil(t, found)
		assert.ErrorIs(t, err, goalModel.ErrGoalNotFound)
	})
}

func TestRepository_UpdateOwned(t *testing.T) {
	ctx := context.Background()

	t.Run("applies updates", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())
		userID := uuid.New()

		sep, _ := civil.ParseMonth("2025-09")
		goal := seedGoal(t, repo, userID, "Run", sep)

		updated, err := repo.UpdateOwned(ctx, userID, goal.ID, map[string]interface{}{
			"title":        "Run far",
			"target_count": 20,
		})

		require.NoError(t, err)
		assert.Equal(t, "Run far", updated.Title)
		assert.Equal(t, 20, updated.TargetCount)
		assert.Equal(t, "times", updated.Unit)
	})

	t.Run("empty updates returns current goal", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())
		userID := uuid.New()

		sep, _ := civil.ParseMonth("2025-09")
		goal := seedGoal(t, repo, userID, "Run", sep)

		updated, err := repo.UpdateOwned(ctx, userID, goal.ID, map[string]interface{}{})

		require.NoError(t, err)
		assert.Equal(t, goal.ID, updated.ID)
	})

	t.Run("not owned", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())

		sep, _ := civil.ParseMonth("2025-09")
		goal := seedGoal(t, repo, uuid.New(), "Run", sep)

		updated, err := repo.UpdateOwned(ctx, uuid.New(), goal.ID, map[string]interface{}{
			"title": "Stolen",
		})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, goalModel.ErrGoalNotFound)

		var row testGoal
		db.Where("id = ?", goal.ID.String()).First(&row)
		assert.Equal(t, "Run", row.Title)
	})
}

func TestRepository_DeleteOwned(t *testing.T) {
	ctx := context.Background()

	t.Run("removes goal and its checks", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())
		userID := uuid.New()

		sep, _ := civil.ParseMonth("2025-09")
		goal := seedGoal(t, repo, userID, "Run", sep)
		day, _ := civil.ParseDate("2025-09-03")
		db.Exec("INSERT INTO checks (id, goal_id, date, value) VALUES (?, ?, ?, ?)",
			uuid.New().String(), goal.ID.String(), day.Time(), 1.0)

		err := repo.DeleteOwned(ctx, userID, goal.ID)

		require.NoError(t, err)
		var goalCount, checkCount int64
		db.Model(&testGoal{}).Count(&goalCount)
		db.Model(&testCheck{}).Count(&checkCount)
		assert.Equal(t, int64(0), goalCount)
		assert.Equal(t, int64(0), checkCount)
	})

	t.Run("not owned is a silent no-op", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())

		sep, _ := civil.ParseMonth("2025-09")
		goal := seedGoal(t, repo, uuid.New(), "Run", sep)

		err := repo.DeleteOwned(ctx, uuid.New(), goal.ID)

		require.NoError(t, err)
		var count int64
		db.Model(&testGoal{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	teamModel "github.com/hong13131/godlife/internal/team/model"
	"github.com/hong13131/godlife/internal/team/repository"
	userModel "github.com/hong13131/godlife/internal/user/model"
	userRepository "github.com/hong13131/godlife/internal/user/repository"
)

type testUser struct {
	ID         string    `gorm:"primaryKey;column:id"`
	AuthUserID string    `gorm:"column:auth_user_id;not null;uniqueIndex"`
	Email      string    `gorm:"column:email;not null"`
	Name       *string   `gorm:"column:name"`
	Role       string    `gorm:"column:role;not null;default:MEMBER"`
	TeamID     *string   `gorm:"column:team_id"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (testUser) TableName() string {
	return "users"
}

type testTeam struct {
	ID         string    `gorm:"primaryKey;column:id"`
	Name       string    `gorm:"column:name;not null"`
	InviteCode string    `gorm:"column:invite_code;not null;uniqueIndex"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (testTeam) TableName() string {
	return "teams"
}

func setupService(t *testing.T) (Service, *gorm.DB, userRepository.Repository) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&testUser{}, &testTeam{})
	require.NoError(t, err)

	logger := zap.NewNop().Sugar()
	userRepo := userRepository.New(db, logger)
	svc := New(repository.New(db, logger), userRepo, db, logger)
	return svc, db, userRepo
}

func seedUser(t *testing.T, userRepo userRepository.Repository, authID string) *userModel.User {
	t.Helper()
	user, err := userRepo.FindOrCreateByAuthID(context.Background(), authID, authID+"@example.com", nil)
	require.NoError(t, err)
	return user
}

func reload(t *testing.T, userRepo userRepository.Repository, user *userModel.User) *userModel.User {
	t.Helper()
	fresh, err := userRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	return fresh
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creator becomes admin", func(t *testing.T) {
		svc, _, userRepo := setupService(t)
		caller := seedUser(t, userRepo, "auth-1")

		team, err := svc.Create(ctx, caller, "godlife")

		require.NoError(t, err)
		assert.Equal(t, "godlife", team.Name)
		assert.Len(t, team.InviteCode, 8)

		fresh := reload(t, userRepo, caller)
		require.NotNil(t, fresh.TeamID)
		assert.Equal(t, team.ID, *fresh.TeamID)
		assert.Equal(t, userModel.RoleAdmin, fresh.Role)
	})

	t.Run("empty name", func(t *testing.T) {
		svc, _, userRepo := setupService(t)
		caller := seedUser(t, userRepo, "auth-1")

		team, err := svc.Create(ctx, caller, "")

		assert.Nil(t, team)
		assert.ErrorIs(t, err, teamModel.ErrInvalidTeamName)
	})

	t.Run("already in a team", func(t *testing.T) {
		svc, _, userRepo := setupService(t)
		caller := seedUser(t, userRepo, "auth-1")

		_, err := svc.Create(ctx, caller, "first")
		require.NoError(t, err)

		team, err := svc.Create(ctx, reload(t, userRepo, caller), "second")

		assert.Nil(t, team)
		assert.ErrorIs(t, err, teamModel.ErrAlreadyInTeam)
	})
}

func TestService_RotateInvite(t *testing.T) {
	ctx := context.Background()

	t.Run("admin rotates the code", func(t *testing.T) {
		svc, _, userRepo := setupService(t)
		caller := seedUser(t, userRepo, "auth-1")

		created, err := svc.Create(ctx, caller, "godlife")
		require.NoError(t, err)

		invite, err := svc.RotateInvite(ctx, reload(t, userRepo, caller))

		require.NoError(t, err)
		assert.Equal(t, created.ID, invite.ID)
		assert.Len(t, invite.InviteCode, 8)
		assert.NotEqual(t, created.InviteCode, invite.InviteCode)
	})

	t.Run("member is rejected", func(t *testing.T) {
		svc, _, userRepo := setupService(t)
		admin := seedUser(t, userRepo, "auth-1")
		member := seedUser(t, userRepo, "auth-2")

		created, err := svc.Create(ctx, admin, "godlife")
		require.NoError(t, err)
		_, err = svc.Join(ctx, member, created.InviteCode)
		require.NoError(t, err)

		invite, err := svc.RotateInvite(ctx, reload(t, userRepo, member))

		assert.Nil(t, invite)
		assert.ErrorIs(t, err, teamModel.ErrNotAdmin)
	})
}

func TestService_Join(t *testing.T) {
	ctx := context.Background()

	t.Run("joins as member", func(t *testing.T) {
		svc, _, userRepo := setupService(t)
		admin := seedUser(t, userRepo, "auth-1")
		joiner := seedUser(t, userRepo, "auth-2")

		created, err := svc.Create(ctx, admin, "godlife")
		require.NoError(t, err)

		resp, err := svc.Join(ctx, joiner, created.InviteCode)

		require.NoError(t, err)
		assert.True(t, resp.OK)
		assert.Equal(t, created.ID, resp.TeamID)

		fresh := reload(t, userRepo, joiner)
		require.NotNil(t, fresh.TeamID)
		assert.Equal(t, created.ID, *fresh.TeamID)
		assert.Equal(t, userModel.RoleMember, fresh.Role)
	})

	t.Run("invite code wins over current membership", func(t *testing.T) {
		svc, _, userRepo := setupService(t)
		adminA := seedUser(t, userRepo, "auth-1")
		adminB := seedUser(t, userRepo, "auth-2")

		teamA, err := svc.Create(ctx, adminA, "team-a")
		require.NoError(t, err)
		teamB, err := svc.Create(ctx, adminB, "team-b")
		require.NoError(t, err)

		// Admin of team A switches to team B and is demoted.
		resp, err := svc.Join(ctx, reload(t, userRepo, adminA), teamB.InviteCode)

		require.NoError(t, err)
		assert.Equal(t, teamB.ID, resp.TeamID)

		fresh := reload(t, userRepo, adminA)
		require.NotNil(t, fresh.TeamID)
		assert.Equal(t, teamB.ID, *fresh.TeamID)
		assert.Equal(t, userModel.RoleMember, fresh.Role)
		assert.NotEqual(t, teamA.ID, *fresh.TeamID)
	})

	t.Run("invalid invite code", func(t *testing.T) {
		svc, _, userRepo := setupService(t)
		joiner := seedUser(t, userRepo, "auth-1")

		resp, err := svc.Join(ctx, joiner, "nope")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
	})
}

func TestService_Leave(t *testing.T) {
	ctx := context.Background()

	t.Run("clears membership, team survives", func(t *testing.T) {
		svc, db, userRepo := setupService(t)
		caller := seedUser(t, userRepo, "auth-1")

		_, err := svc.Create(ctx, caller, "godlife")
		require.NoError(t, err)

		err = svc.Leave(ctx, reload(t, userRepo, caller))

		require.NoError(t, err)
		fresh := reload(t, userRepo, caller)
		assert.Nil(t, fresh.TeamID)
		assert.Equal(t, userModel.RoleMember, fresh.Role)

		// The team remains even without members.
		var count int64
		db.Model(&testTeam{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("no team", func(t *testing.T) {
		svc, _, userRepo := setupService(t)
		caller := seedUser(t, userRepo, "auth-1")

		err := svc.Leave(ctx, caller)

		assert.ErrorIs(t, err, teamModel.ErrNoTeam)
	})
}

func TestService_Rename(t *testing.T) {
	ctx := context.Background()

	t.Run("admin renames the team", func(t *testing.T) {
		svc, _, userRepo := setupService(t)
		caller := seedUser(t, userRepo, "auth-1")

		created, err := svc.Create(ctx, caller, "godlife")
		require.NoError(t, err)

		team, err := svc.Rename(ctx, reload(t, userRepo, caller), "better life")

		require.NoError(t, err)
		assert.Equal(t, created.ID, team.ID)
		assert.Equal(t, "better life", team.Name)
	})

	t.Run("member is rejected", func(t *testing.T) {
		svc, _, userRepo := setupService(t)
		admin := seedUser(t, userRepo, "auth-1")
		member := seedUser(t, userRepo, "auth-2")

		created, err := svc.Create(ctx, admin, "godlife")
		require.NoError(t, err)
		_, err = svc.Join(ctx, member, created.InviteCode)
		require.NoError(t, err)

		team, err := svc.Rename(ctx, reload(t, userRepo, member), "hijack")

		assert.Nil(t, team)
		assert.ErrorIs(t, err, teamModel.ErrNotAdmin)
	})

	t.Run("empty name", func(t *testing.T) {
		svc, _, userRepo := setupService(t)
		caller := seedUser(t, userRepo, "auth-1")

		team, err := svc.Rename(ctx, caller, "")

		assert.Nil(t, team)
		assert.ErrorIs(t, err, teamModel.ErrInvalidTeamName)
	})

	t.Run("no team", func(t *testing.T) {
		svc, _, userRepo := setupService(t)
		caller := seedUser(t, userRepo, "auth-1")

		team, err := svc.Rename(ctx, caller, "better life")

		assert.Nil(t, team)
		assert.ErrorIs(t, err, teamModel.ErrNoTeam)
	})
}

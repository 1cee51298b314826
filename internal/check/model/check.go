package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hong13131/godlife/pkg/civil"
)

// Check is one day's recorded progress against a goal.
// Matches the checks table schema; at most one row per (goal_id, date).
type Check struct {
	ID        uuid.UUID  `gorm:"primaryKey;column:id;type:uuid"                                      json:"id"`
	GoalID    uuid.UUID  `gorm:"column:goal_id;type:uuid;not null;uniqueIndex:idx_checks_goal_date"  json:"goalId"`
	Date      civil.Date `gorm:"column:date;type:date;not null;uniqueIndex:idx_checks_goal_date"     json:"date"`
	Value     float64    `gorm:"column:value;not null;default:1"                                     json:"value"`
	CreatedAt time.Time  `gorm:"column:created_at;type:timestamptz;not null;default:now()"           json:"createdAt"`
	UpdatedAt time.Time  `gorm:"column:updated_at;type:timestamptz;not null;default:now()"           json:"-"`
}

// TableName specifies the table name for GORM.
func (Check) TableName() string {
	return "checks"
}

// BeforeCreate assigns the primary key before insert.
func (c *Check) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

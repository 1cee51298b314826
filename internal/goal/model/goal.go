package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	checkModel "github.com/hong13131/godlife/internal/check/model"
	"github.com/hong13131/godlife/pkg/civil"
)

// Goal represents a user-owned monthly target.
// Matches the goals table schema.
type Goal struct {
	ID          uuid.UUID         `gorm:"primaryKey;column:id;type:uuid"                            json:"id"`
	UserID      uuid.UUID         `gorm:"column:user_id;type:uuid;not null;index:idx_goals_user_id" json:"userId"`
	TeamID      *uuid.UUID        `gorm:"column:team_id;type:uuid"                                  json:"teamId"`
	Title       string            `gorm:"column:title;type:varchar(255);not null"                   json:"title"`
	TargetCount int               `gorm:"column:target_count;not null"                              json:"targetCount"`
	Unit        string            `gorm:"column:unit;type:varchar(64);not null"                     json:"unit"`
	Category    *string           `gorm:"column:category;type:varchar(64)"                          json:"category"`
	Notes       *string           `gorm:"column:notes;type:text"                                    json:"notes"`
	Status      *string           `gorm:"column:status;type:varchar(32)"                            json:"status"`
	Month       civil.Date        `gorm:"column:month;type:date;not null;index:idx_goals_month"     json:"month"`
	StartDate   *civil.Date       `gorm:"column:start_date;type:date"                               json:"startDate"`
	EndDate     *civil.Date       `gorm:"column:end_date;type:date"                                 json:"endDate"`
	CreatedAt   time.Time         `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"createdAt"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
	Checks      []checkModel.Check `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE"            json:"checks"`
}

// TableName specifies the table name for GORM.
func (Goal) TableName() string {
	return "goals"
}

// BeforeCreate assigns the primary key before insert.
func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (g *Goal) BeforeUpdate(tx *gorm.DB) error {
	g.UpdatedAt = time.Now()
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team represents a team entity in the system.
// Matches the teams table schema.
type Team struct {
	ID         uuid.UUID `gorm:"primaryKey;column:id;type:uuid"                               json:"id"`
	Name       string    `gorm:"column:name;type:varchar(255);not null"                       json:"name"`
	InviteCode string    `gorm:"column:invite_code;type:varchar(32);not null;uniqueIndex"     json:"inviteCode"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"    json:"-"`
	UpdatedAt  time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"    json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeCreate assigns the primary key before insert.
func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

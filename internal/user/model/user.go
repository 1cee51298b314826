package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is a user's role within their team.
type Role string

const (
	// RoleAdmin can rename the team and rotate its invite code.
	RoleAdmin Role = "ADMIN"
	// RoleMember is the default role.
	RoleMember Role = "MEMBER"
)

// CanManageTeam reports whether the role may perform team administration.
func (r Role) CanManageTeam() bool {
	return r == RoleAdmin
}

// User represents a user entity in the system.
// Matches the users table schema.
type User struct {
	ID         uuid.UUID  `gorm:"primaryKey;column:id;type:uuid"                             json:"id"`
	AuthUserID string     `gorm:"column:auth_user_id;type:varchar(255);not null;uniqueIndex" json:"-"`
	Email      string     `gorm:"column:email;type:varchar(255);not null"                    json:"email"`
	Name       *string    `gorm:"column:name;type:varchar(255)"                              json:"name"`
	Role       Role       `gorm:"column:role;type:varchar(16);not null;default:MEMBER"       json:"role"`
	TeamID     *uuid.UUID `gorm:"column:team_id;type:uuid;index:idx_users_team_id"           json:"teamId"`
	CreatedAt  time.Time  `gorm:"column:created_at;type:timestamptz;not null;default:now()"  json:"-"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;type:timestamptz;not null;default:now()"  json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns the primary key before insert.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email    string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string    `gorm:"size:255;not null" json:"-"`

	RoleID *uuid.UUID `gorm:"type:uuid" json:"role_id"`
	Role   *Role      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"role,omitempty"`

	Profile *Profile `gorm:"constraint:OnDelete:CASCADE;" json:"profile,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// RoleName resolve o papel do usuário uma única vez; usuários sem role
// (role removida) são tratados como "user".
func (u *User) RoleName() RoleName {
	if u.Role == nil {
		return RoleUser
	}
	return RoleName(u.Role.Name)
}

func (u *User) IsAdmin() bool {
	return u.RoleName() == RoleAdmin
}

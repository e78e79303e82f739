package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Role is the closed set of account classifications used by the access gates.
type Role string

const (
	RoleUnset   Role = ""
	RoleOwner   Role = "owner"
	RoleStudent Role = "student"
)

// ParseRole accepts only the known role values.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return RoleUnset, fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	switch r {
	case RoleUnset, RoleOwner, RoleStudent:
		return true
	}
	return false
}

func (r Role) String() string {
	if r == RoleUnset {
		return "unset"
	}
	return string(r)
}

type User struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Username  string         `json:"username" gorm:"uniqueIndex;not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"`
	Role      Role           `json:"role" gorm:"type:varchar(20);not null;default:''"`
	AvatarURL string         `json:"avatar"`
	IsActive  bool           `json:"-" gorm:"not null;default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// OwnerID makes a profile owned by the account itself.
func (u *User) OwnerID() uint {
	if u == nil {
		return 0
	}
	return u.ID
}

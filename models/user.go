package models

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSubAdmin Role = "subadmin"
	RoleClient   Role = "client"
)

// User covers all three roles. Client-only fields (targets, assignment)
// stay zero for admins and subadmins; Terminated applies to subadmins only.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:180;not null" json:"name"`
	Email        string `gorm:"uniqueIndex;size:180;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Role         Role   `gorm:"size:20;not null;index" json:"role"`

	// Cumulative goals; FixedAmount wins over TargetAmount when > 0.
	TargetAmount int64 `gorm:"not null;default:0" json:"target_amount"`
	FixedAmount  int64 `gorm:"not null;default:0" json:"fixed_amount"`

	AssignedSubAdminID *uint `gorm:"index" json:"assigned_sub_admin_id,omitempty"`

	Terminated bool `gorm:"not null;default:false" json:"terminated"`

	// Kept for admin reference only, never returned to other roles.
	InitialPassword string `gorm:"size:120" json:"initial_password,omitempty"`

	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

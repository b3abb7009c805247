// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Plan identifies a creator's subscription tier.
type Plan string

const (
	// PlanFree is the default tier with a capped block count.
	PlanFree Plan = "free"
	// PlanPro removes the free-tier block cap.
	PlanPro Plan = "pro"
)

// Valid reports whether the plan is a known tier.
func (p Plan) Valid() bool {
	return p == PlanFree || p == PlanPro
}

// User represents a creator account. The handle doubles as the public
// profile slug (gotolinks.me/{handle}).
type User struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	Email     string         `gorm:"size:254;uniqueIndex;not null" json:"email"`
	FirstName string         `gorm:"size:80" json:"first_name"`
	LastName  string         `gorm:"size:80" json:"last_name"`
	Handle    string         `gorm:"size:30;uniqueIndex;not null" json:"handle"`
	Plan      Plan           `gorm:"type:varchar(10);not null;default:'free'" json:"plan"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// FullName returns the display name composed from first and last name.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

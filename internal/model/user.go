package model

import (
	"time"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is the slice of the account aggregate this service touches: identity
// for rankings and the aggregate point total the score worker maintains.
// Registration, wallets and the rest live in the account service.
type User struct {
	ID        string    `gorm:"primarykey;size:26" json:"id"`
	Name      string    `json:"name" gorm:"size:64;not null"`
	Email     string    `json:"email" gorm:"size:128;not null;uniqueIndex"`
	Nickname  string    `json:"nickname" gorm:"size:32;not null"`
	Role      Role      `json:"role" gorm:"type:varchar(16);not null;default:'USER'"`
	Point     int       `json:"point" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package domain

import (
	"time"
)

type DashMemberStatus string

const (
	DashMemberStatusActive   DashMemberStatus = "ACTIVE"
	DashMemberStatusInactive DashMemberStatus = "INACTIVE"
)

// DashMember é a conta da marca cadastrada no backend dash
type DashMember struct {
	ID          string           `json:"id"`
	LoginID     string           `json:"login_id"`
	Name        string           `json:"name"`
	Role        string           `json:"role"`
	Status      DashMemberStatus `json:"status"`
	LastLoginAt *time.Time       `json:"last_login_at"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

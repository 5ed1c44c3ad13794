package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type LoginRequest struct {
	LoginID  string `json:"login_id"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token  string      `json:"token"`
	Member *DashMember `json:"member"`
}

type Claims struct {
	DashMemberID string `json:"dash_member_id"`
	LoginID      string `json:"login_id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}

package models

import "time"

// RoleAdmin grants access to the administrator API
const RoleAdmin = "admin"

// RoleAssignment links an identity-provider subject to a role
type RoleAssignment struct {
	UserID    string
	Role      string
	CreatedAt time.Time
}

package repository

import (
	"fmt"

	"weddingrsvp/internal/database"
	"weddingrsvp/internal/models"
)

// RoleRepository handles role assignments for identity-provider subjects
type RoleRepository struct {
	db *database.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *database.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// HasRole checks whether userID holds role
func (r *RoleRepository) HasRole(userID, role string) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM user_roles WHERE user_id = ? AND role = ?"
	if err := r.db.QueryRow(query, userID, role).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check role: %w", err)
	}
	return count > 0, nil
}

// Grant assigns role to userID; granting an existing role is a no-op
func (r *RoleRepository) Grant(userID, role string) error {
	if _, err := r.db.Exec(r.db.Dialect.GrantRoleQuery(), userID, role); err != nil {
		return fmt.Errorf("failed to grant role: %w", err)
	}
	return nil
}

// ListByRole returns the assignments for a role, oldest first
func (r *RoleRepository) ListByRole(role string) ([]models.RoleAssignment, error) {
	query := "SELECT user_id, role, created_at FROM user_roles WHERE role = ? ORDER BY created_at, user_id"
	rows, err := r.db.Query(query, role)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}
	defer rows.Close()

	var assignments []models.RoleAssignment
	for rows.Next() {
		var a models.RoleAssignment
		if err := rows.Scan(&a.UserID, &a.Role, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

package services

import "chamaflow/internal/core/domain"

// Caller identifies the authenticated user invoking an operation.
type Caller struct {
	UserID   uint
	PersonID uint
	Role     domain.Role
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account able to sign in and own tasks. Users are immutable after registration.
type User struct {
	ID           string    // Store-assigned opaque identifier.
	Name         string    // Display name.
	Email        string    // Login identifier, unique and case-sensitive as stored.
	PasswordHash string    // bcrypt hash; never leaves the service layer.
	CreatedAt    time.Time // Timestamp of registration.
	UpdatedAt    time.Time
}

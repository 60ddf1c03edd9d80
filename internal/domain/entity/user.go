// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the only record the credential store owns.
// Records are created once and never updated or deleted.
type User struct {
	ID             int64     // Assigned by the store on creation, monotonically increasing.
	Email          string    // Unique login identifier, compared exactly as stored.
	Name           string    // Display label.
	PasswordDigest string    // Encoded salted hash of the password; never leaves the service.
	CreatedAt      time.Time // Set once by the store.
}

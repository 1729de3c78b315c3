package i

import (
	dmn "github.com/beka-birhanu/maze-explorer-api/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*dmn.User, error)
}

// RunRepo defines the interface for exploration-run persistence.
type RunRepo interface {
	// Save inserts or updates a run record.
	Save(run *dmn.Run) error

	// ByID retrieves a run by its unique ID.
	ByID(id uuid.UUID) (*dmn.Run, error)

	// ByOwner retrieves the runs started by the given user, most recent first.
	ByOwner(ownerID uuid.UUID, limit int) ([]*dmn.Run, error)
}

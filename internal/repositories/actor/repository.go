// Package actor provides the interface for imported actor persistence
package actor

//go:generate mockgen -destination=mock/mock_repository.go -package=actormock github.com/beyondvtt/vtt-importer/internal/repositories/actor Repository

import (
	"context"
	"time"

	"github.com/beyondvtt/vtt-importer/internal/entities/foundry"
)

// StoredActor wraps an imported actor document with its persistence
// metadata.
type StoredActor struct {
	ID       string `json:"id"`
	OwnerID  string `json:"ownerId,omitempty"`
	SourceID int    `json:"sourceId"`

	Actor *foundry.Actor `json:"actor"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Repository defines the interface for actor persistence
type Repository interface {
	// Create creates a new stored actor
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if an actor with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a stored actor by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the actor doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetBySourceID retrieves the stored actor imported from a source
	// character ID
	// Returns errors.NotFound if no import exists for that source
	GetBySourceID(ctx context.Context, input GetBySourceIDInput) (*GetBySourceIDOutput, error)

	// Update replaces an existing stored actor
	// Returns errors.NotFound if the actor doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a stored actor by ID
	// Returns errors.NotFound if the actor doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwnerID retrieves all stored actors for an owner
	// Returns errors.InvalidArgument for empty owner IDs
	ListByOwnerID(ctx context.Context, input ListByOwnerIDInput) (*ListByOwnerIDOutput, error)
}

// CreateInput defines the input for creating a stored actor
type CreateInput struct {
	Actor *StoredActor
}

// CreateOutput defines the output for creating a stored actor
type CreateOutput struct {
	Actor *StoredActor
}

// GetInput defines the input for getting a stored actor
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a stored actor
type GetOutput struct {
	Actor *StoredActor
}

// GetBySourceIDInput defines the input for the source-ID lookup
type GetBySourceIDInput struct {
	SourceID int
}

// GetBySourceIDOutput defines the output for the source-ID lookup
type GetBySourceIDOutput struct {
	Actor *StoredActor
}

// UpdateInput defines the input for updating a stored actor
type UpdateInput struct {
	Actor *StoredActor
}

// UpdateOutput defines the output for updating a stored actor
type UpdateOutput struct {
	Actor *StoredActor
}

// DeleteInput defines the input for deleting a stored actor
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a stored actor
type DeleteOutput struct{}

// ListByOwnerIDInput defines the input for listing an owner's actors
type ListByOwnerIDInput struct {
	OwnerID string
}

// ListByOwnerIDOutput defines the output for listing an owner's actors
type ListByOwnerIDOutput struct {
	Actors []*StoredActor
}

// Package importer defines the interface for character import operations
package importer

//go:generate mockgen -destination=mock/mock_service.go -package=importermock github.com/beyondvtt/vtt-importer/internal/services/importer Service

import (
	"context"

	"github.com/beyondvtt/vtt-importer/internal/entities/beyond"
	"github.com/beyondvtt/vtt-importer/internal/entities/foundry"
	"github.com/beyondvtt/vtt-importer/internal/repositories/actor"
	"github.com/beyondvtt/vtt-importer/internal/transformer"
)

// Service defines the interface for character import operations
type Service interface {
	// ImportCharacter converts a source character into a stored actor.
	// The source record is fetched when Source is nil.
	ImportCharacter(ctx context.Context, input *ImportCharacterInput) (*ImportCharacterOutput, error)

	// ImportSpells converts a character's spells into standalone items
	// without storing anything.
	ImportSpells(ctx context.Context, input *ImportSpellsInput) (*ImportSpellsOutput, error)

	// ImportItems converts a character's inventory into standalone items
	// without storing anything.
	ImportItems(ctx context.Context, input *ImportItemsInput) (*ImportItemsOutput, error)

	// GetActor retrieves a previously imported actor
	GetActor(ctx context.Context, input *GetActorInput) (*GetActorOutput, error)

	// ListActors lists an owner's imported actors
	ListActors(ctx context.Context, input *ListActorsInput) (*ListActorsOutput, error)

	// DeleteActor deletes a previously imported actor
	DeleteActor(ctx context.Context, input *DeleteActorInput) (*DeleteActorOutput, error)
}

// ImportCharacterInput defines the request for importing a character
type ImportCharacterInput struct {
	// CharacterID identifies the source record to fetch. Ignored when
	// Source is provided.
	CharacterID string

	// Source is a pre-fetched character record, for file-based imports.
	Source *beyond.Character

	// OwnerID associates the stored actor with a user. Optional.
	OwnerID string

	// Options controls the transformation. Zero value means defaults.
	Options transformer.Options

	// Store persists the assembled actor. When false the import is a
	// dry run and only the document is returned.
	Store bool
}

// ImportCharacterOutput defines the response for importing a character
type ImportCharacterOutput struct {
	Actor    *foundry.Actor
	Stored   *actor.StoredActor
	Warnings []transformer.Warning
}

// ImportSpellsInput defines the request for a standalone spell import
type ImportSpellsInput struct {
	CharacterID string
	Source      *beyond.Character
	Options     transformer.Options
}

// ImportSpellsOutput defines the response for a standalone spell import
type ImportSpellsOutput struct {
	Items    []foundry.Item
	Warnings []transformer.Warning
}

// ImportItemsInput defines the request for a standalone inventory import
type ImportItemsInput struct {
	CharacterID string
	Source      *beyond.Character
	Options     transformer.Options
}

// ImportItemsOutput defines the response for a standalone inventory import
type ImportItemsOutput struct {
	Items    []foundry.Item
	Warnings []transformer.Warning
}

// GetActorInput defines the request for retrieving a stored actor
type GetActorInput struct {
	ID string
}

// GetActorOutput defines the response for retrieving a stored actor
type GetActorOutput struct {
	Actor *actor.StoredActor
}

// ListActorsInput defines the request for listing an owner's actors
type ListActorsInput struct {
	OwnerID string
}

// ListActorsOutput defines the response for listing an owner's actors
type ListActorsOutput struct {
	Actors []*actor.StoredActor
}

// DeleteActorInput defines the request for deleting a stored actor
type DeleteActorInput struct {
	ID string
}

// DeleteActorOutput defines the response for deleting a stored actor
type DeleteActorOutput struct{}

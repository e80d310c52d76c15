// Package importer implements the import orchestrator: fetch, assemble,
// store.
package importer

import (
	"context"
	"log/slog"

	"github.com/beyondvtt/vtt-importer/internal/clients/beyond"
	beyondentities "github.com/beyondvtt/vtt-importer/internal/entities/beyond"
	"github.com/beyondvtt/vtt-importer/internal/errors"
	"github.com/beyondvtt/vtt-importer/internal/pkg/idgen"
	actorrepo "github.com/beyondvtt/vtt-importer/internal/repositories/actor"
	"github.com/beyondvtt/vtt-importer/internal/services/importer"
	"github.com/beyondvtt/vtt-importer/internal/transformer"
)

// Config holds the dependencies for the import orchestrator
type Config struct {
	BeyondClient beyond.Client
	ActorRepo    actorrepo.Repository
	IDGenerator  idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BeyondClient == nil {
		vb.RequiredField("BeyondClient")
	}
	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	beyondClient beyond.Client
	actorRepo    actorrepo.Repository
	idGen        idgen.Generator
}

// NewOrchestrator creates a new import orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (importer.Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewPrefixed("actor")
	}

	return &orchestrator{
		beyondClient: cfg.BeyondClient,
		actorRepo:    cfg.ActorRepo,
		idGen:        idGen,
	}, nil
}

// resolveSource returns the provided record or fetches it by ID.
func (o *orchestrator) resolveSource(
	ctx context.Context, source *beyondentities.Character, characterID string,
) (*beyondentities.Character, error) {
	if source != nil {
		return source, nil
	}
	if characterID == "" {
		return nil, errors.InvalidArgument("either a source record or a character ID is required")
	}

	char, err := o.beyondClient.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch character %s", characterID)
	}
	return char, nil
}

func (o *orchestrator) ImportCharacter(
	ctx context.Context, input *importer.ImportCharacterInput,
) (*importer.ImportCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	char, err := o.resolveSource(ctx, input.Source, input.CharacterID)
	if err != nil {
		return nil, err
	}

	result, err := transformer.Assemble(char, input.Options)
	if err != nil {
		return nil, errors.Wrap(err, "failed to assemble actor")
	}

	for _, warning := range result.Warnings {
		slog.WarnContext(ctx, "import warning",
			"source_id", char.ID,
			"section", warning.Section,
			"entry", warning.Entry,
			"message", warning.Message)
	}

	output := &importer.ImportCharacterOutput{
		Actor:    result.Actor,
		Warnings: result.Warnings,
	}

	if !input.Store {
		return output, nil
	}

	stored, err := o.storeActor(ctx, char.ID, input.OwnerID, result, input.Options.UpdateExisting)
	if err != nil {
		return nil, err
	}
	output.Stored = stored

	slog.InfoContext(ctx, "imported character",
		"source_id", char.ID,
		"actor_id", stored.ID,
		"items", len(result.Actor.Items),
		"warnings", len(result.Warnings))

	return output, nil
}

// storeActor persists the assembled document. An existing import of the
// same source is an error unless updates are allowed; then the existing
// actor is replaced in place, keeping its ID.
func (o *orchestrator) storeActor(
	ctx context.Context, sourceID int, ownerID string,
	result *transformer.Result, updateExisting bool,
) (*actorrepo.StoredActor, error) {
	existing, err := o.actorRepo.GetBySourceID(ctx, actorrepo.GetBySourceIDInput{SourceID: sourceID})
	if err != nil && !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to check for existing import")
	}

	if existing != nil {
		if !updateExisting {
			return nil, errors.AlreadyExistsf(
				"character %d was already imported as actor %s", sourceID, existing.Actor.ID)
		}

		stored := &actorrepo.StoredActor{
			ID:       existing.Actor.ID,
			OwnerID:  ownerID,
			SourceID: sourceID,
			Actor:    result.Actor,
		}
		updateOutput, err := o.actorRepo.Update(ctx, actorrepo.UpdateInput{Actor: stored})
		if err != nil {
			return nil, errors.Wrap(err, "failed to update actor")
		}
		return updateOutput.Actor, nil
	}

	stored := &actorrepo.StoredActor{
		ID:       o.idGen.Generate(),
		OwnerID:  ownerID,
		SourceID: sourceID,
		Actor:    result.Actor,
	}
	createOutput, err := o.actorRepo.Create(ctx, actorrepo.CreateInput{Actor: stored})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store actor")
	}
	return createOutput.Actor, nil
}

func (o *orchestrator) ImportSpells(
	ctx context.Context, input *importer.ImportSpellsInput,
) (*importer.ImportSpellsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	char, err := o.resolveSource(ctx, input.Source, input.CharacterID)
	if err != nil {
		return nil, err
	}

	items, warnings := transformer.TransformSpells(char, input.Options)
	return &importer.ImportSpellsOutput{Items: items, Warnings: warnings}, nil
}

func (o *orchestrator) ImportItems(
	ctx context.Context, input *importer.ImportItemsInput,
) (*importer.ImportItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	char, err := o.resolveSource(ctx, input.Source, input.CharacterID)
	if err != nil {
		return nil, err
	}

	items, warnings := transformer.TransformInventory(char, input.Options)
	return &importer.ImportItemsOutput{Items: items, Warnings: warnings}, nil
}

func (o *orchestrator) GetActor(
	ctx context.Context, input *importer.GetActorInput,
) (*importer.GetActorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	output, err := o.actorRepo.Get(ctx, actorrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	return &importer.GetActorOutput{Actor: output.Actor}, nil
}

func (o *orchestrator) ListActors(
	ctx context.Context, input *importer.ListActorsInput,
) (*importer.ListActorsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	output, err := o.actorRepo.ListByOwnerID(ctx, actorrepo.ListByOwnerIDInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}
	return &importer.ListActorsOutput{Actors: output.Actors}, nil
}

func (o *orchestrator) DeleteActor(
	ctx context.Context, input *importer.DeleteActorInput,
) (*importer.DeleteActorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	if _, err := o.actorRepo.Delete(ctx, actorrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "deleted actor", "actor_id", input.ID)
	return &importer.DeleteActorOutput{}, nil
}

package actor

import (
	"context"
	"encoding/json"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/beyondvtt/vtt-importer/internal/errors"
	"github.com/beyondvtt/vtt-importer/internal/pkg/clock"
	redisclient "github.com/beyondvtt/vtt-importer/internal/redis"
)

const (
	actorKeyPrefix   = "actor:"
	sourceKeyPrefix  = "actor:source:"
	ownerIndexPrefix = "actor:owner:"

	// Error messages
	errActorNil      = "actor cannot be nil"
	errActorIDEmpty  = "actor ID cannot be empty"
	errOwnerIDEmpty  = "owner ID cannot be empty"
	errSourceIDEmpty = "source ID cannot be zero"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis actor repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed actor repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func sourceKey(sourceID int) string {
	return sourceKeyPrefix + strconv.Itoa(sourceID)
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	key := actorKeyPrefix + input.Actor.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("actor with ID %s already exists", input.Actor.ID)
	}

	stored := *input.Actor
	now := r.clock.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // No TTL for actors

	// Source lookup so re-imports of the same character can be detected
	if stored.SourceID != 0 {
		pipe.Set(ctx, sourceKey(stored.SourceID), stored.ID, 0)
	}
	if stored.OwnerID != "" {
		pipe.SAdd(ctx, ownerIndexPrefix+stored.OwnerID, stored.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create actor")
	}

	return &CreateOutput{Actor: &stored}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	key := actorKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("actor with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get actor")
	}

	var stored StoredActor
	if err := json.Unmarshal([]byte(result), &stored); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal actor")
	}

	return &GetOutput{Actor: &stored}, nil
}

func (r *redisRepository) GetBySourceID(ctx context.Context, input GetBySourceIDInput) (*GetBySourceIDOutput, error) {
	if input.SourceID == 0 {
		return nil, errors.InvalidArgument(errSourceIDEmpty)
	}

	id, err := r.client.Get(ctx, sourceKey(input.SourceID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no actor imported from source %d", input.SourceID)
		}
		return nil, errors.Wrapf(err, "failed to resolve source lookup")
	}

	getOutput, err := r.Get(ctx, GetInput{ID: id})
	if err != nil {
		if errors.IsNotFound(err) {
			// Stale lookup entry; drop it.
			r.client.Del(ctx, sourceKey(input.SourceID))
		}
		return nil, err
	}

	return &GetBySourceIDOutput{Actor: getOutput.Actor}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	key := actorKeyPrefix + input.Actor.ID

	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("actor with ID %s not found", input.Actor.ID)
		}
		return nil, errors.Wrapf(err, "failed to get actor")
	}

	var existing StoredActor
	if err := json.Unmarshal([]byte(result), &existing); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal existing actor")
	}

	stored := *input.Actor
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)

	if existing.SourceID != stored.SourceID {
		if existing.SourceID != 0 {
			pipe.Del(ctx, sourceKey(existing.SourceID))
		}
		if stored.SourceID != 0 {
			pipe.Set(ctx, sourceKey(stored.SourceID), stored.ID, 0)
		}
	}
	if existing.OwnerID != stored.OwnerID {
		if existing.OwnerID != "" {
			pipe.SRem(ctx, ownerIndexPrefix+existing.OwnerID, stored.ID)
		}
		if stored.OwnerID != "" {
			pipe.SAdd(ctx, ownerIndexPrefix+stored.OwnerID, stored.ID)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update actor")
	}

	return &UpdateOutput{Actor: &stored}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}
	stored := getOutput.Actor

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, actorKeyPrefix+input.ID)
	if stored.SourceID != 0 {
		pipe.Del(ctx, sourceKey(stored.SourceID))
	}
	if stored.OwnerID != "" {
		pipe.SRem(ctx, ownerIndexPrefix+stored.OwnerID, input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete actor")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByOwnerID(ctx context.Context, input ListByOwnerIDInput) (*ListByOwnerIDOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	indexKey := ownerIndexPrefix + input.OwnerID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get actors from index %s", indexKey)
	}

	actors := make([]*StoredActor, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// If the actor is gone, clean up the index entry.
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}
		actors = append(actors, getOutput.Actor)
	}

	return &ListByOwnerIDOutput{Actors: actors}, nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Minimal shape to pull the index fields out of a stored actor; tags
// must match repositories/actor.StoredActor
type storedActor struct {
	ID       string `json:"id"`
	OwnerID  string `json:"ownerId"`
	SourceID int    `json:"sourceId"`
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for stale actor indexes...")

	removed := 0

	// Source lookups pointing at deleted actors
	sourceKeys, err := client.Keys(ctx, "actor:source:*").Result()
	if err != nil {
		log.Fatal("Failed to scan source lookups:", err)
	}
	for _, key := range sourceKeys {
		actorID, err := client.Get(ctx, key).Result()
		if err != nil {
			continue
		}
		exists, err := client.Exists(ctx, "actor:"+actorID).Result()
		if err != nil || exists > 0 {
			continue
		}
		fmt.Printf("  removing %s -> missing actor %s\n", key, actorID)
		if err := client.Del(ctx, key).Err(); err != nil {
			log.Println("Failed to delete:", key, err)
			continue
		}
		removed++
	}

	// Owner set members pointing at deleted or corrupted actors
	ownerKeys, err := client.Keys(ctx, "actor:owner:*").Result()
	if err != nil {
		log.Fatal("Failed to scan owner indexes:", err)
	}
	for _, key := range ownerKeys {
		members, err := client.SMembers(ctx, key).Result()
		if err != nil {
			continue
		}
		for _, actorID := range members {
			data, err := client.Get(ctx, "actor:"+actorID).Result()
			if err == redis.Nil {
				fmt.Printf("  removing %s member %s (missing actor)\n", key, actorID)
				if err := client.SRem(ctx, key, actorID).Err(); err == nil {
					removed++
				}
				continue
			}
			if err != nil {
				continue
			}

			var stored storedActor
			if err := json.Unmarshal([]byte(data), &stored); err != nil {
				fmt.Printf("  actor %s has corrupted JSON, leaving in place: %v\n", actorID, err)
				continue
			}
			if stored.OwnerID != strings.TrimPrefix(key, "actor:owner:") {
				fmt.Printf("  removing %s member %s (owned by %q)\n", key, actorID, stored.OwnerID)
				if err := client.SRem(ctx, key, actorID).Err(); err == nil {
					removed++
				}
			}
		}
	}

	fmt.Printf("Done. Removed %d stale index entries.\n", removed)
}

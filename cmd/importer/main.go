// Package main is the entry point for the vtt-importer CLI
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	beyondclient "github.com/beyondvtt/vtt-importer/internal/clients/beyond"
	"github.com/beyondvtt/vtt-importer/internal/entities/beyond"
	"github.com/beyondvtt/vtt-importer/internal/orchestrators/importer"
	redisclient "github.com/beyondvtt/vtt-importer/internal/redis"
	"github.com/beyondvtt/vtt-importer/internal/repositories/actor"
	importersvc "github.com/beyondvtt/vtt-importer/internal/services/importer"
)

var (
	// Connection flags shared by all commands
	baseURL   string
	redisAddr string
)

var rootCmd = &cobra.Command{
	Use:   "vtt-importer",
	Short: "D&D Beyond character importer for virtual tabletops",
	Long:  `vtt-importer fetches D&D Beyond character sheets and converts them into actor documents ready for a virtual tabletop.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", beyondclient.DefaultBaseURL, "Character service base URL")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "localhost:6379", "Redis address for actor storage")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(spellsCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
}

// newService wires the full import stack. The Redis connection is lazy,
// so commands that never touch storage don't need a running server.
func newService() (importersvc.Service, error) {
	client, err := beyondclient.New(&beyondclient.Config{BaseURL: baseURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create character client: %w", err)
	}

	redisClient, err := redisclient.NewClient(redisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	repo, err := actor.NewRedis(&actor.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create actor repository: %w", err)
	}

	return importer.NewOrchestrator(&importer.Config{
		BeyondClient: client,
		ActorRepo:    repo,
	})
}

// loadCharacterFile reads a character sheet from disk. Both the raw
// character object and the service envelope form are accepted.
func loadCharacterFile(path string) (*beyond.Character, error) {
	data, err := os.ReadFile(path) // #nosec G304 // user-supplied path by design of a CLI
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var envelope struct {
		Data *beyond.Character `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}

	var char beyond.Character
	if err := json.Unmarshal(data, &char); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &char, nil
}

// writeJSON writes v as indented JSON to path, or stdout when path is
// empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

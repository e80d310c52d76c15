package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beyondvtt/vtt-importer/internal/entities/beyond"
	"github.com/beyondvtt/vtt-importer/internal/services/importer"
	"github.com/beyondvtt/vtt-importer/internal/transformer"
)

var (
	exportFile   string
	exportOutput string
)

var spellsCmd = &cobra.Command{
	Use:   "spells [character-id]",
	Short: "Export a character's spells as standalone items",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSpells,
}

var itemsCmd = &cobra.Command{
	Use:   "items [character-id]",
	Short: "Export a character's inventory as standalone items",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runItems,
}

func init() {
	for _, cmd := range []*cobra.Command{spellsCmd, itemsCmd} {
		cmd.Flags().StringVar(&exportFile, "file", "", "Read the character from a JSON file instead of fetching")
		cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write the items to a file instead of stdout")
	}
}

// resolveExportSource turns the positional argument or --file flag into
// the source half of an export request.
func resolveExportSource(args []string) (string, *beyond.Character, error) {
	if exportFile != "" {
		char, err := loadCharacterFile(exportFile)
		return "", char, err
	}
	if len(args) == 1 {
		return args[0], nil, nil
	}
	return "", nil, fmt.Errorf("a character ID or --file is required")
}

func printWarnings(warnings []transformer.Warning) {
	for _, w := range warnings {
		if w.Entry != "" {
			fmt.Fprintf(os.Stderr, "warning: %s (%s): %s\n", w.Section, w.Entry, w.Message)
		} else {
			fmt.Fprintf(os.Stderr, "warning: %s: %s\n", w.Section, w.Message)
		}
	}
}

func runSpells(cmd *cobra.Command, args []string) error {
	characterID, source, err := resolveExportSource(args)
	if err != nil {
		return err
	}

	service, err := newService()
	if err != nil {
		return err
	}

	output, err := service.ImportSpells(cmd.Context(), &importer.ImportSpellsInput{
		CharacterID: characterID,
		Source:      source,
		Options:     transformer.DefaultOptions(),
	})
	if err != nil {
		return err
	}

	printWarnings(output.Warnings)
	return writeJSON(exportOutput, output.Items)
}

func runItems(cmd *cobra.Command, args []string) error {
	characterID, source, err := resolveExportSource(args)
	if err != nil {
		return err
	}

	service, err := newService()
	if err != nil {
		return err
	}

	output, err := service.ImportItems(cmd.Context(), &importer.ImportItemsInput{
		CharacterID: characterID,
		Source:      source,
		Options:     transformer.DefaultOptions(),
	})
	if err != nil {
		return err
	}

	printWarnings(output.Warnings)
	return writeJSON(exportOutput, output.Items)
}

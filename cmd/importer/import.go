package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beyondvtt/vtt-importer/internal/services/importer"
	"github.com/beyondvtt/vtt-importer/internal/transformer"
)

var (
	importFile    string
	importOutput  string
	importOwner   string
	importMode    string
	importStore   bool
	importUpdate  bool
	skipSpells    bool
	skipEquipment bool
)

var importCmd = &cobra.Command{
	Use:   "import [character-id]",
	Short: "Import a character as an actor document",
	Long: `Import converts a D&D Beyond character into an actor document.

The character is fetched by ID, or read from a JSON export with --file.
By default the document is printed without being stored; pass --store
to persist it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFile, "file", "", "Read the character from a JSON file instead of fetching")
	importCmd.Flags().StringVarP(&importOutput, "output", "o", "", "Write the actor document to a file instead of stdout")
	importCmd.Flags().StringVar(&importOwner, "owner", "", "Owner ID to associate with the stored actor")
	importCmd.Flags().StringVar(&importMode, "mode", string(transformer.PreparationModePrepared), "Preparation mode for class spells (prepared, pact, always, atwill, innate)")
	importCmd.Flags().BoolVar(&importStore, "store", false, "Persist the actor document")
	importCmd.Flags().BoolVar(&importUpdate, "update", false, "Overwrite a previous import of the same character")
	importCmd.Flags().BoolVar(&skipSpells, "skip-spells", false, "Do not import spells")
	importCmd.Flags().BoolVar(&skipEquipment, "skip-equipment", false, "Do not import equipment")
}

func buildOptions() (transformer.Options, error) {
	mode, err := transformer.ParsePreparationMode(importMode)
	if err != nil {
		return transformer.Options{}, err
	}

	opts := transformer.DefaultOptions()
	opts.PreparationMode = mode
	opts.ImportSpells = !skipSpells
	opts.ImportEquipment = !skipEquipment
	opts.UpdateExisting = importUpdate
	return opts, nil
}

func runImport(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions()
	if err != nil {
		return err
	}

	input := &importer.ImportCharacterInput{
		OwnerID: importOwner,
		Options: opts,
		Store:   importStore,
	}

	switch {
	case importFile != "":
		char, err := loadCharacterFile(importFile)
		if err != nil {
			return err
		}
		input.Source = char
	case len(args) == 1:
		input.CharacterID = args[0]
	default:
		return fmt.Errorf("a character ID or --file is required")
	}

	service, err := newService()
	if err != nil {
		return err
	}

	output, err := service.ImportCharacter(cmd.Context(), input)
	if err != nil {
		return err
	}

	printWarnings(output.Warnings)

	if output.Stored != nil {
		fmt.Fprintf(os.Stderr, "stored actor %s\n", output.Stored.ID)
	}

	return writeJSON(importOutput, output.Actor)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beyondvtt/vtt-importer/internal/services/importer"
)

var getOutput string

var getCmd = &cobra.Command{
	Use:   "get <actor-id>",
	Short: "Retrieve a stored actor document",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

var listCmd = &cobra.Command{
	Use:   "list <owner-id>",
	Short: "List an owner's stored actors",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <actor-id>",
	Short: "Delete a stored actor",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	getCmd.Flags().StringVarP(&getOutput, "output", "o", "", "Write the actor document to a file instead of stdout")
}

func runGet(cmd *cobra.Command, args []string) error {
	service, err := newService()
	if err != nil {
		return err
	}

	output, err := service.GetActor(cmd.Context(), &importer.GetActorInput{ID: args[0]})
	if err != nil {
		return err
	}

	return writeJSON(getOutput, output.Actor)
}

func runList(cmd *cobra.Command, args []string) error {
	service, err := newService()
	if err != nil {
		return err
	}

	output, err := service.ListActors(cmd.Context(), &importer.ListActorsInput{OwnerID: args[0]})
	if err != nil {
		return err
	}

	if len(output.Actors) == 0 {
		fmt.Fprintln(os.Stderr, "no actors found")
		return nil
	}

	for _, stored := range output.Actors {
		name := ""
		if stored.Actor != nil {
			name = stored.Actor.Name
		}
		fmt.Printf("%s\tsource %d\t%s\n", stored.ID, stored.SourceID, name)
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	service, err := newService()
	if err != nil {
		return err
	}

	if _, err := service.DeleteActor(cmd.Context(), &importer.DeleteActorInput{ID: args[0]}); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "deleted actor %s\n", args[0])
	return nil
}

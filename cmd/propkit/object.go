package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openbim/propkit/pkg/model"
)

var flagObjectEntityType string

var addObjectCmd = &cobra.Command{
	Use:   "add-object <file> <name>",
	Short: "Add an object to a model file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession(args[0])
		if err != nil {
			return err
		}
		defer session.Close()

		objects := model.NewObjectAdapter(session)
		obj := objects.Create(flagObjectEntityType, args[1])
		if err := session.Save(""); err != nil {
			return fmt.Errorf("save model: %w", err)
		}

		if flagJSON {
			return printJSON(map[string]any{
				"id":   obj.ID(),
				"guid": obj.GUID(),
				"name": obj.Name(),
				"type": obj.EntityType(),
			})
		}
		fmt.Printf("Added %s #%d ", obj.EntityType(), obj.ID())
		nameColor.Printf("%s ", obj.Name())
		dimColor.Printf("(%s)\n", obj.GUID())
		return nil
	},
}

func init() {
	addObjectCmd.Flags().StringVar(&flagObjectEntityType, "type", "IfcWall", "entity type of the new object")
}

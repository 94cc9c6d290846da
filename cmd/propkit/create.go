package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openbim/propkit/pkg/propkit"
	"github.com/openbim/propkit/pkg/types"
)

var flagProjectName string

var createCmd = &cobra.Command{
	Use:   "create <file>",
	Short: "Create a new model file with a default project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := propkit.Create()
		defer session.Close()

		if flagProjectName != "" {
			projects := session.ByType(types.EntityProject)
			projects[0].SetAttr(types.AttrName, flagProjectName)
		}
		if err := session.Save(args[0]); err != nil {
			return fmt.Errorf("save model: %w", err)
		}
		fmt.Println("Created", args[0])
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&flagProjectName, "name", "", "project name (default: Default Project)")
}

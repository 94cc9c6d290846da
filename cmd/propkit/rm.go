package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openbim/propkit/pkg/model"
)

var rmCmd = &cobra.Command{
	Use:   "rm <file> <set-id> <prop-name>",
	Short: "Remove a property from a property or quantity set",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession(args[0])
		if err != nil {
			return err
		}
		defer session.Close()

		setID, err := parseID(args[1])
		if err != nil {
			return err
		}
		removed, err := model.NewPSetAdapter(session).RemoveProperty(setID, args[2])
		if err != nil {
			return err
		}
		if !removed {
			warnColor.Printf("No property %q in set #%d\n", args[2], setID)
			return nil
		}
		if err := session.Save(""); err != nil {
			return fmt.Errorf("save model: %w", err)
		}
		fmt.Printf("Removed %q from set #%d\n", args[2], setID)
		return nil
	},
}

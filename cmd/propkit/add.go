package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openbim/propkit/pkg/model"
	"github.com/openbim/propkit/pkg/types"
)

var addCmd = &cobra.Command{
	Use:   "add <file> <set-id> <name> <value>",
	Short: "Add a property to a property or quantity set",
	Args:  cobra.ExactArgs(4),
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
		v, err := types.CreateValue(parseRaw(args[3]),
			flagOrNil(flagValueType), flagOrNil(flagUnitType), flagOrNil(flagPrefix))
		if err != nil {
			return err
		}

		prop, err := model.NewPSetAdapter(session).AddProperty(setID, types.Property{
			Name:  args[2],
			Value: v,
		})
		if err != nil {
			return err
		}
		if err := session.Save(""); err != nil {
			return fmt.Errorf("save model: %w", err)
		}
		fmt.Printf("Added #%d %s = %s\n", prop.ID(), prop.Name(), v)
		return nil
	},
}

func init() {
	addValueFlags(addCmd)
}

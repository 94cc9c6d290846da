package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openbim/propkit/pkg/model"
)

var getCmd = &cobra.Command{
	Use:   "get <file> <prop-id>",
	Short: "Resolve and print the value of a property or quantity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession(args[0])
		if err != nil {
			return err
		}
		defer session.Close()

		propID, err := parseID(args[1])
		if err != nil {
			return err
		}
		prop, err := model.NewPropAdapter(session).ByID(propID)
		if err != nil {
			return err
		}
		v, err := prop.Value()
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(map[string]any{
				"id":    prop.ID(),
				"name":  prop.Name(),
				"value": makeValueJSON(v),
			})
		}
		nameColor.Printf("%s ", prop.Name())
		fmt.Println(v)
		return nil
	},
}

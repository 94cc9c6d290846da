package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openbim/propkit/pkg/model"
)

var propsCmd = &cobra.Command{
	Use:   "props <file> <set-id>",
	Short: "List the properties of a property or quantity set",
	Args:  cobra.ExactArgs(2),
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
		set, err := model.NewPSetAdapter(session).ByID(setID)
		if err != nil {
			return err
		}
		props, err := set.Properties()
		if err != nil {
			return err
		}

		if flagJSON {
			out := make([]map[string]any, 0, len(props))
			for _, p := range props {
				entry := map[string]any{"id": p.ID(), "name": p.Name()}
				if v, err := p.Value(); err == nil {
					entry["value"] = makeValueJSON(v)
				}
				out = append(out, entry)
			}
			return printJSON(out)
		}

		headerColor.Printf("%s #%d\n", set.Name(), set.ID())
		if len(props) == 0 {
			dimColor.Println("no properties")
			return nil
		}
		for _, p := range props {
			fmt.Printf("#%-6d ", p.ID())
			nameColor.Printf("%-30s ", p.Name())
			v, err := p.Value()
			if err != nil {
				warnColor.Println("(no value)")
				continue
			}
			fmt.Println(v)
		}
		return nil
	},
}

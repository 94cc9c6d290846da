package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagIncludeQto bool

var psetsCmd = &cobra.Command{
	Use:   "psets <file> <object-id-or-guid>",
	Short: "List the property sets of an object",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession(args[0])
		if err != nil {
			return err
		}
		defer session.Close()

		obj, err := resolveObject(session, args[1])
		if err != nil {
			return err
		}
		sets, err := obj.PSets(flagIncludeQto)
		if err != nil {
			return err
		}

		if flagJSON {
			out := make([]map[string]any, 0, len(sets))
			for _, s := range sets {
				out = append(out, map[string]any{
					"id":       s.ID(),
					"name":     s.Name(),
					"quantity": s.IsQuantitySet(),
				})
			}
			return printJSON(out)
		}

		headerColor.Printf("%s #%d\n", obj.Name(), obj.ID())
		if len(sets) == 0 {
			dimColor.Println("no property sets")
			return nil
		}
		for _, s := range sets {
			kind := "pset"
			if s.IsQuantitySet() {
				kind = "qto"
			}
			fmt.Printf("#%-6d ", s.ID())
			nameColor.Printf("%-30s ", s.Name())
			dimColor.Printf("%s\n", kind)
		}
		return nil
	},
}

func init() {
	psetsCmd.Flags().BoolVar(&flagIncludeQto, "all", false, "include quantity sets")
}

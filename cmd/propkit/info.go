package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openbim/propkit/pkg/types"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show a summary of a model file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSession(args[0])
		if err != nil {
			return err
		}
		defer session.Close()

		var (
			projectName string
			projectGUID string
		)
		if projects := session.ByType(types.EntityProject); len(projects) > 0 {
			if v, ok := projects[0].Attr(types.AttrName); ok {
				projectName, _ = v.(string)
			}
			if v, ok := projects[0].Attr(types.AttrGlobalID); ok {
				projectGUID, _ = v.(string)
			}
		}

		counts := map[string]int{
			"objects":    len(session.ByType(types.EntityObject)),
			"types":      len(session.ByType(types.EntityTypeObject)),
			"psets":      len(session.ByType(types.EntityPropertySet)),
			"qtos":       len(session.ByType(types.EntityElementQuantity)),
			"properties": len(session.ByType(types.EntityProperty)),
			"quantities": len(session.ByType(types.EntityPhysicalQuantity)),
			"units":      len(session.ByType(types.EntitySIUnit)),
		}

		if flagJSON {
			return printJSON(map[string]any{
				"file":    args[0],
				"project": map[string]string{"name": projectName, "guid": projectGUID},
				"counts":  counts,
			})
		}

		headerColor.Println(args[0])
		fmt.Printf("Project: %s ", projectName)
		dimColor.Printf("(%s)\n", projectGUID)
		fmt.Printf("Objects: %d  Types: %d\n", counts["objects"], counts["types"])
		fmt.Printf("PSets: %d  QTOs: %d\n", counts["psets"], counts["qtos"])
		fmt.Printf("Properties: %d  Quantities: %d  Units: %d\n",
			counts["properties"], counts["quantities"], counts["units"])
		return nil
	},
}

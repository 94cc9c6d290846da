package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openbim/propkit/pkg/propkit"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		if flagJSON {
			fmt.Printf("{\"version\": %q}\n", propkit.Version)
			return
		}
		fmt.Println("propkit", propkit.Version)
	},
}

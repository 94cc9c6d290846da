// Root command for the propkit CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/openbim/propkit/internal/logging"
	"github.com/openbim/propkit/internal/paths"
	"github.com/openbim/propkit/pkg/propkit"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagJSON      bool
)

var rootCmd = &cobra.Command{
	Use:     "propkit",
	Short:   "Propkit inspects and edits property data in model files",
	Version: propkit.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		logging.Initialize(logging.Config{
			Level:  cfg.GetString(cfgKeyLogLevel),
			Format: cfg.GetString(cfgKeyLogFormat),
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(addObjectCmd)
	rootCmd.AddCommand(psetsCmd)
	rootCmd.AddCommand(propsCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(rmCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > PROPKIT_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// Package cli wires prandgen's cobra commands, pflag flags, and viper
// configuration together.
package cli

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool

	// config is shared by every subcommand so that a --config file or
	// PRANDGEN_* environment variable overrides a flag default the same
	// way regardless of which command reads it.
	config = viper.New()
)

// NewRootCommand builds prandgen's root cobra command.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "prandgen",
		Short: "Generate parallel jump-ahead pseudo-random streams",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			return initConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: none)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newMultistreamCommand())
	return root
}

func initConfig() error {
	config.SetEnvPrefix("PRANDGEN")
	config.AutomaticEnv()
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	if cfgFile != "" {
		config.SetConfigFile(cfgFile)
		if err := config.ReadInConfig(); err != nil {
			return err
		}
		log.Debug().Str("file", cfgFile).Msg("loaded config file")
	}
	return nil
}

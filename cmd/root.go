package cmd

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var opts wireOptions
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "present",
		Short:         "present: store presentations and keep their names in sync",
		Long:          "present runs the presentation API server over a SQLite or TOML document store, and talks to it from the terminal: list, create, rename and remove presentations, or edit their names interactively.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			wired, err := wireApp(opts)
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app.logger != nil {
				_ = app.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Config file (default: $XDG_CONFIG_HOME/present/config.toml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newCreateCmd(app),
		newRenameCmd(app),
		newRemoveCmd(app),
		newSavePagesCmd(app),
		newNamesCmd(app),
	)

	return rootCmd
}

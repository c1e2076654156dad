package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var jsonFlag bool

	ctx := newCommandContext(&jsonFlag)

	rootCmd := &cobra.Command{
		Use:           "roomctl",
		Short:         "Room organizer operator CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Print JSON instead of tables")

	rootCmd.AddCommand(newLookupCommand(ctx))
	rootCmd.AddCommand(newArchivesCommand(ctx))
	rootCmd.AddCommand(newTablesCommand(ctx))
	rootCmd.AddCommand(newTokenCommand(ctx))

	return rootCmd
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/monday-consulting/modres/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [coordinates...]",
		Short: "Resolve module artifacts from the reactor, workspace or repository",
		Long: `Resolve module coordinates of the form group:artifact[:version] to build
artifacts. Without arguments, the declared dependencies of the current module
are resolved.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scopes, _ := cmd.Flags().GetStringSlice("scope")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			inspect, _ := cmd.Flags().GetBool("inspect")
			plain, _ := cmd.Flags().GetBool("plain")

			// If --plain is set, override output-mode to "plain"
			if plain {
				outputMode = "plain"
			}

			return c.app.Resolve(cmd.Context(), args, app.ResolveOptions{
				Scopes:     scopes,
				OutputMode: outputMode,
				Inspect:    inspect,
			})
		},
	}
	cmd.Flags().StringSliceP("scope", "s", nil, "Only resolve dependencies declared for these scopes")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, color, or plain")
	cmd.Flags().Bool("plain", false, "Use plain output mode (shorthand for --output-mode=plain)")
	cmd.Flags().BoolP("inspect", "i", false, "Dump the resolved module structure after the report")
	return cmd
}

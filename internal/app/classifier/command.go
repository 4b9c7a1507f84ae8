package classifier

import (
	"fmt"

	"github.com/chess-vn/tierank/pkg/logging"
	"github.com/chess-vn/tierank/pkg/tiers"
	"github.com/spf13/cobra"
)

// NewCommand builds the root command of a classifier binary bound to mode.
// It takes no flags or arguments; everything is asked interactively.
func NewCommand(mode, short string) *cobra.Command {
	return &cobra.Command{
		Use:           mode,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig()
			if err != nil {
				return err
			}
			if err := logging.SetLevel(config.LogLevel); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			tables, err := tiers.Default()
			if err != nil {
				return err
			}
			return New(config, tables, cmd.InOrStdin(), cmd.OutOrStdout()).Run(mode)
		},
	}
}

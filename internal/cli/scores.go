package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blaisecz/stress-detector/internal/domain"
	"github.com/blaisecz/stress-detector/internal/wellness"
)

func newScoresCmd() *cobra.Command {
	var (
		in     domain.LifestyleInput
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show lifestyle scores and health metrics without the model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateInput(in); err != nil {
				return err
			}
			profile := wellness.Profile(in)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(profile)
			}
			fmt.Fprintln(out, renderRadar(profile.Radar))
			fmt.Fprint(out, renderMetrics(profile.HealthMetrics))
			return nil
		},
	}
	lifestyleFlags(cmd, &in)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the profile as JSON")
	return cmd
}

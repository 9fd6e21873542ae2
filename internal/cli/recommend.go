package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blaisecz/stress-detector/internal/domain"
	"github.com/blaisecz/stress-detector/internal/recommendation"
)

func newRecommendCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "recommend <level>",
		Short:     "Print the recommendations for a stress level",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"High", "Medium", "Low"},
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := domain.ParseStressLevel(args[0])
			if err != nil {
				return err
			}
			catalog, err := recommendation.Default()
			if err != nil {
				return err
			}
			rec, err := catalog.For(level)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRecommendation(rec))
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blaisecz/stress-detector/internal/recommendation"
	"github.com/blaisecz/stress-detector/internal/wellness"
)

func newTipCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "tip",
		Short: "Print the wellness tip of the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now()
			if date != "" {
				parsed, err := time.Parse(time.DateOnly, date)
				if err != nil {
					return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", date)
				}
				day = parsed
			}
			catalog, err := recommendation.Default()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", titleStyle.Render("💡 Tip of the Day:"), wellness.TipOfDay(catalog.Tips(), day))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to pick the tip for (YYYY-MM-DD, default today)")
	return cmd
}

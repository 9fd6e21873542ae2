// Package cli implements the stresscheck command line tool.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/blaisecz/stress-detector/internal/domain"
)

// version is set via -ldflags at build time.
var version = "(devel)"

// NewRootCmd builds the stresscheck command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stresscheck",
		Short:         "Check a student's stress level from lifestyle answers",
		Long:          "stresscheck predicts a High, Medium or Low stress level from daily habits and prints recommendations.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAssessCmd())
	root.AddCommand(newScoresCmd())
	root.AddCommand(newRecommendCmd())
	root.AddCommand(newTipCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// lifestyleFlags binds the answer flags shared by assess and scores.
func lifestyleFlags(cmd *cobra.Command, in *domain.LifestyleInput) {
	def := domain.DefaultLifestyleInput()
	f := cmd.Flags()
	f.IntVar(&in.Age, "age", def.Age, "age in years (17-25)")
	f.IntVar(&in.SleepHours, "sleep", def.SleepHours, "sleep hours per day (1-10)")
	f.IntVar(&in.StudyHours, "study", def.StudyHours, "study hours per day (1-10)")
	f.IntVar(&in.ScreenHours, "screen", def.ScreenHours, "screen time in hours per day (1-12)")
	f.IntVar(&in.ExerciseFrequency, "exercise", def.ExerciseFrequency, "exercise sessions per week (0-7)")
	f.BoolVar(&in.SocialSupport, "social-support", def.SocialSupport, "has reliable social support")
}

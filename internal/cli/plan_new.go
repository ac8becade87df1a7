package cli

import (
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harvestbowl/cookplan/internal/project"
)

var planNewCmd = &cobra.Command{
	Use:   "new [filename]",
	Short: "Create a template plan file for the coming week",
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := "week.yaml"
		if len(args) > 0 {
			filename = args[0]
			if !strings.HasSuffix(filename, ".yaml") && !strings.HasSuffix(filename, ".yml") {
				filename += ".yaml"
			}
		}

		plan := project.TemplatePlan(nextMonday(time.Now()))
		if err := project.SavePlan(filename, plan); err != nil {
			return err
		}
		color.Green("Wrote %s", filename)
		return nil
	},
}

// nextMonday returns the first Monday strictly after t.
func nextMonday(t time.Time) time.Time {
	days := (int(time.Monday) - int(t.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return t.AddDate(0, 0, days)
}

func init() {
	planCmd.AddCommand(planNewCmd)
}

package cli

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harvestbowl/cookplan/internal/engine"
)

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "List the recipes in the reference catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		names := cat.RecipeNames()
		sort.Strings(names)

		planner := engine.New(cat)
		header := color.New(color.Bold)
		header.Println("Recipe                          Base Batch   Protein Lines")

		for _, name := range names {
			batch, _ := cat.LookupBaseBatch(name)
			items, err := planner.ProteinRequirements(name, 1)
			if err != nil {
				return err
			}
			fmt.Printf("%-32s %5.0f lbs   %d\n", name, batch.TotalPounds, len(items))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recipesCmd)
}

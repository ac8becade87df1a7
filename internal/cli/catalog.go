package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harvestbowl/cookplan/internal/model"
	"github.com/harvestbowl/cookplan/internal/project"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the reference catalog file",
}

var catalogInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the built-in catalog to a file for staff editing",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := project.DefaultCatalogPath()
		if len(args) > 0 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("catalog file %s already exists", path)
		}
		if err := project.SaveCatalog(path, model.DefaultCatalog()); err != nil {
			return err
		}
		color.Green("Wrote %s", path)
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogInitCmd)
	rootCmd.AddCommand(catalogCmd)
}

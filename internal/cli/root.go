// Package cli implements the cookplan command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harvestbowl/cookplan/internal/engine"
	"github.com/harvestbowl/cookplan/internal/model"
	"github.com/harvestbowl/cookplan/internal/project"
)

// catalogPath is set from the --catalog flag; empty means the path from
// config.json, then the default location under ~/.cookplan.
var catalogPath string

// noColor toggles ANSI color output off when set via --no-color flag.
var noColor bool

// appConfig holds the loaded application config. Commands read it for
// catalog location and generation defaults.
var appConfig = model.DefaultAppConfig()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cookplan",
	Short: "Cookplan plans production batches and generates vendor purchase orders",
	Long: `Cookplan turns recipe base batches into protein purchase orders:
scaled to the batch count, rounded to the vendor minimum, and dated
against the cook schedule.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}
		config, err := project.LoadAppConfig(project.DefaultConfigPath())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		appConfig = config
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "path to the catalog file (default ~/.cookplan/catalog.json)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// loadCatalog resolves the catalog from the --catalog flag, the
// configured catalog path, or the default location, seeding the default
// data when no file exists yet.
func loadCatalog() (*model.Catalog, error) {
	switch {
	case catalogPath != "":
		return project.LoadCatalog(catalogPath)
	case appConfig.CatalogPath != "":
		return project.LoadCatalog(appConfig.CatalogPath)
	}
	cat, _, err := project.LoadOrCreateCatalog()
	return cat, err
}

// newPlanner builds a Planner over the catalog with the configured
// default lead time applied.
func newPlanner(cat *model.Catalog) *engine.Planner {
	planner := engine.New(cat)
	if appConfig.DefaultLeadTimeDays > 0 {
		planner.SetLeadTimeDays(appConfig.DefaultLeadTimeDays)
	}
	return planner
}

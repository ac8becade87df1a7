package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harvestbowl/cookplan/internal/engine"
	"github.com/harvestbowl/cookplan/internal/export"
	"github.com/harvestbowl/cookplan/internal/model"
	"github.com/harvestbowl/cookplan/internal/project"
)

var (
	planPONumber string
	planPDFPath  string
	planXLSXPath string
)

var planCmd = &cobra.Command{
	Use:   "plan <planfile.yaml>",
	Short: "Generate one consolidated purchase order for a weekly plan file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := project.LoadPlan(args[0])
		if err != nil {
			return err
		}

		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		planner := newPlanner(cat)

		orders := make([]model.PurchaseOrder, 0, len(plan.Runs))
		for _, run := range plan.Runs {
			input, err := run.GenerationInput()
			if err != nil {
				return err
			}
			appConfig.ApplyToInput(&input)
			order, err := planner.GeneratePurchaseOrder(input)
			if err != nil {
				return fmt.Errorf("run %q: %w", run.Recipe, err)
			}
			orders = append(orders, order)
		}

		combined, err := engine.CombinePurchaseOrders(orders)
		if err != nil {
			return err
		}

		poNumber := planPONumber
		if poNumber == "" {
			poNumber = model.NewPONumber()
		}

		color.New(color.Bold).Printf("Plan %s: %d runs, %d protein lines\n\n",
			args[0], len(plan.Runs), len(combined.LineItems))
		fmt.Print(export.FormatForEmail(combined, poNumber))

		if planPDFPath != "" {
			if err := export.ExportPDF(planPDFPath, combined, poNumber); err != nil {
				return err
			}
			color.Green("Wrote %s", planPDFPath)
		}
		if planXLSXPath != "" {
			if err := export.ExportXLSX(planXLSXPath, combined, poNumber); err != nil {
				return err
			}
			color.Green("Wrote %s", planXLSXPath)
		}

		// Best effort: a read-only config dir must not fail the run
		appConfig.AddRecentPlan(args[0])
		_ = project.SaveAppConfig(project.DefaultConfigPath(), appConfig)
		return nil
	},
}

func init() {
	planCmd.Flags().StringVar(&planPONumber, "po", "", "purchase order number (generated when empty)")
	planCmd.Flags().StringVar(&planPDFPath, "pdf", "", "also write a PDF purchase order to this path")
	planCmd.Flags().StringVar(&planXLSXPath, "xlsx", "", "also write an XLSX purchase order to this path")
	rootCmd.AddCommand(planCmd)
}

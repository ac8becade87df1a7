package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harvestbowl/cookplan/internal/export"
	"github.com/harvestbowl/cookplan/internal/model"
)

var (
	generateBatches  float64
	generateCookDate string
	generateMinimum  float64
	generateLeadTime int
	generatePONumber string
	generatePDFPath  string
	generateXLSXPath string
)

var generateCmd = &cobra.Command{
	Use:   "generate <recipe>",
	Short: "Generate a protein purchase order for one recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cookDate, err := time.Parse("2006-01-02", generateCookDate)
		if err != nil {
			return fmt.Errorf("invalid --cook-date %q (want YYYY-MM-DD): %w", generateCookDate, err)
		}

		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		planner := newPlanner(cat)
		// Changed, not > 0: a lead time of zero (pickup on cook day) is valid
		if cmd.Flags().Changed("lead-time") {
			planner.SetLeadTimeDays(generateLeadTime)
		}

		input := model.GenerationInput{
			RecipeName:      args[0],
			BatchMultiplier: generateBatches,
			CookDate:        cookDate,
			MinimumOrderLbs: generateMinimum,
		}
		appConfig.ApplyToInput(&input)

		order, err := planner.GeneratePurchaseOrder(input)
		if err != nil {
			return err
		}

		poNumber := generatePONumber
		if poNumber == "" {
			poNumber = model.NewPONumber()
		}

		fmt.Print(export.FormatForEmail(order, poNumber))

		if generatePDFPath != "" {
			if err := export.ExportPDF(generatePDFPath, order, poNumber); err != nil {
				return err
			}
			color.Green("Wrote %s", generatePDFPath)
		}
		if generateXLSXPath != "" {
			if err := export.ExportXLSX(generateXLSXPath, order, poNumber); err != nil {
				return err
			}
			color.Green("Wrote %s", generateXLSXPath)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().Float64Var(&generateBatches, "batches", 1, "batch multiplier (1.0 = one base batch)")
	generateCmd.Flags().StringVar(&generateCookDate, "cook-date", time.Now().Format("2006-01-02"), "cook date (YYYY-MM-DD)")
	generateCmd.Flags().Float64Var(&generateMinimum, "minimum", 0, "vendor minimum order in lbs (default from config, else 10)")
	generateCmd.Flags().IntVar(&generateLeadTime, "lead-time", model.DefaultLeadTimeDays, "pickup lead time in days (0 = pickup on cook day)")
	generateCmd.Flags().StringVar(&generatePONumber, "po", "", "purchase order number (generated when empty)")
	generateCmd.Flags().StringVar(&generatePDFPath, "pdf", "", "also write a PDF purchase order to this path")
	generateCmd.Flags().StringVar(&generateXLSXPath, "xlsx", "", "also write an XLSX purchase order to this path")
	rootCmd.AddCommand(generateCmd)
}

package project

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harvestbowl/cookplan/internal/model"
)

// planDateLayout is the date format used in plan files (YYYY-MM-DD).
const planDateLayout = "2006-01-02"

// ProductionRun is one recipe scheduled for cooking in a plan file.
type ProductionRun struct {
	Recipe          string  `yaml:"recipe"`
	Batches         float64 `yaml:"batches"`
	CookDate        string  `yaml:"cook_date"`
	MinimumOrderLbs float64 `yaml:"minimum_order_lbs,omitempty"`
}

// GenerationInput converts the run into an engine input, parsing the
// cook date. Invalid dates fail here rather than inside the engine.
func (r ProductionRun) GenerationInput() (model.GenerationInput, error) {
	cookDate, err := time.Parse(planDateLayout, r.CookDate)
	if err != nil {
		return model.GenerationInput{}, fmt.Errorf("run %q: invalid cook_date %q (want YYYY-MM-DD): %w",
			r.Recipe, r.CookDate, err)
	}
	return model.GenerationInput{
		RecipeName:      r.Recipe,
		BatchMultiplier: r.Batches,
		CookDate:        cookDate,
		MinimumOrderLbs: r.MinimumOrderLbs,
	}, nil
}

// PlanFile describes one week of production runs. Each run becomes its
// own purchase order; the CLI combines them into a single vendor order.
type PlanFile struct {
	WeekOf string          `yaml:"week_of,omitempty"`
	Runs   []ProductionRun `yaml:"runs"`
}

// LoadPlan reads and parses a YAML plan file.
func LoadPlan(path string) (PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PlanFile{}, err
	}
	var plan PlanFile
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return PlanFile{}, fmt.Errorf("yaml plan parsing error: %w", err)
	}
	if len(plan.Runs) == 0 {
		return PlanFile{}, fmt.Errorf("plan file %s contains no runs", path)
	}
	return plan, nil
}

// SavePlan writes a plan file as YAML. It refuses to overwrite an
// existing file.
func SavePlan(path string, plan PlanFile) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("file %s already exists", path)
	}
	out, err := yaml.Marshal(plan)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}

// TemplatePlan returns a starter plan file for the given week using
// catalog recipe data, for staff to edit.
func TemplatePlan(weekOf time.Time) PlanFile {
	monday := weekOf.Format(planDateLayout)
	return PlanFile{
		WeekOf: monday,
		Runs: []ProductionRun{
			{Recipe: "Beef & Quinoa Harvest", Batches: 1, CookDate: monday},
		},
	}
}

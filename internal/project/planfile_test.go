package project

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const samplePlan = `week_of: "2026-01-12"
runs:
  - recipe: Beef & Quinoa Harvest
    batches: 2.5
    cook_date: "2026-01-15"
  - recipe: Pork & Apple Orchard
    batches: 1
    cook_date: "2026-01-13"
    minimum_order_lbs: 25
`

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "week.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPlan(t *testing.T) {
	plan, err := LoadPlan(writePlan(t, samplePlan))
	if err != nil {
		t.Fatalf("LoadPlan failed: %v", err)
	}
	if plan.WeekOf != "2026-01-12" {
		t.Errorf("unexpected week_of: %s", plan.WeekOf)
	}
	if len(plan.Runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(plan.Runs))
	}
	if plan.Runs[0].Batches != 2.5 {
		t.Errorf("unexpected batches: %v", plan.Runs[0].Batches)
	}
	if plan.Runs[1].MinimumOrderLbs != 25 {
		t.Errorf("unexpected minimum: %v", plan.Runs[1].MinimumOrderLbs)
	}
}

func TestProductionRunGenerationInput(t *testing.T) {
	run := ProductionRun{
		Recipe:   "Beef & Quinoa Harvest",
		Batches:  2.5,
		CookDate: "2026-01-15",
	}
	input, err := run.GenerationInput()
	if err != nil {
		t.Fatalf("GenerationInput failed: %v", err)
	}
	want := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !input.CookDate.Equal(want) {
		t.Errorf("cook date = %v, want %v", input.CookDate, want)
	}
	if input.BatchMultiplier != 2.5 {
		t.Errorf("multiplier = %v", input.BatchMultiplier)
	}
}

func TestProductionRunInvalidDate(t *testing.T) {
	run := ProductionRun{Recipe: "X", Batches: 1, CookDate: "01/15/2026"}
	if _, err := run.GenerationInput(); err == nil {
		t.Fatal("expected error for malformed cook_date")
	}
}

func TestLoadPlanEmptyRuns(t *testing.T) {
	if _, err := LoadPlan(writePlan(t, "week_of: \"2026-01-12\"\nruns: []\n")); err == nil {
		t.Fatal("expected error for plan with no runs")
	}
}

func TestLoadPlanInvalidYAML(t *testing.T) {
	if _, err := LoadPlan(writePlan(t, "runs: [unclosed")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSavePlanRefusesOverwrite(t *testing.T) {
	path := writePlan(t, samplePlan)
	if err := SavePlan(path, TemplatePlan(time.Now())); err == nil {
		t.Fatal("expected error when overwriting existing plan")
	}
}

func TestSaveAndReloadTemplatePlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.yaml")
	monday := time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC)

	if err := SavePlan(path, TemplatePlan(monday)); err != nil {
		t.Fatalf("SavePlan failed: %v", err)
	}
	plan, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("LoadPlan failed: %v", err)
	}
	if plan.WeekOf != "2026-01-12" {
		t.Errorf("unexpected week_of: %s", plan.WeekOf)
	}
	if len(plan.Runs) == 0 {
		t.Fatal("template plan should contain a starter run")
	}
	if _, err := plan.Runs[0].GenerationInput(); err != nil {
		t.Errorf("template run should parse cleanly: %v", err)
	}
}

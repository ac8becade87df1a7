package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/harvestbowl/cookplan/internal/model"
)

func TestExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.xlsx")

	if err := ExportXLSX(path, buildTestOrder(), "PO-XLSX0001"); err != nil {
		t.Fatalf("ExportXLSX failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("cannot reopen workbook: %v", err)
	}
	defer f.Close()

	cases := []struct {
		cell string
		want string
	}{
		{"B1", "PO-XLSX0001"},
		{"B2", "Mosner Family Brands"},
		{"A6", "Ingredient"},
		{"A7", "Beef Liver, Raw"},
		{"C7", "10"},
		{"D7", "Rounded up from 1.50 lbs to meet 10 lb minimum"},
		{"A8", "Ground beef (90% lean/10% fat)"},
		{"C8", "30"},
		{"A9", "Total"},
		{"C9", "40"},
	}
	for _, c := range cases {
		got, err := f.GetCellValue(sheetName, c.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", c.cell, err)
		}
		if got != c.want {
			t.Errorf("cell %s = %q, want %q", c.cell, got, c.want)
		}
	}
}

func TestExportXLSXEmptyOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := ExportXLSX(path, model.PurchaseOrder{}, "PO-EMPTY002"); err == nil {
		t.Fatal("expected error for order with no line items")
	}
}

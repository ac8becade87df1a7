package model

import (
	"strings"
	"testing"
)

func TestNewPONumber(t *testing.T) {
	po := NewPONumber()
	if !strings.HasPrefix(po, "PO-") {
		t.Errorf("expected PO- prefix, got %s", po)
	}
	if len(po) != len("PO-")+8 {
		t.Errorf("expected 8 character suffix, got %s", po)
	}
	if po == NewPONumber() {
		t.Error("expected distinct PO numbers")
	}
}

func TestFindLineItem(t *testing.T) {
	po := PurchaseOrder{
		LineItems: []LineItem{
			{IngredientName: "Beef Liver, Raw", OrderQuantityLbs: 10},
			{IngredientName: "Ground Pork, Lean", OrderQuantityLbs: 20},
		},
	}

	item := po.FindLineItem("Ground Pork, Lean")
	if item == nil {
		t.Fatal("expected to find line item")
	}
	if item.OrderQuantityLbs != 20 {
		t.Errorf("unexpected quantity %v", item.OrderQuantityLbs)
	}

	// Returned pointer aliases the order's own line item
	item.OrderQuantityLbs = 30
	if po.LineItems[1].OrderQuantityLbs != 30 {
		t.Error("FindLineItem should return a pointer into the order")
	}

	if po.FindLineItem("Missing") != nil {
		t.Error("expected nil for unknown ingredient")
	}
}

func TestApplyToInput(t *testing.T) {
	config := DefaultAppConfig()

	in := GenerationInput{RecipeName: "x", BatchMultiplier: 1}
	config.ApplyToInput(&in)
	if in.MinimumOrderLbs != DefaultMinimumOrderLbs {
		t.Errorf("expected default minimum, got %v", in.MinimumOrderLbs)
	}

	in = GenerationInput{RecipeName: "x", BatchMultiplier: 1, MinimumOrderLbs: 25}
	config.ApplyToInput(&in)
	if in.MinimumOrderLbs != 25 {
		t.Errorf("explicit minimum must be preserved, got %v", in.MinimumOrderLbs)
	}
}

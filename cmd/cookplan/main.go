// Cookplan — batch production planning and purchase-order generation
//
// Turns recipe base batches into vendor purchase orders for raw
// proteins: scaled to the production run, rounded to vendor minimums,
// and dated against the cook schedule.
//
// Build:
//   go build -o cookplan ./cmd/cookplan

package main

import "github.com/harvestbowl/cookplan/internal/cli"

func main() {
	cli.Execute()
}

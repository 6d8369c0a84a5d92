package main

import (
	"fmt"

	"github.com/fwojciec/fanza"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	products, err := deps.Products.FindProducts(deps.Ctx, fanza.ProductFilter{
		Circle: stringFlag(c.Circle),
		Series: stringFlag(c.Series),
		SortBy: fanza.SortByTitle,
	})
	if err != nil {
		return printError(deps, err)
	}

	w := deps.NewWriter(c.Dir)
	for _, p := range products {
		if err := w.WriteProduct(deps.Ctx, p); err != nil {
			return printError(deps, fmt.Errorf("export %s: %w", p.ID, err))
		}
	}

	fmt.Fprintf(deps.Stdout, "Exported %d products to %s\n", len(products), c.Dir)
	return nil
}

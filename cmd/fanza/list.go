package main

import (
	"fmt"

	"github.com/fwojciec/fanza"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	products, err := deps.Products.FindProducts(deps.Ctx, fanza.ProductFilter{
		Circle: stringFlag(c.Circle),
		Series: stringFlag(c.Series),
		Limit:  c.Limit,
		Offset: c.Offset,
		SortBy: fanza.SortOrder(c.Sort),
	})
	if err != nil {
		return printError(deps, err)
	}

	if len(products) == 0 {
		fmt.Fprintln(deps.Stdout, "No products found. Use 'fanza get --save' to add one.")
		return nil
	}

	for _, p := range products {
		fmt.Fprintf(deps.Stdout, "%s  %.2f  %s\n", p.ID, p.Rating, displayTitle(p))
	}
	return nil
}

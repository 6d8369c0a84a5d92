package main

import (
	"fmt"

	"github.com/fwojciec/fanza"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		return printError(deps, fanza.Errorf(fanza.EINVALID, "use --force to confirm deletion"))
	}

	if err := deps.Products.DeleteProduct(deps.Ctx, c.ID); err != nil {
		if fanza.ErrorCode(err) == fanza.ENOTFOUND {
			err = fanza.Errorf(fanza.ENOTFOUND, "product %q not found. Use 'fanza list' to see saved products.", c.ID)
		}
		return printError(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Deleted product %q\n", c.ID)
	return nil
}

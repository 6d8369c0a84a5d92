package main

import "github.com/fwojciec/fanza"

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	p, err := deps.Products.FindProductByID(deps.Ctx, c.ID)
	if err != nil {
		if fanza.ErrorCode(err) == fanza.ENOTFOUND {
			err = fanza.Errorf(fanza.ENOTFOUND, "product %q not found. Use 'fanza list' to see saved products.", c.ID)
		}
		return printError(deps, err)
	}

	if c.Markdown {
		return writeMarkdown(deps.Stdout, deps.Converter, []*fanza.Product{p})
	}
	return writeJSON(deps.Stdout, p)
}

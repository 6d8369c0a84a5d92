package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/fanza"
)

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	ids := make([]string, 0, len(c.IDs))
	for _, arg := range c.IDs {
		id, err := parseIDArg(arg)
		if err != nil {
			return printError(deps, err)
		}
		ids = append(ids, id)
	}

	products, err := deps.Scraper.ScrapeProducts(deps.Ctx, ids)
	if err != nil {
		return printError(deps, err)
	}

	if c.Save {
		for _, p := range products {
			if err := saveProduct(deps, p); err != nil {
				return printError(deps, err)
			}
		}
	}

	if c.Markdown {
		return writeMarkdown(deps.Stdout, deps.Converter, products)
	}
	if len(products) == 1 {
		return writeJSON(deps.Stdout, products[0])
	}
	return writeJSON(deps.Stdout, products)
}

// parseIDArg accepts a bare catalog id or a detail URL.
func parseIDArg(arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if strings.Contains(arg, "://") {
		id, ok := fanza.ResolveID(arg)
		if !ok {
			return "", fanza.Errorf(fanza.EINVALID, "no catalog id in URL %q", arg)
		}
		return id, nil
	}
	if !fanza.IsValidID(arg) {
		return "", fanza.Errorf(fanza.EINVALID, "invalid catalog id %q", arg)
	}
	return arg, nil
}

// saveProduct stores p and reports whether the stored record changed.
func saveProduct(deps *Dependencies, p *fanza.Product) error {
	var previous string
	existing, err := deps.Products.FindProductByID(deps.Ctx, p.ID)
	switch {
	case err == nil:
		previous = existing.ContentHash
	case fanza.ErrorCode(err) != fanza.ENOTFOUND:
		return err
	}

	if err := deps.Products.SaveProduct(deps.Ctx, p); err != nil {
		return err
	}

	status := "new"
	switch {
	case previous == "":
	case previous == p.ContentHash:
		status = "unchanged"
	default:
		status = "updated"
	}
	fmt.Fprintf(deps.Stderr, "Saved %s (%s)\n", p.ID, status)
	return nil
}

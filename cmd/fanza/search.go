package main

import (
	"fmt"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	hits, err := deps.Scraper.Search(deps.Ctx, c.Term)
	if err != nil {
		return printError(deps, err)
	}

	if len(hits) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", c.Term)
		return nil
	}

	for _, h := range hits {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", h.ID, h.Name)
	}
	return nil
}

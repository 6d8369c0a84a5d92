package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/fanza"
	"github.com/fwojciec/fanza/fs"
)

// writeJSON prints v as indented JSON without escaping description markup.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeMarkdown prints products in the format used by export.
func writeMarkdown(w io.Writer, conv fanza.Converter, products []*fanza.Product) error {
	for i, p := range products {
		var description string
		if p.Description != nil {
			md, err := conv.Convert(*p.Description)
			if err != nil {
				return err
			}
			description = md
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprint(w, fs.FormatProduct(p, description))
	}
	return nil
}

// printError reports err on stderr and returns it.
func printError(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", fanza.ErrorMessage(err))
	return err
}

func stringFlag(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func displayTitle(p *fanza.Product) string {
	if p.Title == nil {
		return "(untitled)"
	}
	return *p.Title
}

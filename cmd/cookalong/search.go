package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/cookalong"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")

	results, err := deps.Searcher.Search(deps.Ctx, query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cookalong.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No recipes found for %q.\n", query)
		return nil
	}

	for i, r := range results {
		fmt.Fprintf(deps.Stdout, "%d. %s  %s\n", i+1, r.Title, r.URL)
	}
	return nil
}

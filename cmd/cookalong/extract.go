package main

import (
	"fmt"

	"github.com/fwojciec/cookalong"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cookalong.ErrorMessage(err))
		return err
	}

	details, err := deps.Extractor.Extract(html, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cookalong.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Layout: %s\n", deps.Extractor.StrategyForHTML(html).Name())

	fmt.Fprintf(deps.Stdout, "\nIngredients (%d):\n", len(details.Ingredients))
	for _, ingredient := range details.Ingredients {
		fmt.Fprintf(deps.Stdout, "  - %s\n", ingredient)
	}

	fmt.Fprintf(deps.Stdout, "\nInstructions (%d):\n", details.StepCount())
	for i, instruction := range details.Instructions {
		fmt.Fprintf(deps.Stdout, "  %d. %s\n", i+1, instruction)
	}

	if details.Empty() {
		fmt.Fprintln(deps.Stderr, "warning: no instructions found")
	}
	return nil
}

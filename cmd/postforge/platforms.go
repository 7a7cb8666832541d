package main

import (
	"fmt"

	"github.com/fwojciec/postforge"
)

// Run executes the platforms command.
func (c *PlatformsCmd) Run(deps *Dependencies) error {
	for _, p := range postforge.Platforms() {
		limit, err := postforge.LimitFor(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "%-10s  %-12s  %6d chars\n", p, postforge.DisplayName(p), limit)
	}
	return nil
}

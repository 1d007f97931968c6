package main

import (
	"fmt"
	"text/tabwriter"
)

func runList(e *env, args []string) error {
	fs, verbose := e.newFlagSet("list")
	if err := e.parse(fs, verbose, args); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Signal\tPeriod\tDefinition\n"); err != nil {
		return fmt.Errorf("write list header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t------\t----------\n"); err != nil {
		return fmt.Errorf("write list header: %w", err)
	}
	for _, name := range e.signals.Names() {
		s, _ := e.signals.Lookup(name)
		if _, err := fmt.Fprintf(tw, "%s\t%.6g\t%s\n", s.Name, s.Period, s.Description); err != nil {
			return fmt.Errorf("write list row: %w", err)
		}
	}
	return tw.Flush()
}

package main

import (
	"fmt"

	"github.com/ukeeper/ukadmin"
	"github.com/ukeeper/ukadmin/admin"
	"github.com/ukeeper/ukadmin/term"
)

// Run executes the toggle command.
func (c *ToggleCmd) Run(deps *Dependencies) error {
	if err := requireLogin(deps); err != nil {
		return err
	}

	table := term.NewRulesTable()
	list := &admin.RulesList{Rules: deps.Rules, View: table, Logger: deps.Logger}
	if err := list.Load(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ukadmin.ErrorMessage(err))
		return err
	}

	row, err := table.Row(c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: rule %q not found. Use 'ukadmin rules' to see available rules.\n", c.ID)
		return err
	}

	if err := table.Change(c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ukadmin.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Rule %s (%s) is now %s\n", row.Rule.ID, row.Rule.Domain, term.State(row))
	return nil
}

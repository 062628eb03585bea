package main

import (
	"fmt"

	"github.com/ukeeper/ukadmin"
	"github.com/ukeeper/ukadmin/admin"
	"github.com/ukeeper/ukadmin/term"
)

// Run executes the rules command.
func (c *RulesCmd) Run(deps *Dependencies) error {
	table := term.NewRulesTable()
	list := &admin.RulesList{Rules: deps.Rules, View: table, Logger: deps.Logger}
	if err := list.Load(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ukadmin.ErrorMessage(err))
		return err
	}

	if len(table.Rows()) == 0 {
		fmt.Fprintln(deps.Stdout, "No rules found. Use 'ukadmin edit' to create one.")
		return nil
	}

	_, err := table.WriteTo(deps.Stdout)
	return err
}

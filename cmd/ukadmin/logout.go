package main

import (
	"fmt"

	"github.com/ukeeper/ukadmin/admin"
	"github.com/ukeeper/ukadmin/term"
)

// Run executes the logout command.
func (c *LogoutCmd) Run(deps *Dependencies) error {
	nav := &term.Navigator{}
	m := &admin.SessionManager{
		Session:   deps.Session,
		Auth:      deps.Auth,
		View:      term.NewLoginPrompt(deps.Stderr),
		Navigator: nav,
		Logger:    deps.Logger,
	}
	m.Logout(deps.Ctx)

	fmt.Fprintf(deps.Stdout, "Logged out. Continue at %s\n", nav.Location())
	return nil
}

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/ukeeper/ukadmin"
	"github.com/ukeeper/ukadmin/admin"
	"github.com/ukeeper/ukadmin/term"
)

// Run executes the login command.
func (c *LoginCmd) Run(deps *Dependencies) error {
	password := c.Password
	if password == "" && deps.Stdin != nil {
		fmt.Fprint(deps.Stderr, "Password: ")
		line, err := bufio.NewReader(deps.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(deps.Stderr)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	nav := &term.Navigator{}
	m := &admin.SessionManager{
		Session:   deps.Session,
		Auth:      deps.Auth,
		View:      term.NewLoginPrompt(deps.Stderr),
		Navigator: nav,
		Logger:    deps.Logger,
	}
	if err := m.Login(deps.Ctx, c.Login, password, c.Back); err != nil {
		if ukadmin.ErrorCode(err) == ukadmin.EINTERNAL {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Logged in as %s. Continue at %s\n", c.Login, nav.Location())
	return nil
}

// requireLogin fails when no credentials are stored. Calls that change
// rules or run extraction are rejected by the service without them.
func requireLogin(deps *Dependencies) error {
	if deps.Session != nil && deps.Session.Authenticated() {
		return nil
	}
	fmt.Fprintln(deps.Stderr, "error: not logged in. Use 'ukadmin login' first.")
	return ukadmin.Errorf(ukadmin.EUNAUTHORIZED, "not logged in")
}

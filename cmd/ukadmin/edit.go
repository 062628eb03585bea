package main

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/ukeeper/ukadmin"
	"github.com/ukeeper/ukadmin/admin"
	"github.com/ukeeper/ukadmin/term"
	"github.com/ukeeper/ukadmin/yaml"
)

// Run executes the edit command.
func (c *EditCmd) Run(deps *Dependencies) error {
	if err := requireLogin(deps); err != nil {
		return err
	}
	if c.ID != "" && !ukadmin.ValidRuleID(c.ID) {
		fmt.Fprintf(deps.Stderr, "error: invalid rule id %q\n", c.ID)
		return ukadmin.Errorf(ukadmin.EINVALID, "invalid rule id %q", c.ID)
	}

	form := yaml.NewForm()
	nav := &term.Navigator{}
	editor := &admin.RuleEditor{
		Rules:     deps.Rules,
		Form:      form,
		Navigator: nav,
		Logger:    deps.Logger,
	}

	var query string
	if c.ID != "" {
		query = url.Values{"id": {c.ID}}.Encode()
	}
	if err := editor.Open(deps.Ctx, query); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ukadmin.ErrorMessage(err))
		return err
	}

	data, changed, err := c.readForm(deps, form, editor)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ukadmin.ErrorMessage(err))
		return err
	}
	if !changed {
		fmt.Fprintln(deps.Stdout, "No changes.")
		return nil
	}

	if err := form.Unmarshal(data); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ukadmin.ErrorMessage(err))
		return err
	}

	if err := editor.HandleKey(deps.Ctx, ukadmin.KeyEvent{Key: ukadmin.KeyEnter, Ctrl: true}); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ukadmin.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved rule for %s (%s). Continue at %s\n",
		form.Value(ukadmin.FieldDomain), editor.Mode(), nav.Location())
	return nil
}

// readForm returns the edited form document. Without --file the form is
// written to a temporary file and opened in the editor; an untouched file
// reports no change.
func (c *EditCmd) readForm(deps *Dependencies, form *yaml.Form, editor *admin.RuleEditor) ([]byte, bool, error) {
	switch c.File {
	case "":
	case "-":
		data, err := io.ReadAll(deps.Stdin)
		return data, true, err
	default:
		data, err := os.ReadFile(c.File)
		return data, true, err
	}

	header := "new rule"
	if editor.Mode() == admin.ModeEdit {
		header = fmt.Sprintf("rule %s", c.ID)
		if b := editor.Baseline(); b != nil && b.User != "" {
			header += fmt.Sprintf(" by %s", b.User)
		}
	}
	original, err := form.Marshal(header)
	if err != nil {
		return nil, false, err
	}

	dir, err := os.MkdirTemp("", "ukadmin-edit-")
	if err != nil {
		return nil, false, err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "rule.yaml")
	if err := os.WriteFile(path, original, 0600); err != nil {
		return nil, false, err
	}
	if deps.Editor == nil {
		return nil, false, ukadmin.Errorf(ukadmin.EINVALID, "no editor configured; use --file")
	}
	if err := deps.Editor(deps.Ctx, path); err != nil {
		return nil, false, err
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	return edited, !bytes.Equal(edited, original), nil
}

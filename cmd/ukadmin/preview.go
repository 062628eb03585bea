package main

import (
	"fmt"

	"github.com/ukeeper/ukadmin"
	"github.com/ukeeper/ukadmin/admin"
	"github.com/ukeeper/ukadmin/fs"
	"github.com/ukeeper/ukadmin/term"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	if c.ID == "" && len(c.URL) == 0 {
		fmt.Fprintln(deps.Stderr, "error: give a rule ID or at least one --url")
		return ukadmin.Errorf(ukadmin.EINVALID, "rule id or url required")
	}
	if c.Out != "" && !c.All {
		fmt.Fprintln(deps.Stderr, "error: --out requires --all")
		return ukadmin.Errorf(ukadmin.EINVALID, "--out requires --all")
	}
	if err := requireLogin(deps); err != nil {
		return err
	}

	text, err := c.testURLs(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ukadmin.ErrorMessage(err))
		return err
	}

	panel := term.NewPreviewPanel(deps.Stdout, deps.Stderr)
	for slot, r := range deps.Renderers {
		panel.SetRenderer(slot, r)
	}
	p := &admin.Preview{Extractor: deps.Extractor, View: panel, Logger: deps.Logger}

	if c.All {
		return c.runAll(deps, p, text)
	}

	cursor := c.Cursor
	if cursor < 0 {
		cursor = ukadmin.LineOffset(text, c.Line)
	}
	if err := p.Run(deps.Ctx, text, cursor); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ukadmin.ErrorMessage(err))
		return err
	}
	return nil
}

// testURLs returns the --url values, or the test URLs of the rule, one per
// line.
func (c *PreviewCmd) testURLs(deps *Dependencies) (string, error) {
	if len(c.URL) > 0 {
		return ukadmin.JoinLines(c.URL), nil
	}

	rule, err := deps.Rules.FindRuleByID(deps.Ctx, c.ID)
	if err != nil {
		return "", err
	}
	return rule.FieldValue(ukadmin.FieldTestURLs), nil
}

// runAll previews every test URL and prints one line per URL. With --out the
// successful results are saved as markdown files.
func (c *PreviewCmd) runAll(deps *Dependencies, p *admin.Preview, text string) error {
	outcomes := p.RunAll(deps.Ctx, text)
	if len(outcomes) == 0 {
		fmt.Fprintln(deps.Stdout, "No test URLs to preview.")
		return nil
	}

	var store *fs.SnapshotStore
	if c.Out != "" {
		store = fs.NewSnapshotStore(c.Out, "snapshots")
	}

	var failed int
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			fmt.Fprintf(deps.Stdout, "FAIL  %s  %s\n", o.URL, ukadmin.ErrorMessage(o.Err))
			continue
		}

		title, _ := o.Result.Field(ukadmin.SlotTitle)
		fmt.Fprintf(deps.Stdout, "OK    %s  %s\n", o.URL, render(deps, ukadmin.SlotTitle, title, o.URL))

		if store != nil {
			if err := store.Save(deps.Ctx, o.Result, snapshotBody(deps, o.Result)); err != nil {
				_ = store.Abort()
				fmt.Fprintf(deps.Stderr, "error: %s\n", ukadmin.ErrorMessage(err))
				return err
			}
		}
	}

	switch {
	case store == nil:
	case failed == len(outcomes):
		_ = store.Abort()
		fmt.Fprintf(deps.Stdout, "No snapshots saved; %s left unchanged\n", store.Dir())
	default:
		if err := store.Commit(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ukadmin.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved %d snapshots to %s\n", len(outcomes)-failed, store.Dir())
	}

	if failed > 0 {
		return ukadmin.Errorf(ukadmin.EINTERNAL, "%d of %d previews failed", failed, len(outcomes))
	}
	return nil
}

// snapshotBody prefers the rich content and falls back to the plain content.
func snapshotBody(deps *Dependencies, res *ukadmin.PreviewResult) string {
	if html, ok := res.Field(ukadmin.SlotRichContent); ok {
		return render(deps, ukadmin.SlotRichContent, html, res.URL)
	}
	content, _ := res.Field(ukadmin.SlotContent)
	return render(deps, ukadmin.SlotContent, content, res.URL)
}

// render uses the slot's renderer, resolving links against pageURL when the
// renderer supports it. Failures fall back to the raw value.
func render(deps *Dependencies, slot ukadmin.PreviewSlot, html, pageURL string) string {
	r, ok := deps.Renderers[slot]
	if !ok {
		return html
	}
	var text string
	var err error
	if pr, ok := r.(ukadmin.PageRenderer); ok {
		text, err = pr.RenderPage(html, pageURL)
	} else {
		text, err = r.Render(html)
	}
	if err != nil {
		return html
	}
	return text
}

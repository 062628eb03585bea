package admin

import (
	"context"
	"log/slog"

	"github.com/ukeeper/ukadmin"
)

// EditorMode tells whether the editor creates a rule or edits one.
type EditorMode int

// Editor modes.
const (
	ModeNew EditorMode = iota
	ModeEdit
)

func (m EditorMode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "new"
}

// RuleEditor binds one rule to a form and saves it.
type RuleEditor struct {
	Rules     ukadmin.RuleService
	Form      ukadmin.RuleForm
	Navigator ukadmin.Navigator
	Logger    *slog.Logger

	mode     EditorMode
	id       string
	baseline *ukadmin.Rule
}

// Open starts an editing session for the page query. A valid id parameter
// selects ModeEdit and loads the rule into the form; anything else starts a
// blank rule. The mode is fixed until the next Open.
func (e *RuleEditor) Open(ctx context.Context, rawQuery string) error {
	e.baseline = nil
	e.id = QueryParam(rawQuery, "id")
	e.mode = ModeEdit
	if !ukadmin.ValidRuleID(e.id) {
		e.id = ""
		e.mode = ModeNew
		return nil
	}

	rule, err := e.Rules.FindRuleByID(ctx, e.id)
	if err != nil {
		loggerOrDiscard(e.Logger).Error("error while loading rule", "id", e.id, "err", err)
		return err
	}

	e.baseline = rule
	for _, f := range ukadmin.RuleFields {
		e.Form.SetValue(f, rule.FieldValue(f))
	}
	return nil
}

// Mode returns the mode chosen by Open.
func (e *RuleEditor) Mode() EditorMode {
	return e.mode
}

// Baseline returns the rule loaded by Open, or nil.
func (e *RuleEditor) Baseline() *ukadmin.Rule {
	return e.baseline
}

// Save reads the form into a rule and sends it to the service. When editing,
// the enabled flag, id, owner and timestamp come from the loaded rule, never
// from the form. On success the editor navigates to the rules list; on
// failure the form keeps its contents.
func (e *RuleEditor) Save(ctx context.Context) error {
	logger := loggerOrDiscard(e.Logger)

	// New rules are created enabled.
	rule := &ukadmin.Rule{Enabled: true}
	for _, f := range ukadmin.RuleFields {
		rule.SetFieldValue(f, e.Form.Value(f))
	}

	if e.mode == ModeEdit {
		if e.baseline == nil {
			err := ukadmin.Errorf(ukadmin.EINVALID, "rule %q is not loaded", e.id)
			logger.Error("error while saving the rule", "err", err)
			return err
		}
		rule.Enabled = e.baseline.Enabled
		rule.ID = e.baseline.ID
		rule.User = e.baseline.User
		rule.TS = e.baseline.TS
	}

	if err := e.Rules.SaveRule(ctx, rule); err != nil {
		logger.Error("error while saving the rule", "domain", rule.Domain, "err", err)
		return err
	}

	e.Navigator.Navigate(ukadmin.LocationRoot)
	return nil
}

// HandleKey saves the rule on Ctrl+Enter. Other keys are ignored.
func (e *RuleEditor) HandleKey(ctx context.Context, ev ukadmin.KeyEvent) error {
	if ev.Ctrl && ev.Key == ukadmin.KeyEnter {
		return e.Save(ctx)
	}
	return nil
}

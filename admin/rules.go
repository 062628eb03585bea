package admin

import (
	"context"
	"log/slog"

	"github.com/ukeeper/ukadmin"
)

// RulesList fills the rules table and handles enable/disable toggles.
type RulesList struct {
	Rules  ukadmin.RuleService
	View   ukadmin.RulesView
	Logger *slog.Logger
}

// Load clears the table and fills it with every rule. Each row carries its
// record, and one toggle handler is registered for all rows.
func (c *RulesList) Load(ctx context.Context) error {
	c.View.Clear()

	rules, err := c.Rules.FindRules(ctx)
	if err != nil {
		loggerOrDiscard(c.Logger).Error("error while loading rules", "err", err)
		return err
	}

	for _, rule := range rules {
		c.View.AppendRow(&ukadmin.RuleRow{Rule: rule, Disabled: !rule.Enabled})
	}

	c.View.OnToggle(func(row *ukadmin.RuleRow) error {
		return c.Toggle(ctx, row)
	})
	return nil
}

// Toggle flips the row's enabled flag and tells the service. Enabling saves
// the whole record; disabling deletes it by id, which the service treats as
// disable. The row's visual state follows only after the service accepts
// the change; on failure the flag is flipped back.
func (c *RulesList) Toggle(ctx context.Context, row *ukadmin.RuleRow) error {
	rule := row.Rule
	rule.Enabled = !rule.Enabled

	var err error
	if rule.Enabled {
		err = c.Rules.SaveRule(ctx, rule)
	} else {
		err = c.Rules.DisableRule(ctx, rule.ID)
	}
	if err != nil {
		rule.Enabled = !rule.Enabled
		loggerOrDiscard(c.Logger).Error("error while toggling the rule",
			"id", rule.ID,
			"domain", rule.Domain,
			"enable", !rule.Enabled,
			"err", err,
		)
		return err
	}

	c.View.SetRowDisabled(row, !rule.Enabled)
	return nil
}

package admin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukeeper/ukadmin"
	"github.com/ukeeper/ukadmin/admin"
	"github.com/ukeeper/ukadmin/mock"
)

func TestRulesList_Load(t *testing.T) {
	t.Parallel()

	t.Run("fills rows and marks disabled rules", func(t *testing.T) {
		t.Parallel()

		rules := &mock.RuleService{
			FindRulesFn: func(_ context.Context) ([]*ukadmin.Rule, error) {
				return []*ukadmin.Rule{
					{ID: "r1", Domain: "a.com", Enabled: true},
					{ID: "r2", Domain: "b.com", Enabled: false},
				}, nil
			},
		}
		view := &mock.RulesView{Rows: []*ukadmin.RuleRow{{Rule: &ukadmin.Rule{ID: "stale"}}}}
		c := &admin.RulesList{Rules: rules, View: view}

		err := c.Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, view.Cleared)
		require.Len(t, view.Rows, 2)
		assert.Equal(t, "r1", view.Rows[0].Rule.ID)
		assert.False(t, view.Rows[0].Disabled)
		assert.Equal(t, "r2", view.Rows[1].Rule.ID)
		assert.True(t, view.Rows[1].Disabled)
	})

	t.Run("leaves the table empty on failure", func(t *testing.T) {
		t.Parallel()

		rules := &mock.RuleService{
			FindRulesFn: func(_ context.Context) ([]*ukadmin.Rule, error) {
				return nil, errors.New("connection refused")
			},
		}
		view := &mock.RulesView{Rows: []*ukadmin.RuleRow{{Rule: &ukadmin.Rule{ID: "stale"}}}}
		c := &admin.RulesList{Rules: rules, View: view}

		err := c.Load(context.Background())

		require.Error(t, err)
		assert.Empty(t, view.Rows)
	})

	t.Run("registered handler toggles the changed row", func(t *testing.T) {
		t.Parallel()

		var disabled string
		rules := &mock.RuleService{
			FindRulesFn: func(_ context.Context) ([]*ukadmin.Rule, error) {
				return []*ukadmin.Rule{{ID: "r1", Enabled: true}}, nil
			},
			DisableRuleFn: func(_ context.Context, id string) error {
				disabled = id
				return nil
			},
		}
		view := &mock.RulesView{}
		c := &admin.RulesList{Rules: rules, View: view}
		require.NoError(t, c.Load(context.Background()))

		require.NoError(t, view.Change(view.Rows[0]))

		assert.Equal(t, "r1", disabled)
		assert.True(t, view.Rows[0].Disabled)
	})

	t.Run("registered handler returns the service error", func(t *testing.T) {
		t.Parallel()

		rules := &mock.RuleService{
			FindRulesFn: func(_ context.Context) ([]*ukadmin.Rule, error) {
				return []*ukadmin.Rule{{ID: "r1", Enabled: true}}, nil
			},
			DisableRuleFn: func(_ context.Context, _ string) error {
				return ukadmin.Errorf(ukadmin.EUNAUTHORIZED, "unauthorized")
			},
		}
		view := &mock.RulesView{}
		c := &admin.RulesList{Rules: rules, View: view}
		require.NoError(t, c.Load(context.Background()))

		err := view.Change(view.Rows[0])

		assert.Equal(t, ukadmin.EUNAUTHORIZED, ukadmin.ErrorCode(err))
		assert.True(t, view.Rows[0].Rule.Enabled)
		assert.False(t, view.Rows[0].Disabled)
	})
}

func TestRulesList_Toggle(t *testing.T) {
	t.Parallel()

	t.Run("enabling a disabled rule upserts it with enabled set", func(t *testing.T) {
		t.Parallel()

		var saved ukadmin.Rule
		rules := &mock.RuleService{
			SaveRuleFn: func(_ context.Context, rule *ukadmin.Rule) error {
				saved = *rule
				return nil
			},
			DisableRuleFn: func(_ context.Context, _ string) error {
				t.Fatal("unexpected disable call")
				return nil
			},
		}
		view := &mock.RulesView{}
		row := &ukadmin.RuleRow{Rule: &ukadmin.Rule{ID: "r1", Domain: "a.com", User: "u1"}, Disabled: true}
		c := &admin.RulesList{Rules: rules, View: view}

		err := c.Toggle(context.Background(), row)

		require.NoError(t, err)
		assert.True(t, saved.Enabled)
		assert.Equal(t, "r1", saved.ID)
		assert.Equal(t, "u1", saved.User)
		assert.True(t, row.Rule.Enabled)
		assert.False(t, row.Disabled)
	})

	t.Run("disabling an enabled rule issues a delete", func(t *testing.T) {
		t.Parallel()

		var deleted string
		rules := &mock.RuleService{
			SaveRuleFn: func(_ context.Context, _ *ukadmin.Rule) error {
				t.Fatal("unexpected save call")
				return nil
			},
			DisableRuleFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		}
		row := &ukadmin.RuleRow{Rule: &ukadmin.Rule{ID: "r1", Enabled: true}}
		c := &admin.RulesList{Rules: rules, View: &mock.RulesView{}}

		err := c.Toggle(context.Background(), row)

		require.NoError(t, err)
		assert.Equal(t, "r1", deleted)
		assert.False(t, row.Rule.Enabled)
		assert.True(t, row.Disabled)
	})

	t.Run("failure reverts the flag and keeps the row state", func(t *testing.T) {
		t.Parallel()

		rules := &mock.RuleService{
			DisableRuleFn: func(_ context.Context, _ string) error {
				return ukadmin.Errorf(ukadmin.EUNAUTHORIZED, "unauthorized")
			},
		}
		row := &ukadmin.RuleRow{Rule: &ukadmin.Rule{ID: "r1", Enabled: true}}
		c := &admin.RulesList{Rules: rules, View: &mock.RulesView{}}

		err := c.Toggle(context.Background(), row)

		require.Error(t, err)
		assert.True(t, row.Rule.Enabled)
		assert.False(t, row.Disabled)
	})

	t.Run("flag is flipped before the call is made", func(t *testing.T) {
		t.Parallel()

		var enabledDuringCall bool
		rule := &ukadmin.Rule{ID: "r1", Enabled: false}
		rules := &mock.RuleService{
			SaveRuleFn: func(_ context.Context, r *ukadmin.Rule) error {
				enabledDuringCall = rule.Enabled
				return errors.New("server error")
			},
		}
		c := &admin.RulesList{Rules: rules, View: &mock.RulesView{}}

		_ = c.Toggle(context.Background(), &ukadmin.RuleRow{Rule: rule, Disabled: true})

		assert.True(t, enabledDuringCall)
		assert.False(t, rule.Enabled)
	})
}

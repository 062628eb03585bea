package mock

import (
	"context"

	"github.com/ukeeper/ukadmin"
)

var _ ukadmin.RuleService = (*RuleService)(nil)

// RuleService is a mock implementation of ukadmin.RuleService.
type RuleService struct {
	FindRulesFn    func(ctx context.Context) ([]*ukadmin.Rule, error)
	FindRuleByIDFn func(ctx context.Context, id string) (*ukadmin.Rule, error)
	SaveRuleFn     func(ctx context.Context, rule *ukadmin.Rule) error
	DisableRuleFn  func(ctx context.Context, id string) error
}

func (s *RuleService) FindRules(ctx context.Context) ([]*ukadmin.Rule, error) {
	return s.FindRulesFn(ctx)
}

func (s *RuleService) FindRuleByID(ctx context.Context, id string) (*ukadmin.Rule, error) {
	return s.FindRuleByIDFn(ctx, id)
}

func (s *RuleService) SaveRule(ctx context.Context, rule *ukadmin.Rule) error {
	return s.SaveRuleFn(ctx, rule)
}

func (s *RuleService) DisableRule(ctx context.Context, id string) error {
	return s.DisableRuleFn(ctx, id)
}

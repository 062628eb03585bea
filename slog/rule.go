// Package slog provides logging decorators for ukadmin services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ukeeper/ukadmin"
)

// Ensure LoggingRuleService implements ukadmin.RuleService.
var _ ukadmin.RuleService = (*LoggingRuleService)(nil)

// LoggingRuleService wraps a RuleService with logging.
type LoggingRuleService struct {
	next   ukadmin.RuleService
	logger *slog.Logger
}

// NewLoggingRuleService creates a new LoggingRuleService.
func NewLoggingRuleService(next ukadmin.RuleService, logger *slog.Logger) *LoggingRuleService {
	return &LoggingRuleService{next: next, logger: logger}
}

// FindRules delegates to the wrapped service and logs the operation.
func (s *LoggingRuleService) FindRules(ctx context.Context) (rules []*ukadmin.Rule, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find rules",
			"count", len(rules),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRules(ctx)
}

// FindRuleByID delegates to the wrapped service and logs the operation.
func (s *LoggingRuleService) FindRuleByID(ctx context.Context, id string) (rule *ukadmin.Rule, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find rule",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRuleByID(ctx, id)
}

// SaveRule delegates to the wrapped service and logs the operation.
func (s *LoggingRuleService) SaveRule(ctx context.Context, rule *ukadmin.Rule) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save rule",
			"id", rule.ID,
			"domain", rule.Domain,
			"enabled", rule.Enabled,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveRule(ctx, rule)
}

// DisableRule delegates to the wrapped service and logs the operation.
func (s *LoggingRuleService) DisableRule(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("disable rule",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DisableRule(ctx, id)
}

package ukadmin

import (
	"context"
	"fmt"
	"strings"
)

// Rule is a per-domain extraction configuration stored by the service.
type Rule struct {
	ID        string   `json:"id,omitempty"`
	Domain    string   `json:"domain"`
	Content   string   `json:"content"`
	Author    string   `json:"author"`
	MatchURLs []string `json:"match_url"`
	Excludes  []string `json:"excludes"`
	TestURLs  []string `json:"test_urls"`
	Enabled   bool     `json:"enabled"`
	User      string   `json:"user"`
	TS        string   `json:"ts,omitempty"`
}

// IsNew reports whether the rule has not been saved yet.
func (r *Rule) IsNew() bool {
	return r.ID == ""
}

func (r *Rule) String() string {
	return fmt.Sprintf("{id=%s, domain=%s, enabled=%v}", r.ID, r.Domain, r.Enabled)
}

// RuleService represents the rule endpoints of the extraction service.
type RuleService interface {
	// FindRules returns all rules, enabled and disabled.
	FindRules(ctx context.Context) ([]*Rule, error)

	// FindRuleByID returns a single rule.
	// Returns ENOTFOUND if the rule does not exist.
	FindRuleByID(ctx context.Context, id string) (*Rule, error)

	// SaveRule creates the rule when it has no ID and updates it otherwise.
	SaveRule(ctx context.Context, rule *Rule) error

	// DisableRule disables the rule. The service exposes this as a DELETE.
	DisableRule(ctx context.Context, id string) error
}

// ValidRuleID reports whether id can be used as a rule identifier in a URL path.
func ValidRuleID(id string) bool {
	if id == "" || len(id) > 64 {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}

// JoinLines renders a pattern list as newline-separated text.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// SplitLines is the inverse of JoinLines. Empty lines, including a trailing
// one, are kept in place. Empty text yields a single empty line.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// RuleField names an editable field of the rule form.
type RuleField string

// Rule form fields.
const (
	FieldDomain   RuleField = "domain"
	FieldContent  RuleField = "content"
	FieldAuthor   RuleField = "author"
	FieldMatchURL RuleField = "match_url"
	FieldExcludes RuleField = "excludes"
	FieldTestURLs RuleField = "test_urls"
)

// RuleFields lists the form fields in display order.
var RuleFields = []RuleField{
	FieldDomain,
	FieldContent,
	FieldAuthor,
	FieldMatchURL,
	FieldExcludes,
	FieldTestURLs,
}

// Multiline reports whether the field holds one entry per line.
func (f RuleField) Multiline() bool {
	return f == FieldMatchURL || f == FieldExcludes || f == FieldTestURLs
}

// FieldValue returns the form text for a field of the rule.
func (r *Rule) FieldValue(f RuleField) string {
	switch f {
	case FieldDomain:
		return r.Domain
	case FieldContent:
		return r.Content
	case FieldAuthor:
		return r.Author
	case FieldMatchURL:
		return JoinLines(r.MatchURLs)
	case FieldExcludes:
		return JoinLines(r.Excludes)
	case FieldTestURLs:
		return JoinLines(r.TestURLs)
	}
	return ""
}

// SetFieldValue assigns form text to a field of the rule.
func (r *Rule) SetFieldValue(f RuleField, value string) {
	switch f {
	case FieldDomain:
		r.Domain = value
	case FieldContent:
		r.Content = value
	case FieldAuthor:
		r.Author = value
	case FieldMatchURL:
		r.MatchURLs = SplitLines(value)
	case FieldExcludes:
		r.Excludes = SplitLines(value)
	case FieldTestURLs:
		r.TestURLs = SplitLines(value)
	}
}

// RuleRow is a row of the rules list together with the record backing it.
type RuleRow struct {
	Rule *Rule

	// Disabled mirrors the row's visual state, which only changes once the
	// service has accepted a toggle.
	Disabled bool
}

package ukadmin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukeeper/ukadmin"
)

func TestSplitLines_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
	}{
		{name: "single line", lines: []string{"http://a.com"}},
		{name: "several lines", lines: []string{"http://a.com", "http://b.com", "http://c.com"}},
		{name: "empty line in the middle", lines: []string{"http://a.com", "", "http://d.com"}},
		{name: "trailing empty line", lines: []string{"http://a.com", ""}},
		{name: "only empty lines", lines: []string{"", "", ""}},
		{name: "single empty line", lines: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.lines, ukadmin.SplitLines(ukadmin.JoinLines(tt.lines)))
		})
	}
}

func TestSplitLines_EmptyText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{""}, ukadmin.SplitLines(""))
}

func TestRule_FieldValue(t *testing.T) {
	t.Parallel()

	rule := &ukadmin.Rule{
		Domain:    "example.com",
		Content:   "article.post",
		Author:    "umputun",
		MatchURLs: []string{"/news/", "/blog/"},
		Excludes:  []string{".ad", ".banner"},
		TestURLs:  []string{"http://example.com/news/1", ""},
	}

	assert.Equal(t, "example.com", rule.FieldValue(ukadmin.FieldDomain))
	assert.Equal(t, "article.post", rule.FieldValue(ukadmin.FieldContent))
	assert.Equal(t, "umputun", rule.FieldValue(ukadmin.FieldAuthor))
	assert.Equal(t, "/news/\n/blog/", rule.FieldValue(ukadmin.FieldMatchURL))
	assert.Equal(t, ".ad\n.banner", rule.FieldValue(ukadmin.FieldExcludes))
	assert.Equal(t, "http://example.com/news/1\n", rule.FieldValue(ukadmin.FieldTestURLs))
}

func TestRule_SetFieldValue(t *testing.T) {
	t.Parallel()

	rule := &ukadmin.Rule{}
	for _, f := range ukadmin.RuleFields {
		rule.SetFieldValue(f, string(f)+"\nsecond")
	}

	assert.Equal(t, "domain\nsecond", rule.Domain)
	assert.Equal(t, []string{"match_url", "second"}, rule.MatchURLs)
	assert.Equal(t, []string{"excludes", "second"}, rule.Excludes)
	assert.Equal(t, []string{"test_urls", "second"}, rule.TestURLs)
}

func TestRuleField_Multiline(t *testing.T) {
	t.Parallel()

	assert.False(t, ukadmin.FieldDomain.Multiline())
	assert.False(t, ukadmin.FieldContent.Multiline())
	assert.False(t, ukadmin.FieldAuthor.Multiline())
	assert.True(t, ukadmin.FieldMatchURL.Multiline())
	assert.True(t, ukadmin.FieldExcludes.Multiline())
	assert.True(t, ukadmin.FieldTestURLs.Multiline())
}

func TestValidRuleID(t *testing.T) {
	t.Parallel()

	assert.True(t, ukadmin.ValidRuleID("5f1a2b3c4d5e6f7a8b9c0d1e"))
	assert.True(t, ukadmin.ValidRuleID("rule_1-a"))
	assert.False(t, ukadmin.ValidRuleID(""))
	assert.False(t, ukadmin.ValidRuleID("../rules"))
	assert.False(t, ukadmin.ValidRuleID("abc def"))
	assert.False(t, ukadmin.ValidRuleID("abc?x=1"))
	assert.False(t, ukadmin.ValidRuleID(string(make([]byte, 65))))
}

func TestRule_IsNew(t *testing.T) {
	t.Parallel()

	assert.True(t, (&ukadmin.Rule{}).IsNew())
	assert.False(t, (&ukadmin.Rule{ID: "abc"}).IsNew())
}

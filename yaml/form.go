// Package yaml implements the rule form as a YAML document so a rule can be
// edited in a text editor.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ukeeper/ukadmin"
	"gopkg.in/yaml.v3"
)

// Compile-time interface verification.
var _ ukadmin.RuleForm = (*Form)(nil)

// document is the on-disk layout of the form. Multi-line fields are lists,
// one entry per line.
type document struct {
	Domain   string   `yaml:"domain"`
	Content  string   `yaml:"content"`
	Author   string   `yaml:"author"`
	MatchURL []string `yaml:"match_url"`
	Excludes []string `yaml:"excludes"`
	TestURLs []string `yaml:"test_urls"`
}

// Form holds the editable rule fields. The zero value is an empty form.
type Form struct {
	mu     sync.Mutex
	values map[ukadmin.RuleField]string
}

// NewForm returns an empty form.
func NewForm() *Form {
	return &Form{values: make(map[ukadmin.RuleField]string)}
}

// Value returns the text of field.
func (f *Form) Value(field ukadmin.RuleField) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[field]
}

// SetValue sets the text of field.
func (f *Form) SetValue(field ukadmin.RuleField, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.values == nil {
		f.values = make(map[ukadmin.RuleField]string)
	}
	f.values[field] = value
}

// Marshal writes the form as YAML. header, if not empty, is written as a
// leading comment.
func (f *Form) Marshal(header string) ([]byte, error) {
	doc := document{
		Domain:   f.Value(ukadmin.FieldDomain),
		Content:  f.Value(ukadmin.FieldContent),
		Author:   f.Value(ukadmin.FieldAuthor),
		MatchURL: ukadmin.SplitLines(f.Value(ukadmin.FieldMatchURL)),
		Excludes: ukadmin.SplitLines(f.Value(ukadmin.FieldExcludes)),
		TestURLs: ukadmin.SplitLines(f.Value(ukadmin.FieldTestURLs)),
	}

	var node yaml.Node
	if err := node.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode form: %w", err)
	}
	if header != "" {
		node.HeadComment = "# " + header
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("failed to encode form: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal replaces the form values with the fields of a YAML document.
// Unknown keys are rejected. Missing keys leave empty fields.
func (f *Form) Unmarshal(data []byte) error {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return ukadmin.Errorf(ukadmin.EINVALID, "invalid rule form: %v", err)
	}
	for key, lines := range map[string][]string{
		"match_url": doc.MatchURL,
		"excludes":  doc.Excludes,
		"test_urls": doc.TestURLs,
	} {
		for i, line := range lines {
			if strings.Contains(line, "\n") {
				return ukadmin.Errorf(ukadmin.EINVALID, "invalid rule form: %s entry %d spans several lines", key, i+1)
			}
		}
	}

	values := map[ukadmin.RuleField]string{
		ukadmin.FieldDomain:   doc.Domain,
		ukadmin.FieldContent:  doc.Content,
		ukadmin.FieldAuthor:   doc.Author,
		ukadmin.FieldMatchURL: ukadmin.JoinLines(doc.MatchURL),
		ukadmin.FieldExcludes: ukadmin.JoinLines(doc.Excludes),
		ukadmin.FieldTestURLs: ukadmin.JoinLines(doc.TestURLs),
	}

	f.mu.Lock()
	f.values = values
	f.mu.Unlock()
	return nil
}

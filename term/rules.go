package term

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ukeeper/ukadmin"
)

// Ensure RulesTable implements ukadmin.RulesView at compile time.
var _ ukadmin.RulesView = (*RulesTable)(nil)

// Row states as printed in the first column.
const (
	StateEnabled  = "on"
	StateDisabled = "off"
)

// RulesTable keeps the rows of the rules list and prints them as a table.
type RulesTable struct {
	rows   []*ukadmin.RuleRow
	toggle func(row *ukadmin.RuleRow) error
}

// NewRulesTable returns an empty table.
func NewRulesTable() *RulesTable {
	return &RulesTable{}
}

// Clear removes all rows.
func (t *RulesTable) Clear() {
	t.rows = nil
}

// AppendRow adds a row.
func (t *RulesTable) AppendRow(row *ukadmin.RuleRow) {
	t.rows = append(t.rows, row)
}

// SetRowDisabled updates the row's state.
func (t *RulesTable) SetRowDisabled(row *ukadmin.RuleRow, disabled bool) {
	row.Disabled = disabled
}

// OnToggle registers the toggle handler.
func (t *RulesTable) OnToggle(fn func(row *ukadmin.RuleRow) error) {
	t.toggle = fn
}

// Rows returns the rows in display order.
func (t *RulesTable) Rows() []*ukadmin.RuleRow {
	return t.rows
}

// Row returns the row of the rule with the given id.
func (t *RulesTable) Row(id string) (*ukadmin.RuleRow, error) {
	for _, row := range t.rows {
		if row.Rule.ID == id {
			return row, nil
		}
	}
	return nil, ukadmin.Errorf(ukadmin.ENOTFOUND, "rule %q not found", id)
}

// Change flips the enabled control of the rule with the given id, as if the
// operator clicked it, and returns the toggle handler's error.
func (t *RulesTable) Change(id string) error {
	row, err := t.Row(id)
	if err != nil {
		return err
	}
	if t.toggle == nil {
		return nil
	}
	return t.toggle(row)
}

// WriteTo prints the table: state, id, domain, owner and the edit location.
func (t *RulesTable) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	tw := tabwriter.NewWriter(cw, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STATE\tID\tDOMAIN\tUSER\tEDIT")
	for _, row := range t.rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", State(row), row.Rule.ID, row.Rule.Domain, row.Rule.User, EditLocation(row.Rule.ID))
	}
	err := tw.Flush()
	return cw.n, err
}

// State returns the printed state of row.
func State(row *ukadmin.RuleRow) string {
	if row.Disabled {
		return StateDisabled
	}
	return StateEnabled
}

// EditLocation returns the editor location for a rule.
func EditLocation(id string) string {
	return ukadmin.LocationEdit + "?id=" + id
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

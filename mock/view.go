package mock

import (
	"sync"

	"github.com/ukeeper/ukadmin"
)

// Compile-time interface verification.
var (
	_ ukadmin.Navigator   = (*Navigator)(nil)
	_ ukadmin.LoginView   = (*LoginView)(nil)
	_ ukadmin.RulesView   = (*RulesView)(nil)
	_ ukadmin.RuleForm    = (*RuleForm)(nil)
	_ ukadmin.PreviewView = (*PreviewView)(nil)
)

// Navigator records navigation targets.
type Navigator struct {
	mu        sync.Mutex
	Locations []string
}

func (n *Navigator) Navigate(location string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Locations = append(n.Locations, location)
}

// Last returns the most recent location, or "" if none.
func (n *Navigator) Last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.Locations) == 0 {
		return ""
	}
	return n.Locations[len(n.Locations)-1]
}

// LoginView records whether the inline error is visible.
type LoginView struct {
	ErrorVisible bool
}

func (v *LoginView) ShowError() { v.ErrorVisible = true }
func (v *LoginView) HideError() { v.ErrorVisible = false }

// RulesView is an in-memory rules table.
type RulesView struct {
	Rows    []*ukadmin.RuleRow
	Cleared int

	toggle func(row *ukadmin.RuleRow) error
}

func (v *RulesView) Clear() {
	v.Rows = nil
	v.Cleared++
}

func (v *RulesView) AppendRow(row *ukadmin.RuleRow) {
	v.Rows = append(v.Rows, row)
}

func (v *RulesView) SetRowDisabled(row *ukadmin.RuleRow, disabled bool) {
	row.Disabled = disabled
}

func (v *RulesView) OnToggle(fn func(row *ukadmin.RuleRow) error) {
	v.toggle = fn
}

// Change simulates the operator flipping the enabled control of a row.
func (v *RulesView) Change(row *ukadmin.RuleRow) error {
	if v.toggle == nil {
		return nil
	}
	return v.toggle(row)
}

// RuleForm is an in-memory form.
type RuleForm struct {
	Values map[ukadmin.RuleField]string
}

// NewRuleForm returns an empty form.
func NewRuleForm() *RuleForm {
	return &RuleForm{Values: make(map[ukadmin.RuleField]string)}
}

func (f *RuleForm) Value(field ukadmin.RuleField) string {
	return f.Values[field]
}

func (f *RuleForm) SetValue(field ukadmin.RuleField, value string) {
	f.Values[field] = value
}

// PreviewView records the state of the preview panel.
type PreviewView struct {
	mu sync.Mutex

	Tip           string
	TipVisible    bool
	LoaderVisible bool
	ButtonLoading bool
	Visible       bool
	Scrolled      int
	Slots         map[ukadmin.PreviewSlot]string

	// ButtonStates records every SetButtonLoading call in order.
	ButtonStates []bool
}

// NewPreviewView returns a hidden, empty panel.
func NewPreviewView() *PreviewView {
	return &PreviewView{Slots: make(map[ukadmin.PreviewSlot]string)}
}

func (v *PreviewView) ShowTip(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Tip = msg
	v.TipVisible = true
}

func (v *PreviewView) HideTip() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.TipVisible = false
}

func (v *PreviewView) ShowLoader() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.LoaderVisible = true
}

func (v *PreviewView) HideLoader() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.LoaderVisible = false
}

func (v *PreviewView) SetButtonLoading(loading bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ButtonLoading = loading
	v.ButtonStates = append(v.ButtonStates, loading)
}

func (v *PreviewView) SetSlot(slot ukadmin.PreviewSlot, html string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Slots[slot] = html
}

func (v *PreviewView) Show() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Visible = true
}

func (v *PreviewView) ScrollIntoView() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Scrolled++
}

// Slot returns the content of a slot.
func (v *PreviewView) Slot(slot ukadmin.PreviewSlot) (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	s, ok := v.Slots[slot]
	return s, ok
}

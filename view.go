package ukadmin

// Locations the client navigates to.
const (
	LocationRoot  = "/"
	LocationLogin = "/login/"
	LocationEdit  = "/edit/"
)

// Navigator moves the client to another page. Navigation ends the current
// page: controllers do not touch their views after navigating.
type Navigator interface {
	Navigate(location string)
}

// LoginView is the login form.
type LoginView interface {
	ShowError()
	HideError()
}

// RulesView is the rules table.
type RulesView interface {
	// Clear removes all rows.
	Clear()

	// AppendRow adds a row. Rows with Disabled set are drawn as disabled.
	AppendRow(row *RuleRow)

	// SetRowDisabled updates the row's visual state.
	SetRowDisabled(row *RuleRow, disabled bool)

	// OnToggle registers the handler called when a row's enabled control changes.
	// Registering again replaces the previous handler. The handler returns
	// the service error, if any.
	OnToggle(fn func(row *RuleRow) error)
}

// RuleForm is the set of editable rule fields.
type RuleForm interface {
	Value(field RuleField) string
	SetValue(field RuleField, value string)
}

// PreviewView is the preview panel with its trigger button, tip and the
// shared loader.
type PreviewView interface {
	ShowTip(msg string)
	HideTip()
	ShowLoader()
	HideLoader()
	SetButtonLoading(loading bool)

	// SetSlot fills a display slot with HTML.
	SetSlot(slot PreviewSlot, html string)

	// Show reveals the panel and ScrollIntoView brings it into view.
	Show()
	ScrollIntoView()
}

// Key identifies a keyboard key.
type Key int

// Keys the editor reacts to.
const (
	KeyOther Key = iota
	KeyEnter
)

// KeyEvent is a key press inside a form field.
type KeyEvent struct {
	Key  Key
	Ctrl bool
}

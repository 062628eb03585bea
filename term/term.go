// Package term implements the ukadmin views for a terminal. Views write
// plain text to an io.Writer.
package term

import (
	"fmt"
	"io"
	"sync"

	"github.com/ukeeper/ukadmin"
)

// Compile-time interface verification.
var (
	_ ukadmin.Navigator = (*Navigator)(nil)
	_ ukadmin.LoginView = (*LoginPrompt)(nil)
)

// Navigator records where a controller sent the client. A terminal has no
// pages, so commands read the location to decide what to print next.
type Navigator struct {
	mu       sync.Mutex
	location string
}

// Navigate records location.
func (n *Navigator) Navigate(location string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.location = location
}

// Location returns the last location, or "" if there was no navigation.
func (n *Navigator) Location() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.location
}

// LoginErrorMessage is printed when a login attempt fails.
const LoginErrorMessage = "wrong login or password"

// LoginPrompt is the login form's error slot.
type LoginPrompt struct {
	w       io.Writer
	visible bool
}

// NewLoginPrompt returns a LoginPrompt writing to w.
func NewLoginPrompt(w io.Writer) *LoginPrompt {
	return &LoginPrompt{w: w}
}

// ShowError prints the error once until it is hidden again.
func (p *LoginPrompt) ShowError() {
	if p.visible {
		return
	}
	p.visible = true
	fmt.Fprintln(p.w, LoginErrorMessage)
}

// HideError hides the error.
func (p *LoginPrompt) HideError() {
	p.visible = false
}

// ErrorVisible reports whether the error is shown.
func (p *LoginPrompt) ErrorVisible() bool {
	return p.visible
}

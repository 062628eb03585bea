package term

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ukeeper/ukadmin"
)

// Ensure PreviewPanel implements ukadmin.PreviewView at compile time.
var _ ukadmin.PreviewView = (*PreviewPanel)(nil)

// slotHeadings are printed above each slot.
var slotHeadings = map[ukadmin.PreviewSlot]string{
	ukadmin.SlotTitle:       "Title",
	ukadmin.SlotContent:     "Content",
	ukadmin.SlotRichContent: "Rich content",
	ukadmin.SlotExcerpt:     "Excerpt",
}

// PreviewPanel prints an extraction result. Slots are rendered through the
// Renderer registered for them; slots without one print their raw value.
// Tips and the loading state go to the status writer.
type PreviewPanel struct {
	out       io.Writer
	status    io.Writer
	renderers map[ukadmin.PreviewSlot]ukadmin.Renderer

	mu      sync.Mutex
	slots   map[ukadmin.PreviewSlot]string
	tip     string
	loading bool
}

// NewPreviewPanel returns a panel printing results to out and status lines
// to status.
func NewPreviewPanel(out, status io.Writer) *PreviewPanel {
	return &PreviewPanel{
		out:       out,
		status:    status,
		renderers: make(map[ukadmin.PreviewSlot]ukadmin.Renderer),
		slots:     make(map[ukadmin.PreviewSlot]string),
	}
}

// SetRenderer registers r for slot.
func (p *PreviewPanel) SetRenderer(slot ukadmin.PreviewSlot, r ukadmin.Renderer) {
	p.renderers[slot] = r
}

// ShowTip prints msg.
func (p *PreviewPanel) ShowTip(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tip = msg
	fmt.Fprintln(p.status, msg)
}

// HideTip hides the tip.
func (p *PreviewPanel) HideTip() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tip = ""
}

// Tip returns the visible tip, or "".
func (p *PreviewPanel) Tip() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tip
}

// ShowLoader prints a loading line.
func (p *PreviewPanel) ShowLoader() {
	fmt.Fprintln(p.status, "loading...")
}

// HideLoader does nothing; the loading line stays in the scrollback.
func (p *PreviewPanel) HideLoader() {}

// SetButtonLoading records the button state.
func (p *PreviewPanel) SetButtonLoading(loading bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = loading
}

// Loading reports whether the button is in its loading state.
func (p *PreviewPanel) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// SetSlot fills slot with html.
func (p *PreviewPanel) SetSlot(slot ukadmin.PreviewSlot, html string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.slots[slot] = html
}

// Show prints the filled slots in display order.
func (p *PreviewPanel) Show() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, slot := range ukadmin.PreviewSlots {
		html, ok := p.slots[slot]
		if !ok {
			continue
		}
		fmt.Fprintf(p.out, "== %s ==\n%s\n\n", slotHeadings[slot], p.render(slot, html))
	}
}

// ScrollIntoView does nothing; output is already at the bottom.
func (p *PreviewPanel) ScrollIntoView() {}

// render falls back to the raw value if the renderer fails.
func (p *PreviewPanel) render(slot ukadmin.PreviewSlot, html string) string {
	r, ok := p.renderers[slot]
	if !ok {
		return strings.TrimSpace(html)
	}
	text, err := r.Render(html)
	if err != nil {
		return strings.TrimSpace(html)
	}
	return text
}

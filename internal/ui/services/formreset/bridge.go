package formreset

import "log"

// Notifier delivers form-clear notifications. widgetmgr.Manager satisfies it.
type Notifier interface {
	AddFormClearedListener(formID string, fn func()) func()
}

// Bridge forwards clears of one form to a reset handler until it is closed
type Bridge struct {
	formID  string
	onReset func()
	remove  func()
	closed  bool
}

// New registers onReset for clears of formID. An empty formID yields a bridge
// that never fires, for widgets outside any form.
func New(notifier Notifier, formID string, onReset func()) *Bridge {
	b := &Bridge{formID: formID, onReset: onReset}
	if formID == "" {
		return b
	}
	b.remove = notifier.AddFormClearedListener(formID, b.handle)
	return b
}

func (b *Bridge) handle() {
	if b.closed {
		return
	}
	log.Printf("FormReset: form %q cleared", b.formID)
	b.onReset()
}

// FormID returns the form the bridge listens to
func (b *Bridge) FormID() string {
	return b.formID
}

// Active reports whether the bridge is registered with a notifier
func (b *Bridge) Active() bool {
	return b.remove != nil && !b.closed
}

// Close deregisters the bridge. Safe to call more than once.
func (b *Bridge) Close() {
	if b.closed {
		return
	}
	b.closed = true
	if b.remove != nil {
		b.remove()
	}
}

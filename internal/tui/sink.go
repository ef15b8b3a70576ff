package tui

import "github.com/averlane/bankist/internal/session"

const loggedOutPrompt = "Log in to get started"

// Sink implements session.View by capturing render commands into plain
// state the bubbletea model reads when drawing. The session holds the same
// pointer across the whole run, so commands issued inside an Update call
// are visible to the very next View call.
type Sink struct {
	dashboard    session.Dashboard
	welcome      string
	timer        string
	pendingClear session.FieldSet
	loggedIn     bool
}

// NewSink creates a sink showing the logged-out prompt.
func NewSink() *Sink {
	return &Sink{welcome: loggedOutPrompt}
}

// RenderDashboard captures the dashboard snapshot.
func (v *Sink) RenderDashboard(d session.Dashboard) {
	v.dashboard = d
	v.loggedIn = true
}

// RenderWelcome captures the welcome banner.
func (v *Sink) RenderWelcome(firstName string) {
	v.welcome = "Welcome, " + firstName + "!"
	v.loggedIn = true
}

// RenderLoggedOut switches the sink back to the logged-out prompt.
func (v *Sink) RenderLoggedOut() {
	v.welcome = loggedOutPrompt
	v.loggedIn = false
	v.dashboard = session.Dashboard{}
	v.timer = ""
}

// RenderTimer captures the countdown clock label.
func (v *Sink) RenderTimer(clock string) {
	v.timer = clock
}

// ClearFields accumulates field-wipe requests until the model consumes
// them.
func (v *Sink) ClearFields(fields session.FieldSet) {
	v.pendingClear |= fields
}

// TakeClears returns and resets the accumulated field-wipe requests.
func (v *Sink) TakeClears() session.FieldSet {
	fields := v.pendingClear
	v.pendingClear = 0
	return fields
}

package session

// IdleTimer is the inactivity countdown. Each successful login starts a new
// generation; ticks from an older generation are dead on arrival, so a
// countdown belonging to a previous login can never fire against the
// current session.
type IdleTimer struct {
	remaining  int
	generation int
	running    bool
}

// Start begins a fresh countdown and returns its generation. Any countdown
// already running is implicitly cancelled: its generation is now stale.
func (t *IdleTimer) Start(seconds int) int {
	t.generation++
	t.remaining = seconds
	t.running = true
	return t.generation
}

// Stop cancels the countdown.
func (t *IdleTimer) Stop() {
	t.running = false
}

// Live reports whether the given generation is the one currently counting
// down.
func (t *IdleTimer) Live(generation int) bool {
	return t.running && generation == t.generation
}

// Tick decrements the countdown by one second and returns what remains.
func (t *IdleTimer) Tick() int {
	t.remaining--
	return t.remaining
}

// Remaining returns the seconds left on the countdown.
func (t *IdleTimer) Remaining() int {
	return t.remaining
}

// Generation returns the current countdown generation.
func (t *IdleTimer) Generation() int {
	return t.generation
}

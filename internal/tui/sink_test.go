package tui

import (
	"testing"

	"github.com/averlane/bankist/internal/session"
	"github.com/stretchr/testify/assert"
)

func TestSinkStartsLoggedOut(t *testing.T) {
	sink := NewSink()

	assert.False(t, sink.loggedIn)
	assert.Equal(t, "Log in to get started", sink.welcome)
}

func TestSinkAccumulatesClears(t *testing.T) {
	sink := NewSink()

	sink.ClearFields(session.FieldsTransfer)
	sink.ClearFields(session.FieldsLoan)

	fields := sink.TakeClears()
	assert.NotZero(t, fields&session.FieldsTransfer)
	assert.NotZero(t, fields&session.FieldsLoan)
	assert.Zero(t, fields&session.FieldsClose)

	assert.Zero(t, sink.TakeClears(), "clears are consumed exactly once")
}

func TestSinkLoggedOutResetsEverything(t *testing.T) {
	sink := NewSink()

	sink.RenderWelcome("Alex")
	sink.RenderTimer("05:00")
	sink.RenderDashboard(session.Dashboard{BalanceLabel: "€100.00"})
	assert.True(t, sink.loggedIn)

	sink.RenderLoggedOut()

	assert.False(t, sink.loggedIn)
	assert.Equal(t, "Log in to get started", sink.welcome)
	assert.Empty(t, sink.timer)
	assert.Empty(t, sink.dashboard.BalanceLabel)
}

package format

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDateLabel(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		when     time.Time
		locale   string
		expected string
	}{
		{name: "today", when: now, locale: "en-GB", expected: "Today"},
		{name: "yesterday", when: now.AddDate(0, 0, -1), locale: "en-GB", expected: "Yesterday"},
		{name: "three days ago", when: now.AddDate(0, 0, -3), locale: "en-GB", expected: "3 days ago"},
		{name: "a week ago", when: now.AddDate(0, 0, -7), locale: "en-GB", expected: "7 days ago"},
		{name: "beyond a week uk", when: time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC), locale: "en-GB", expected: "02/08/2026"},
		{name: "beyond a week us", when: time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC), locale: "en-US", expected: "8/2/2026"},
		{name: "beyond a week german", when: time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC), locale: "de-DE", expected: "2.8.2026"},
		{name: "unknown locale falls back to iso", when: time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC), locale: "xx-XX", expected: "2026-08-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DateLabel(now, tt.when, tt.locale))
		})
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		name      string
		remaining int
		expected  string
	}{
		{name: "full countdown", remaining: 300, expected: "05:00"},
		{name: "under a minute", remaining: 59, expected: "00:59"},
		{name: "zero", remaining: 0, expected: "00:00"},
		{name: "negative clamps to zero", remaining: -5, expected: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clock(tt.remaining))
		})
	}
}

func TestMoney(t *testing.T) {
	// Exact spellings belong to x/text; we only pin down the parts that
	// matter: the right currency marker and the digits.
	usd := Money(decimal.NewFromInt(1300), "en-US", "USD")
	assert.Contains(t, usd, "$")
	assert.Contains(t, usd, "300")

	eur := Money(decimal.NewFromInt(450), "pt-PT", "EUR")
	assert.Contains(t, eur, "€")
	assert.Contains(t, eur, "450")
}

func TestMoneyBadCurrencyFallsBack(t *testing.T) {
	got := Money(decimal.RequireFromString("12.5"), "en-US", "???")
	assert.Equal(t, "12.50", got)
}

func TestMoneyBadLocaleStillFormats(t *testing.T) {
	got := Money(decimal.NewFromInt(90), "not a locale", "EUR")
	assert.True(t, strings.Contains(got, "€") || strings.Contains(got, "EUR"))
}

func TestDateTime(t *testing.T) {
	ts := time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC)

	assert.Equal(t, "30/08/2026, 14:05", DateTime(ts, "en-GB"))
	assert.Equal(t, "8/30/2026, 2:05 PM", DateTime(ts, "en-US"))
	assert.Equal(t, "2026-08-30 14:05", DateTime(ts, "xx-XX"))
}

// Package format produces the locale-aware display strings handed to the
// view layer: monetary labels, relative date labels and the countdown clock.
package format

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Calendar date layouts per supported locale. Anything unknown falls back
// to ISO 8601.
var dateLayouts = map[string]string{
	"en-US": "1/2/2006",
	"en-GB": "02/01/2006",
	"pt-PT": "02/01/2006",
	"de-DE": "2.1.2006",
}

var dateTimeLayouts = map[string]string{
	"en-US": "1/2/2006, 3:04 PM",
	"en-GB": "02/01/2006, 15:04",
	"pt-PT": "02/01/2006, 15:04",
	"de-DE": "2.1.2006, 15:04",
}

// Money renders an amount as a locale- and currency-aware monetary label.
// Unparseable locales or currency codes degrade to a plain numeric string
// rather than failing; formatting is presentation, never a hard error.
func Money(amount decimal.Decimal, locale, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return amount.StringFixed(2)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	value, _ := amount.Float64()
	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(unit.Amount(value)))
}

// DateLabel renders a movement date relative to now: "Today", "Yesterday",
// "n days ago" up to a week, then a locale calendar date.
func DateLabel(now, t time.Time, locale string) string {
	days := daysBetween(now, t)

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days <= 7:
		return fmt.Sprintf("%d days ago", days)
	}

	layout, ok := dateLayouts[locale]
	if !ok {
		layout = "2006-01-02"
	}
	return t.Format(layout)
}

// DateTime renders a full date-and-time header in the account's locale.
func DateTime(t time.Time, locale string) string {
	layout, ok := dateTimeLayouts[locale]
	if !ok {
		layout = "2006-01-02 15:04"
	}
	return t.Format(layout)
}

// Clock renders a remaining-seconds countdown as zero-padded mm:ss.
func Clock(remaining int) string {
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)
}

func daysBetween(a, b time.Time) int {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Round(diff.Hours() / 24))
}

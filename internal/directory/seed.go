package directory

import (
	"time"

	"github.com/averlane/bankist/internal/model"
	"github.com/shopspring/decimal"
)

// seedAccount describes one demo account: signed movement amounts paired with
// how many days ago each movement happened.
type seedAccount struct {
	owner    string
	locale   string
	currency string
	amounts  []int64
	daysAgo  []int
	rate     float64
	pin      int
}

var seedAccounts = []seedAccount{
	{
		owner:    "Alex Domas",
		amounts:  []int64{200, 450, -400, 3000, -650, -130, 70, 1300},
		daysAgo:  []int{320, 250, 180, 120, 40, 8, 1, 0},
		rate:     1.2,
		pin:      1111,
		locale:   "pt-PT",
		currency: "EUR",
	},
	{
		owner:    "Jessica Davis",
		amounts:  []int64{5000, 3400, -150, -790, -3210, -1000, 8500, -30},
		daysAgo:  []int{400, 310, 230, 150, 90, 30, 2, 1},
		rate:     1.5,
		pin:      2222,
		locale:   "en-US",
		currency: "USD",
	},
	{
		owner:    "Steven Thomas Williams",
		amounts:  []int64{200, -200, 340, -300, -20, 50, 400, -460},
		daysAgo:  []int{450, 360, 270, 180, 90, 21, 5, 2},
		rate:     0.7,
		pin:      3333,
		locale:   "en-GB",
		currency: "GBP",
	},
	{
		owner:    "Sarah Smith",
		amounts:  []int64{430, 1000, 700, 50, 90},
		daysAgo:  []int{90, 60, 14, 3, 0},
		rate:     1,
		pin:      4444,
		locale:   "de-DE",
		currency: "EUR",
	},
}

// Seed builds the demo directory. Movement dates are laid out relative to
// now so the dashboard shows the whole range of date labels, from "Today"
// down to plain calendar dates.
func Seed(now time.Time) *Directory {
	accounts := make([]*model.Account, 0, len(seedAccounts))
	for _, s := range seedAccounts {
		acc := &model.Account{
			Owner:        s.owner,
			Locale:       s.locale,
			Currency:     s.currency,
			InterestRate: decimal.NewFromFloat(s.rate),
			PIN:          s.pin,
			Movements:    make([]model.Movement, 0, len(s.amounts)),
		}
		for i, amount := range s.amounts {
			acc.Movements = append(acc.Movements, model.Movement{
				Amount: decimal.NewFromInt(amount),
				Date:   now.AddDate(0, 0, -s.daysAgo[i]),
			})
		}
		accounts = append(accounts, acc)
	}
	return New(accounts)
}

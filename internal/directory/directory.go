// Package directory holds the fixed set of demo accounts and the login
// handle index over them.
package directory

import (
	"strings"
	"unicode"

	"github.com/averlane/bankist/internal/model"
)

// Directory is the collection of accounts known to the app. Accounts are
// seeded once at startup and only ever removed, via closure.
type Directory struct {
	byHandle map[string]*model.Account
	accounts []*model.Account
}

// New builds a directory over the given accounts and derives their login
// handles. When two owners yield identical initials the later account wins
// at lookup; collisions are a known limitation of the handle scheme.
func New(accounts []*model.Account) *Directory {
	d := &Directory{accounts: accounts}
	d.DeriveHandles()
	return d
}

// DeriveHandles assigns each account its login handle: the first letter of
// every whitespace-separated token of the owner name, lowercased and
// concatenated. Safe to re-run; the result never changes for a given owner.
func (d *Directory) DeriveHandles() {
	for _, acc := range d.accounts {
		acc.Handle = deriveHandle(acc.Owner)
	}
	d.reindex()
}

func deriveHandle(owner string) string {
	var b strings.Builder
	for _, token := range strings.Fields(owner) {
		for _, r := range token {
			b.WriteRune(unicode.ToLower(r))
			break
		}
	}
	return b.String()
}

func (d *Directory) reindex() {
	d.byHandle = make(map[string]*model.Account, len(d.accounts))
	for _, acc := range d.accounts {
		d.byHandle[acc.Handle] = acc
	}
}

// FindByHandle looks up an account by login handle.
func (d *Directory) FindByHandle(handle string) (*model.Account, bool) {
	acc, ok := d.byHandle[handle]
	return acc, ok
}

// Remove deletes an account by identity. Removing an account that is not
// present is a no-op, mirroring the idempotent close operation.
func (d *Directory) Remove(acc *model.Account) {
	for i, a := range d.accounts {
		if a == acc {
			d.accounts = append(d.accounts[:i], d.accounts[i+1:]...)
			d.reindex()
			return
		}
	}
}

// Accounts returns a snapshot of the current account list.
func (d *Directory) Accounts() []*model.Account {
	out := make([]*model.Account, len(d.accounts))
	copy(out, d.accounts)
	return out
}

// Len reports the number of accounts currently in the directory.
func (d *Directory) Len() int {
	return len(d.accounts)
}

package pms

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Account is a user of the system and the portfolio it owns.
type Account struct {
	// ID tells apart accounts registered under the same username.
	ID        uuid.UUID
	Username  string
	password  string
	Portfolio *Portfolio
}

// Registry holds the registered accounts, in registration order.
//
// Passwords are stored and compared in plain text: the registry only tells
// users apart, it is not a security boundary.
//
// The zero Registry is empty and ready to use.
type Registry struct {
	accounts []*Account
}

// Register creates an account with an empty portfolio.
//
// Usernames are not required to be unique: registering an existing
// username creates a second, independent account.
func (r *Registry) Register(username, password string) *Account {
	a := &Account{
		ID:        uuid.New(),
		Username:  username,
		password:  password,
		Portfolio: new(Portfolio),
	}
	r.accounts = append(r.accounts, a)
	l.Debug("account registered", zap.String("username", username), zap.Stringer("id", a.ID))
	return a
}

// Login returns the first account, in registration order, matching both
// username and password.
//
// An unknown username and a wrong password are reported the same way.
func (r *Registry) Login(username, password string) (*Account, bool) {
	for _, a := range r.accounts {
		if a.Username == username && a.Authenticate(password) {
			return a, true
		}
	}
	return nil, false
}

// Len returns the number of registered accounts.
func (r *Registry) Len() int { return len(r.accounts) }

// Authenticate reports whether password is the account password.
func (a *Account) Authenticate(password string) bool {
	return a.password == password
}

// Package session implements the interactive, menu driven, portfolio
// management session.
//
// Input is read as white space separated tokens, so several answers can be
// typed on the same line.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/etnz/pms"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Session is a menu loop over a registry of accounts.
type Session struct {
	w io.Writer
	s *bufio.Scanner

	Registry *pms.Registry
	// File is where the portfolio menu saves and loads portfolios.
	File string
	// Currency is the display currency of amounts.
	Currency string
}

// New creates a Session writing prompts to w and reading answers from r.
func New(w io.Writer, r io.Reader, registry *pms.Registry) *Session {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &Session{
		w:        w,
		s:        s,
		Registry: registry,
		File:     pms.DefaultFile,
		Currency: pms.DefaultCurrency,
	}
}

// errQuit is returned by the readers when the input is exhausted.
var errQuit = errors.New("end of input")

// next prints prompt and returns the next token.
func (s *Session) next(prompt string) (string, error) {
	fmt.Fprint(s.w, prompt)
	if !s.s.Scan() {
		if err := s.s.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	return s.s.Text(), nil
}

func (s *Session) choice() (int, error) {
	tok, err := s.next("Enter your choice: ")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, nil // zero is never a valid choice
	}
	return n, nil
}

func (s *Session) decimal(prompt string) (decimal.Decimal, error) {
	tok, err := s.next(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	v, err := decimal.NewFromString(tok)
	if err != nil {
		return decimal.Zero, &inputError{tok, err}
	}
	return v, nil
}

func (s *Session) integer(prompt string) (int64, error) {
	tok, err := s.next(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, &inputError{tok, err}
	}
	return v, nil
}

// inputError is a malformed answer. It aborts the current action only.
type inputError struct {
	token string
	err   error
}

func (e *inputError) Error() string { return fmt.Sprintf("invalid number %q: %v", e.token, e.err) }
func (e *inputError) Unwrap() error { return e.err }

// Run runs the top menu until the user exits, the input ends or ctx is
// done. ctx is checked before each menu: a pending read is not interrupted.
func (s *Session) Run(ctx context.Context) error {
	err := s.run(ctx)
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

func (s *Session) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintln(s.w, "\n--- Portfolio Management System ---")
		fmt.Fprintln(s.w, "1. Register")
		fmt.Fprintln(s.w, "2. Login")
		fmt.Fprintln(s.w, "3. Exit")
		c, err := s.choice()
		if err != nil {
			return err
		}
		switch c {
		case 1:
			err = s.register()
		case 2:
			err = s.login(ctx)
		case 3:
			fmt.Fprintln(s.w, "Exiting system...")
			return nil
		default:
			fmt.Fprintln(s.w, "Invalid choice. Try again!")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) credentials() (username, password string, err error) {
	if username, err = s.next("Enter username: "); err != nil {
		return
	}
	password, err = s.next("Enter password: ")
	return
}

func (s *Session) register() error {
	u, p, err := s.credentials()
	if err != nil {
		return err
	}
	s.Registry.Register(u, p)
	fmt.Fprintln(s.w, "Registration successful!")
	return nil
}

func (s *Session) login(ctx context.Context) error {
	u, p, err := s.credentials()
	if err != nil {
		return err
	}
	a, ok := s.Registry.Login(u, p)
	if !ok {
		fmt.Fprintln(s.w, "Invalid username or password!")
		return nil
	}
	fmt.Fprintln(s.w, "Login successful!")
	l.Debug("session login", zap.String("username", u), zap.Stringer("id", a.ID))
	return s.manage(ctx, a.Portfolio)
}

// manage runs the portfolio menu of a logged in account.
func (s *Session) manage(ctx context.Context, p *pms.Portfolio) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintln(s.w, "\n--- Portfolio Management ---")
		fmt.Fprintln(s.w, "1. Add Investment")
		fmt.Fprintln(s.w, "2. Remove Investment")
		fmt.Fprintln(s.w, "3. View Portfolio")
		fmt.Fprintln(s.w, "4. Save Portfolio")
		fmt.Fprintln(s.w, "5. Load Portfolio")
		fmt.Fprintln(s.w, "6. Calculate Diversification")
		fmt.Fprintln(s.w, "7. Exit")
		c, err := s.choice()
		if err != nil {
			return err
		}
		switch c {
		case 1:
			err = s.add(p)
		case 2:
			err = s.remove(p)
		case 3:
			s.view(p)
		case 4:
			if err := p.SaveTo(s.File); err != nil {
				fmt.Fprintf(s.w, "Error: %v\n", err)
				break
			}
			fmt.Fprintln(s.w, "Portfolio saved!")
		case 5:
			if _, err := p.LoadFrom(s.File); err != nil {
				fmt.Fprintf(s.w, "Error: %v\n", err)
				break
			}
			fmt.Fprintln(s.w, "Portfolio loaded!")
		case 6:
			s.diversification(p)
		case 7:
			fmt.Fprintln(s.w, "Exiting portfolio management...")
			return nil
		default:
			fmt.Fprintln(s.w, "Invalid choice. Try again!")
		}

		var ierr *inputError
		if errors.As(err, &ierr) {
			fmt.Fprintf(s.w, "Error: %v\n", ierr)
			continue
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) add(p *pms.Portfolio) error {
	tok, err := s.next("Enter investment type (stock/bond/mutual/crypto): ")
	if err != nil {
		return err
	}
	kind, known := pms.ParseKindAlias(tok)
	name, err := s.next("Enter name: ")
	if err != nil {
		return err
	}
	if !known {
		fmt.Fprintf(s.w, "Unknown investment type %q.\n", tok)
		return nil
	}

	var h pms.Holding
	switch kind {
	case pms.Stock:
		shares, err := s.integer("Enter shares: ")
		if err != nil {
			return err
		}
		price, err := s.decimal("Enter current price per share: ")
		if err != nil {
			return err
		}
		h = pms.NewStock(name, shares, price)
	case pms.Bond:
		amount, err := s.decimal("Enter amount: ")
		if err != nil {
			return err
		}
		rate, err := s.decimal("Enter interest rate: ")
		if err != nil {
			return err
		}
		h = pms.NewBond(name, amount, rate)
	case pms.MutualFund:
		amount, err := s.decimal("Enter amount: ")
		if err != nil {
			return err
		}
		nav, err := s.decimal("Enter NAV: ")
		if err != nil {
			return err
		}
		h = pms.NewMutualFund(name, amount, nav)
	case pms.Cryptocurrency:
		units, err := s.decimal("Enter units: ")
		if err != nil {
			return err
		}
		price, err := s.decimal("Enter current price per unit: ")
		if err != nil {
			return err
		}
		h = pms.NewCryptocurrency(name, units, price)
	}
	p.Add(h)
	l.Debug("holding added", zap.Stringer("kind", kind), zap.String("name", name))
	return nil
}

func (s *Session) remove(p *pms.Portfolio) error {
	s.list(p)
	i, err := s.integer("Enter index to remove: ")
	if err != nil {
		return err
	}
	if !p.RemoveAt(int(i - 1)) {
		fmt.Fprintf(s.w, "No investment at index %d.\n", i)
	}
	return nil
}

func (s *Session) list(p *pms.Portfolio) {
	if p.Len() == 0 {
		fmt.Fprintln(s.w, "No investments in the portfolio.")
		return
	}
	for i, h := range p.All() {
		fmt.Fprintf(s.w, "%d. %s\n", i, h.Summary(s.Currency))
	}
}

func (s *Session) view(p *pms.Portfolio) {
	s.list(p)
	fmt.Fprintf(s.w, "Total Portfolio Value: %s\n", pms.M(p.TotalValue(), s.Currency))
}

func (s *Session) diversification(p *pms.Portfolio) {
	d, err := p.Diversification()
	if err != nil {
		fmt.Fprintf(s.w, "Cannot compute diversification: %v\n", err)
		return
	}
	fmt.Fprintln(s.w, "\nDiversification:")
	for _, k := range pms.Kinds() {
		fmt.Fprintf(s.w, "%s: %s\n", k.Label(), d.Percent(k))
	}
	fmt.Fprintf(s.w, "Diversification Ratio: %.4f\n", d.Ratio)
}

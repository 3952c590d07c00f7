package pms

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// This file contains the codec of the portfolio file.
//
// The format is plain text, one holding per line:
//
//	<Kind> <name> <baseAmount> <referencePrice> <field>
//
// where <field> is the number of shares (an integer) for a Stock, the
// interest rate for a Bond, the NAV for a MutualFund and the number of units
// for a Cryptocurrency.
//
// Fields are whitespace separated tokens and there is no quoting: a name
// that is empty or contains white space cannot be read back, so it is
// rejected by the encoder.
//
// The decoder reads a stream of tokens, line breaks are not significant.

// ErrUnknownKind is reported when a record starts with an unknown tag.
var ErrUnknownKind = errors.New("unknown holding kind")

// ErrInvalidName is reported for a name that cannot be read back: empty or
// containing white space.
var ErrInvalidName = errors.New("invalid holding name")

// CheckName returns an error wrapping ErrInvalidName if name cannot be
// stored in the portfolio file.
func CheckName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return fmt.Errorf("%w %q: contains white space", ErrInvalidName, name)
	}
	return nil
}

// ParseError describes a record that could not be decoded.
type ParseError struct {
	Record int    // 1-based record number
	Field  string // name of the field being decoded
	Token  string // offending token, empty when the input ended
	Err    error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("record %d: missing %s: %v", e.Record, e.Field, e.Err)
	}
	return fmt.Sprintf("record %d: invalid %s %q: %v", e.Record, e.Field, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// EncodeHolding writes h as a single record. It fails, without writing
// anything, if the name of h cannot be read back.
func EncodeHolding(w io.Writer, h Holding) error {
	if err := CheckName(h.name); err != nil {
		return fmt.Errorf("cannot encode holding: %w", err)
	}
	var field string
	switch h.kind {
	case Stock:
		field = strconv.FormatInt(h.shares, 10)
	case Bond:
		field = h.rate.String()
	case MutualFund:
		field = h.nav.String()
	case Cryptocurrency:
		field = h.units.String()
	default:
		return fmt.Errorf("cannot encode holding %q: %w %d", h.name, ErrUnknownKind, h.kind)
	}
	if _, err := fmt.Fprintf(w, "%s %s %s %s %s\n", h.kind, h.name, h.base, h.price, field); err != nil {
		return fmt.Errorf("failed to write holding %q: %w", h.name, err)
	}
	return nil
}

// EncodeHoldings writes every holding of p, in order.
func EncodeHoldings(w io.Writer, p *Portfolio) error {
	for _, h := range p.holdings {
		if err := EncodeHolding(w, h); err != nil {
			return err
		}
	}
	return nil
}

// Decoder reads holdings from a token stream.
type Decoder struct {
	s      *bufio.Scanner
	record int
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &Decoder{s: s}
}

// Decode reads the next holding.
//
// It returns io.EOF when the input ends on a record boundary, an error
// wrapping ErrUnknownKind when the record tag is not a known Kind, and a
// *ParseError when a field is missing or malformed. Read errors are returned
// as is.
func (d *Decoder) Decode() (Holding, error) {
	tag, err := d.token()
	if err != nil {
		return Holding{}, err
	}
	d.record++

	kind, ok := ParseKind(tag)
	if !ok {
		return Holding{}, fmt.Errorf("record %d: %w %q", d.record, ErrUnknownKind, tag)
	}

	h := Holding{kind: kind}
	if h.name, err = d.field("name"); err != nil {
		return Holding{}, err
	}
	if h.base, err = d.decimal("baseAmount"); err != nil {
		return Holding{}, err
	}
	if h.price, err = d.decimal("referencePrice"); err != nil {
		return Holding{}, err
	}
	switch kind {
	case Stock:
		h.shares, err = d.integer("shares")
	case Bond:
		h.rate, err = d.decimal("interestRate")
	case MutualFund:
		h.nav, err = d.decimal("nav")
	case Cryptocurrency:
		h.units, err = d.decimal("units")
	}
	if err != nil {
		return Holding{}, err
	}
	return h, nil
}

// token returns the next token, or io.EOF.
func (d *Decoder) token() (string, error) {
	if !d.s.Scan() {
		if err := d.s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return d.s.Text(), nil
}

// field returns the next token of the current record.
func (d *Decoder) field(name string) (string, error) {
	tok, err := d.token()
	if err == io.EOF {
		return "", &ParseError{Record: d.record, Field: name, Err: io.ErrUnexpectedEOF}
	}
	return tok, err
}

func (d *Decoder) decimal(name string) (decimal.Decimal, error) {
	tok, err := d.field(name)
	if err != nil {
		return decimal.Zero, err
	}
	v, err := decimal.NewFromString(tok)
	if err != nil {
		return decimal.Zero, &ParseError{Record: d.record, Field: name, Token: tok, Err: err}
	}
	return v, nil
}

func (d *Decoder) integer(name string) (int64, error) {
	tok, err := d.field(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, &ParseError{Record: d.record, Field: name, Token: tok, Err: err}
	}
	return v, nil
}

// DecodeHoldings reads all the holdings from r.
//
// Decoding stops without error at the first unknown tag: the format has no
// record count, so what follows cannot be interpreted. Any other decoding
// error fails the whole decoding.
func DecodeHoldings(r io.Reader) ([]Holding, error) {
	var holdings []Holding
	dec := NewDecoder(r)
	for {
		h, err := dec.Decode()
		if err == io.EOF {
			return holdings, nil
		}
		if errors.Is(err, ErrUnknownKind) {
			l.Warn("stop decoding at unknown record", zap.Error(err), zap.Int("decoded", len(holdings)))
			return holdings, nil
		}
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
}

package pms

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// DefaultFile is the name of the portfolio file when none is given.
const DefaultFile = "portfolio.txt"

// SaveTo writes the portfolio to the file at path, replacing its content.
//
// If a holding name cannot be stored, or the file cannot be opened, the
// previous content is left untouched. A failure while writing may leave it
// partially written.
func (p *Portfolio) SaveTo(path string) error {
	for _, h := range p.holdings {
		if err := CheckName(h.name); err != nil {
			return fmt.Errorf("cannot save portfolio file %q: %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening portfolio file %q for writing: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if err := EncodeHoldings(w, p); err != nil {
		f.Close()
		return fmt.Errorf("could not encode portfolio file %q: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("could not write portfolio file %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not close portfolio file %q: %w", path, err)
	}
	l.Debug("portfolio saved", zap.String("file", path), zap.Int("holdings", len(p.holdings)))
	return nil
}

// LoadFrom appends the holdings read from the file at path and returns how
// many were added.
//
// A missing file is not an error, there is simply nothing to load. If the
// file cannot be decoded the portfolio is left unchanged.
func (p *Portfolio) LoadFrom(path string) (int, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.Debug("no portfolio file, nothing to load", zap.String("file", path))
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("could not open portfolio file %q: %w", path, err)
	}
	defer f.Close()

	holdings, err := DecodeHoldings(f)
	if err != nil {
		return 0, fmt.Errorf("could not decode portfolio file %q: %w", path, err)
	}
	p.holdings = append(p.holdings, holdings...)
	l.Debug("portfolio loaded", zap.String("file", path), zap.Int("holdings", len(holdings)))
	return len(holdings), nil
}

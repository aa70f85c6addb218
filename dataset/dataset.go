// Package dataset supplies energy measurements, in keV, for building a
// spectree.Tree: a fixed sample, comma-delimited text files, and simulated
// Gaussian spectra.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/JamhadB/energy-spectrum-analyzer/spectree"
)

// ErrNonFinite is returned (wrapped in a ParseError) for NaN and infinite
// values, which have no defined position in the tree.
var ErrNonFinite = errors.New("energy is not a finite number")

// ParseError reports a field that is not a usable energy.
type ParseError struct {
	// Line is 1-based.
	Line  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid energy %q: %v", e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Sample returns the built-in example spectrum.
func Sample() []float64 {
	return []float64{30, 10, 50, 20, 10, 50, 50, 35, 27}
}

// Load parses comma-delimited energies from r. Every field on every line is
// one energy, read row by row. Blank lines and lines starting with '#' are
// skipped.
func Load(r io.Reader) ([]float64, error) {
	var energies = []float64{}
	scanner := bufio.NewScanner(r)
	var lineNo = 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, field := range strings.Split(line, ",") {
			field = strings.TrimSpace(field)
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Field: field, Err: err}
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &ParseError{Line: lineNo, Field: field, Err: ErrNonFinite}
			}
			energies = append(energies, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading energies: %w", err)
	}
	return energies, nil
}

// LoadFile reads energies from the file at path, see Load.
func LoadFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	energies, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return energies, nil
}

// Simulate draws n photon energies from a normal distribution with mean mu
// and standard deviation sigma. The same seed always gives the same
// energies.
func Simulate(n int, mu float64, sigma float64, seed uint64) []float64 {
	if n <= 0 {
		return []float64{}
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	energies := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		energies = append(energies, mu+sigma*rng.NormFloat64())
	}
	return energies
}

// Build inserts every energy into a new tree, in order.
func Build(energies []float64) *spectree.Tree {
	tree := spectree.New()
	for _, e := range energies {
		tree.Insert(e)
	}
	return tree
}

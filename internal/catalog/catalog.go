// Package catalog parses named astronomical distances.
//
// Each line holds a quoted name followed by a value, e.g.
//
//	"Mercury" "5.791*^7"
//
// where "*^" separates base and decimal exponent.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"orrery-api/internal/models"
)

const exponentMarker = "*^"

// ErrMalformedLine is wrapped by every ParseError.
var ErrMalformedLine = errors.New("malformed catalog line")

// ParseError reports the first catalog line that could not be parsed.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("catalog: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformedLine, e.Err}
}

// Records splits catalog text into raw records, preserving line order.
// Blank lines are skipped and do not count toward Position.
func Records(text string) ([]models.CatalogRecord, error) {
	var records []models.CatalogRecord

	err := eachLine(text, func(name, value string) error {
		records = append(records, models.CatalogRecord{
			Position: len(records),
			Name:     name,
			Value:    value,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// Parse converts catalog text into distances. The first malformed line fails the whole parse.
func Parse(text string) ([]models.NamedDistance, error) {
	var distances []models.NamedDistance

	err := eachLine(text, func(name, value string) error {
		d, err := ParseValue(value)
		if err != nil {
			return err
		}

		distances = append(distances, models.NamedDistance{
			Name:     strings.ToLower(name),
			Distance: d,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return distances, nil
}

// eachLine calls fn with the name and raw value of every non-blank line.
// Any failure is reported as a *ParseError for that line.
func eachLine(text string, fn func(name, value string) error) error {
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		name, value, err := splitLine(line)
		if err == nil {
			err = fn(name, value)
		}
		if err != nil {
			return &ParseError{Line: i + 1, Text: line, Err: err}
		}
	}
	return nil
}

// ParseValue evaluates a plain decimal or a "base*^exponent" value.
func ParseValue(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)

	var value float64
	if base, exp, ok := strings.Cut(raw, exponentMarker); ok {
		b, err := strconv.ParseFloat(strings.TrimSpace(base), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid base %q", base)
		}
		e, err := strconv.ParseFloat(strings.TrimSpace(exp), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid exponent %q", exp)
		}
		value = b * math.Pow(10, e)
	} else {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid value %q", raw)
		}
		value = v
	}

	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("distance out of range: %v", value)
	}
	return value, nil
}

// splitLine extracts the quoted name and the first non-blank token after it.
func splitLine(line string) (name, value string, err error) {
	tokens := strings.Split(line, `"`)
	if len(tokens) < 3 {
		return "", "", fmt.Errorf("expected a quoted name and a value, got %d tokens", len(tokens))
	}

	name = strings.TrimSpace(tokens[1])
	if name == "" {
		return "", "", errors.New("empty name")
	}

	for _, t := range tokens[2:] {
		if t = strings.TrimSpace(t); t != "" {
			return name, t, nil
		}
	}
	return "", "", errors.New("missing value")
}

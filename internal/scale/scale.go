// Package scale extracts a real-world distance from a free-text computation answer.
//
// Answers express large magnitudes as "1.496×10^8 kilometers". Kilometers are used
// because the answering service prints miles in words ("93 million miles").
package scale

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// KilometersToMiles converts the parsed kilometer value to miles.
	KilometersToMiles = 0.621371

	unitToken   = "kilometers"
	glyph       = "×"
	prefixWidth = 5
)

// ErrNoScaleFound is returned when the answer contains no parsable kilometers line.
var ErrNoScaleFound = errors.New("scale: no kilometers value found in answer")

// Resolve returns the distance, in miles, stated on the first answer line mentioning kilometers.
func Resolve(answer string) (float64, error) {
	for _, line := range strings.Split(answer, "\n") {
		if !strings.Contains(line, unitToken) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			break
		}

		km, err := parseToken(trimPrefix(fields[0]))
		if err != nil {
			km, err = parseToken(tokenBefore(fields, unitToken))
		}
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNoScaleFound, strings.TrimSpace(line))
		}

		return km * KilometersToMiles, nil
	}

	return 0, ErrNoScaleFound
}

func trimPrefix(token string) string {
	if len(token) <= prefixWidth {
		return ""
	}
	return token[prefixWidth:]
}

// tokenBefore returns the field immediately preceding the first field containing unit.
func tokenBefore(fields []string, unit string) string {
	for i, f := range fields {
		if strings.Contains(f, unit) {
			if i == 0 {
				return ""
			}
			return fields[i-1]
		}
	}
	return ""
}

// parseToken evaluates "base", "base×10^exp" or "base×10" as base·10^exp.
func parseToken(token string) (float64, error) {
	if token == "" {
		return 0, errors.New("empty token")
	}

	base, _, _ := strings.Cut(token, glyph)

	value, err := strconv.ParseFloat(base, 64)
	if err != nil {
		return 0, err
	}

	exp := 0
	if i := strings.Index(token, "^"); i >= 0 {
		exp, err = strconv.Atoi(token[i+1:])
		if err != nil {
			return 0, err
		}
	}

	value *= math.Pow(10, float64(exp))
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, fmt.Errorf("scale value %q is not a finite non-negative number", token)
	}
	return value, nil
}

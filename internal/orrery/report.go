package orrery

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"orrery-api/internal/models"
)

// EncodeText writes r in the colon-delimited line format:
//
//	distance:<miles>:<scale miles>:
//	<name>:<scaled miles>:<lat>:<lon>:
//
// with one body line per placement, in catalog order.
func EncodeText(w io.Writer, r *models.Report) error {
	bw := bufio.NewWriter(w)

	writeLine(bw, "distance", formatFloat(r.Distance), formatFloat(r.ScaleDistance))
	for _, p := range r.Placements {
		writeLine(bw, p.Name,
			formatFloat(p.ScaledDistance),
			formatFloat(p.Position.Latitude),
			formatFloat(p.Position.Longitude))
	}

	return bw.Flush()
}

// Text returns the EncodeText rendering of r.
func Text(r *models.Report) string {
	var sb strings.Builder
	_ = EncodeText(&sb, r)
	return sb.String()
}

func writeLine(w *bufio.Writer, fields ...string) {
	for _, f := range fields {
		w.WriteString(f)
		w.WriteByte(':')
	}
	w.WriteByte('\n')
}

// formatFloat prints the shortest representation that round-trips, switching to
// exponent form for very large or very small magnitudes and keeping a ".0" on
// integral values, e.g. 100.0, 0.5, 1e+16, 1e-05.
func formatFloat(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}

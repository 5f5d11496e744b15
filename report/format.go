// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// fixed renders v with exactly places decimals, rounding half away from zero
// on the shortest decimal representation of v.
func fixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}

func fixed1(v float64) string { return fixed(v, 1) }

func fixed3(v float64) string { return fixed(v, 3) }

func bullet(format string, args ...any) string {
	return "• " + fmt.Sprintf(format, args...)
}

func lines(parts []string) string { return strings.Join(parts, "\n") }

func statsText(stats []Stat) string {
	out := make([]string, len(stats))
	for i, s := range stats {
		out[i] = s.Label + "：" + s.Value
		if s.Unit != "" {
			out[i] += " " + s.Unit
		}
	}

	return lines(out)
}

const errOverflow = "aggregate overflows float64"

func count(n int) string { return strconv.Itoa(n) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func indexed(field string, i int) string { return fmt.Sprintf("%s[%d]", field, i) }

// checkPoints validates every coordinate of pts.
func checkPoints(op, field string, pts [][2]float64) error {
	for i, p := range pts {
		if !finite(p[0]) || !finite(p[1]) {
			return invalid(op, indexed(field, i), "NaN or Inf coordinate")
		}
	}

	return nil
}

func xs(pts [][2]float64) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p[0]
	}

	return out
}

func ys(pts [][2]float64) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p[1]
	}

	return out
}

func mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}

	return sum / float64(len(vs))
}

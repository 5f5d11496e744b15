// SPDX-License-Identifier: MIT

package axis

// Occupancy targets used by the report composers.
const (
	// ClusterOccupancy is used for cluster-center plots: data fill 75% of the axis.
	ClusterOccupancy = 0.75

	// TrendOccupancy is used for scatter, SFOC and history plots: data fill 80% of the axis.
	TrendOccupancy = 0.80
)

// Range is a closed axis interval [Min, Max] with Min < Max.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Span returns Max − Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Contains reports whether v lies inside [Min, Max].
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

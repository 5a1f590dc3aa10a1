// Package renderer turns prospect projections into markdown documents
// suitable for terminal display.
package renderer

import (
	"fmt"

	"github.com/fmarino/prospect"
)

// money formats a Money for table cells, "-" when empty.
func money(m prospect.Money) string {
	if s := m.String(); s != "" {
		return s
	}
	return "-"
}

// tags joins note tag labels for display.
func tags(n prospect.Note) string {
	var out string
	for i, t := range n.Tags {
		if i > 0 {
			out += ", "
		}
		out += t.Label()
	}
	return out
}

// percent formats a percentage with one decimal.
func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

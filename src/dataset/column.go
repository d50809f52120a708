package dataset

import "github.com/mosaicnetworks/fairshow/src/common"

// Column is a sortable numeric column of the comparison table.
type Column string

// Sortable columns, labelled as in the metric selector.
const (
	GeographicGini Column = "Geographic Gini"
	GrindingAttack Column = "Grinding Attack %"
	TPSThousands   Column = "TPS (thousands)"
)

// Columns lists the metric selector options in display order.
var Columns = []Column{GeographicGini, GrindingAttack, TPSThousands}

// Direction is the sort order that puts the best value first.
type Direction int

const (
	// Ascending is used for lower-is-better columns
	Ascending Direction = iota
	// Descending is used for higher-is-better columns
	Descending
)

// String ...
func (d Direction) String() string {
	if d == Ascending {
		return "ascending"
	}
	return "descending"
}

// ParseColumn maps a selector label to a Column.
func ParseColumn(label string) (Column, error) {
	c := Column(label)
	if !c.Valid() {
		return "", common.NewValidationErr("column", common.Unknown, label)
	}
	return c, nil
}

// Valid ...
func (c Column) Valid() bool {
	switch c {
	case GeographicGini, GrindingAttack, TPSThousands:
		return true
	}
	return false
}

// Direction returns Ascending for Gini and grinding success, Descending for
// throughput.
func (c Column) Direction() Direction {
	if c == TPSThousands {
		return Descending
	}
	return Ascending
}

// Value extracts the column from a row.
func (c Column) Value(r ComparisonRow) float64 {
	switch c {
	case GeographicGini:
		return r.GeographicGini
	case GrindingAttack:
		return r.GrindingAttackPercent
	case TPSThousands:
		return r.TPSThousands
	}
	return 0
}

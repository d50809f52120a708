package dataset

import (
	"sort"

	"github.com/mosaicnetworks/fairshow/src/common"
)

// ProposedWork is the name of the row every chart highlights.
const ProposedWork = "Proposed Work"

// Score names used by the radar chart, in plotting order.
const (
	SecurityScore         = "Security Score"
	DecentralizationScore = "Decentralization Score"
	ScalabilityScore      = "Scalability Score"
	VerifiableFairness    = "Verifiable Fairness"
	FinalityScore         = "Finality Score"
	EnergyEfficiency      = "Energy Efficiency"
)

// ScoreNames lists the radar metrics in plotting order.
var ScoreNames = []string{
	SecurityScore,
	DecentralizationScore,
	ScalabilityScore,
	VerifiableFairness,
	FinalityScore,
	EnergyEfficiency,
}

// Scores are authored radar values on a 0..10 scale.
type Scores struct {
	Security           float64 `json:"security"`
	Decentralization   float64 `json:"decentralization"`
	Scalability        float64 `json:"scalability"`
	VerifiableFairness float64 `json:"verifiable_fairness"`
	Finality           float64 `json:"finality"`
	EnergyEfficiency   float64 `json:"energy_efficiency"`
}

// Values returns the scores in ScoreNames order.
func (s Scores) Values() []float64 {
	return []float64{
		s.Security,
		s.Decentralization,
		s.Scalability,
		s.VerifiableFairness,
		s.Finality,
		s.EnergyEfficiency,
	}
}

// ComparisonRow is one algorithm in the comparison matrix.
type ComparisonRow struct {
	Algorithm             string  `json:"algorithm"`
	GeographicGini        float64 `json:"geographic_gini"`
	TPSThousands          float64 `json:"tps_thousands"`
	GrindingAttackPercent float64 `json:"grinding_attack_percent"`
	Scores                Scores  `json:"scores"`
}

// Highlighted reports whether the row is drawn with emphasis.
func (r ComparisonRow) Highlighted() bool {
	return r.Algorithm == ProposedWork
}

var comparisonRows = []ComparisonRow{
	{"Traditional PoS", 0.75, 1.5, 70, Scores{6, 3, 3, 1, 5, 8}},
	{"Algorand", 0.40, 12, 15, Scores{8, 7, 7, 4, 9, 8}},
	{"Tendermint", 0.55, 2.5, 25, Scores{8, 5, 4, 2, 10, 8}},
	{"Ethereum 2.0", 0.50, 50, 20, Scores{8, 6, 6, 2, 6, 8}},
	{"Solana", 0.70, 57, 35, Scores{6, 4, 10, 1, 7, 7}},
	{"Avalanche", 0.60, 5, 30, Scores{7, 6, 7, 2, 9, 8}},
	{"Cardano", 0.60, 0.6, 25, Scores{8, 6, 3, 3, 5, 9}},
	{"Polkadot", 0.55, 2, 25, Scores{8, 5, 6, 2, 7, 8}},
	{"Near Protocol", 0.65, 7.5, 40, Scores{7, 5, 8, 2, 8, 8}},
	{"Tezos", 0.60, 0.12, 30, Scores{7, 6, 2, 2, 6, 9}},
	{ProposedWork, 0.20, 12, 8, Scores{9, 9, 9, 10, 9, 8}},
}

// Rows returns a copy of the comparison table in authoring order.
func Rows() []ComparisonRow {
	rows := make([]ComparisonRow, len(comparisonRows))
	copy(rows, comparisonRows)
	return rows
}

// Algorithms returns the algorithm names in authoring order.
func Algorithms() []string {
	names := make([]string, len(comparisonRows))
	for i, r := range comparisonRows {
		names[i] = r.Algorithm
	}
	return names
}

// Lookup returns the row whose Algorithm matches name exactly.
func Lookup(name string) (ComparisonRow, error) {
	for _, r := range comparisonRows {
		if r.Algorithm == name {
			return r, nil
		}
	}
	return ComparisonRow{}, common.NewValidationErr("algorithm", common.Unknown, name)
}

// SortBy returns a copy of the table ordered by column, best first. Ties keep
// authoring order.
func SortBy(column Column) ([]ComparisonRow, error) {
	if !column.Valid() {
		return nil, common.NewValidationErr("column", common.Unknown, column)
	}

	rows := Rows()
	asc := column.Direction() == Ascending
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := column.Value(rows[i]), column.Value(rows[j])
		if asc {
			return a < b
		}
		return a > b
	})

	return rows, nil
}

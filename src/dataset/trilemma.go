package dataset

// Trilemma axes in plotting order.
var TrilemmaAxes = []string{"Security", "Decentralization", "Scalability"}

// TrilemmaProfile is a radar trace on the trilemma chart.
type TrilemmaProfile struct {
	Name   string    `json:"name"`
	Color  string    `json:"color"`
	Values []float64 `json:"values"`
}

// TrilemmaProfiles returns the Bitcoin, Solana and Proposed Work traces.
func TrilemmaProfiles() []TrilemmaProfile {
	return []TrilemmaProfile{
		{Name: "Bitcoin (PoW)", Color: "gold", Values: []float64{9, 9, 2}},
		{Name: "Solana (PoH)", Color: "purple", Values: []float64{7, 5, 10}},
		{Name: ProposedWork, Color: "green", Values: []float64{9, 9, 9}},
	}
}

// TrilemmaTable returns the header and rows of the trade-off table.
func TrilemmaTable() ([]string, [][]string) {
	header := []string{"Algorithm", "Security", "Decentralization", "Scalability", "Trade-off"}
	rows := [][]string{
		{"Bitcoin", "High", "High", "Low (7 TPS)", "Sacrifices scalability"},
		{"Solana", "Medium", "Low (Gini 0.70)", "High (65K TPS)", "Sacrifices decentralization"},
		{"Ethereum", "Medium", "Medium", "Medium", "Compromises all three"},
		{ProposedWork, "High", "High", "High", "No trade-off"},
	}
	return header, rows
}

// Regions used by the validator distribution charts.
var Regions = []string{"North America", "Europe", "Asia (Singapore)", "South America", "Africa", "Oceania"}

// RegionalDistribution returns validator share (%) per region for traditional
// PoS and for the proposed design.
func RegionalDistribution() (traditional, proposed []float64) {
	return []float64{45, 30, 15, 5, 3, 2}, []float64{18, 18, 17, 16, 16, 15}
}

package dataset

// Band is a colored range on a gauge.
type Band struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Color string  `json:"color"`
}

// Headline is one of the three headline results with its gauge.
type Headline struct {
	Label     string  `json:"label"`
	Display   string  `json:"display"`
	Delta     string  `json:"delta"`
	Inverse   bool    `json:"inverse"`
	Caption   string  `json:"caption"`
	Gauge     string  `json:"gauge"`
	Value     float64 `json:"value"`
	Max       float64 `json:"max"`
	Threshold float64 `json:"threshold"`
	Bands     []Band  `json:"bands"`
}

// Headlines returns the Gini, grinding attack and throughput results.
func Headlines() []Headline {
	return []Headline{
		{
			Label: "Geographic Fairness (Gini)", Display: "0.20", Delta: "-0.55", Inverse: true,
			Caption: "Traditional PoS: 0.75", Gauge: "Gini Coefficient",
			Value: 0.20, Max: 1, Threshold: 0.75,
			Bands: []Band{{0, 0.3, "lightgreen"}, {0.3, 0.6, "yellow"}, {0.6, 1, "red"}},
		},
		{
			Label: "Grinding Attack Success", Display: "8%", Delta: "-62%", Inverse: true,
			Caption: "Traditional PoS: 70%", Gauge: "Attack Success Rate (%)",
			Value: 8, Max: 100, Threshold: 70,
			Bands: []Band{{0, 20, "lightgreen"}, {20, 50, "yellow"}, {50, 100, "red"}},
		},
		{
			Label: "Scalability", Display: "12,000 TPS", Delta: "+10,500",
			Caption: "Traditional PoS: 1,500 TPS", Gauge: "Throughput (thousands TPS)",
			Value: 12, Max: 60, Threshold: 1.5,
			Bands: []Band{{0, 10, "red"}, {10, 30, "yellow"}, {30, 60, "lightgreen"}},
		},
	}
}

// Layer is one tier of the hybrid architecture.
type Layer struct {
	Name    string `json:"name"`
	Claim   string `json:"claim"`
	Caption string `json:"caption"`
}

// Layers returns the architecture from top (L2) to bottom (PoS base).
func Layers() []Layer {
	return []Layer{
		{"Layer 4: L2 Rollups", "Scalability: 10,000+ TPS", "Bundles transactions off-chain, submits proofs to L1"},
		{"Layer 3: BFT Consensus", "Security: ≤⅓ fault tolerance", "Byzantine Fault Tolerance with instant finality"},
		{"Layer 2: VDF Fairness", "Decentralization: Gini 0.15-0.25", "Verifiable Delay Functions neutralize latency advantage"},
		{"Layer 1: PoS Base", "Foundation: Stake-weighted validator set", "Economic security and Sybil resistance"},
	}
}

// UseCase is an application enabled by verifiable fairness.
type UseCase struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UseCases ...
func UseCases() []UseCase {
	return []UseCase{
		{"Financial Systems", "Require provable fairness for regulatory compliance"},
		{"Voting Protocols", "Need verifiable unbiased selection"},
		{"Regulated DeFi", "Auditability and transparency requirements"},
		{"Global Participation", "No geographic barriers to entry"},
	}
}

package latency

// ResponseOverheadMs is the processing time a node needs after seeing a block.
const ResponseOverheadMs = 50.0

// Node labels used in the latency charts.
const (
	FastNode = "Fast Node"
	SlowNode = "Slow Node"
)

// TimelineBar is one node's block propagation timing.
type TimelineBar struct {
	Node          string  `json:"node"`
	TimeToSeeMs   float64 `json:"time_to_see_ms"`
	TimeToRespond float64 `json:"time_to_respond_ms"`
}

// Timeline returns the block propagation bars for the fast and slow node.
func Timeline(fastLatencyMs, slowLatencyMs float64) []TimelineBar {
	return []TimelineBar{
		{Node: FastNode, TimeToSeeMs: fastLatencyMs, TimeToRespond: fastLatencyMs + ResponseOverheadMs},
		{Node: SlowNode, TimeToSeeMs: slowLatencyMs, TimeToRespond: slowLatencyMs + ResponseOverheadMs},
	}
}

// StackBar is one node's VDF time stacked under its network latency.
type StackBar struct {
	Node      string  `json:"node"`
	VDFMs     float64 `json:"vdf_ms"`
	NetworkMs float64 `json:"network_ms"`
	TotalMs   float64 `json:"total_ms"`
}

// Stack returns the stacked VDF + latency bars for the fast and slow node.
func Stack(fastLatencyMs, slowLatencyMs, vdfDelaySeconds float64) []StackBar {
	vdfMs := vdfDelaySeconds * 1000
	return []StackBar{
		{Node: FastNode, VDFMs: vdfMs, NetworkMs: fastLatencyMs, TotalMs: vdfMs + fastLatencyMs},
		{Node: SlowNode, VDFMs: vdfMs, NetworkMs: slowLatencyMs, TotalMs: vdfMs + slowLatencyMs},
	}
}

// Win probability curve parameters.
const (
	CurveMinLatencyMs = 50.0
	CurveMaxLatencyMs = 500.0
	CurvePoints       = 10
	FairWinPercent    = 50.0
)

// CurvePoint is a sample of win probability against latency.
type CurvePoint struct {
	LatencyMs   float64 `json:"latency_ms"`
	Traditional float64 `json:"traditional"`
	Proposed    float64 `json:"proposed"`
}

// WinProbabilityCurve samples CurvePoints evenly spaced latencies between
// CurveMinLatencyMs and CurveMaxLatencyMs inclusive. Traditional PoS loses win
// probability linearly with latency; with a VDF it stays flat.
func WinProbabilityCurve() []CurvePoint {
	step := (CurveMaxLatencyMs - CurveMinLatencyMs) / float64(CurvePoints-1)
	points := make([]CurvePoint, CurvePoints)
	for i := range points {
		l := CurveMinLatencyMs + float64(i)*step
		if i == CurvePoints-1 {
			l = CurveMaxLatencyMs
		}
		points[i] = CurvePoint{
			LatencyMs:   l,
			Traditional: 100 * (1 - (l-CurveMinLatencyMs)/CurveMaxLatencyMs),
			Proposed:    FairWinPercent,
		}
	}
	return points
}

package render

import (
	"fmt"
	"strconv"

	"github.com/mosaicnetworks/fairshow/src/dataset"
	"github.com/mosaicnetworks/fairshow/src/latency"
	"github.com/mosaicnetworks/fairshow/src/page"
	"github.com/mosaicnetworks/fairshow/src/progress"
	"github.com/mosaicnetworks/fairshow/src/witness"
)

func fairnessProblem(_ *page.Session, _ progress.Status) (string, []Block, error) {
	traditional, proposed := dataset.RegionalDistribution()

	curve := latency.WinProbabilityCurve()
	x := make([]float64, len(curve))
	trad := make([]float64, len(curve))
	fair := make([]float64, len(curve))
	for i, p := range curve {
		x[i], trad[i], fair[i] = p.LatencyMs, p.Traditional, p.Proposed
	}

	blocks := []Block{
		text(Text, 0, "Validator Distribution by Region", ""),
		{
			Kind: Bar, Column: 1, Title: "Validator Concentration - Traditional PoS (Gini: 0.75)",
			Bar: &BarSpec{
				XLabel: "Region", YLabel: "Validators (%)", Categories: dataset.Regions,
				Series: []Series{{Name: "Traditional PoS", Values: traditional, Color: "darkblue"}},
			},
		},
		{
			Kind: Bar, Column: 2, Title: "Validator Distribution - Proposed Work (Gini: 0.20)",
			Bar: &BarSpec{
				XLabel: "Region", YLabel: "Validators (%)", Categories: dataset.Regions,
				Series: []Series{{Name: dataset.ProposedWork, Values: proposed, Color: "darkgreen", Highlight: true}},
			},
		},
		text(Text, 0, "Network Latency Impact", ""),
		{
			Kind: Scatter, Title: "Probability of Winning Next Block vs Latency",
			Scatter: &ScatterSpec{
				XLabel: "Network Latency (ms)", YLabel: "Win Probability (%)", X: x, YMax: 100,
				Series: []Series{
					{Name: "Traditional PoS", Values: trad, Color: "red"},
					{Name: "Proposed Work (with VDF)", Values: fair, Color: "green", Highlight: true, Dashed: true},
				},
			},
		},
		text(Warning, 0, "",
			"**In Traditional PoS:** Validators with 50ms latency win 90% of slots vs 10% for 500ms latency.\n"+
				"**With VDF:** All validators have equal probability regardless of geography."),
	}
	return "The Hidden Problem: Geographic Unfairness", blocks, nil
}

func vdfSimulation(s *page.Session, sim progress.Status) (string, []Block, error) {
	advantage, err := latency.WithoutNeutralization(s.FastLatencyMs, s.SlowLatencyMs)
	if err != nil {
		return "", nil, err
	}
	n, err := latency.WithNeutralization(s.FastLatencyMs, s.SlowLatencyMs, s.VDFDelaySeconds)
	if err != nil {
		return "", nil, err
	}

	timeline := latency.Timeline(s.FastLatencyMs, s.SlowLatencyMs)
	stack := latency.Stack(s.FastLatencyMs, s.SlowLatencyMs, s.VDFDelaySeconds)
	nodes := []string{latency.FastNode, latency.SlowNode}

	verdict := Success
	if n.Classification != latency.Neutralized {
		verdict = Warning
	}

	blocks := []Block{
		text(Text, 0, "", "**Verifiable Delay Function (VDF)** - Forces minimum computation time, making network latency irrelevant."),
		slider("fast_latency_ms", "Fast Node Latency (ms)", latency.FastLatencyBounds, s.FastLatencyMs),
		slider("slow_latency_ms", "Slow Node Latency (ms)", latency.SlowLatencyBounds, s.SlowLatencyMs),
		slider("vdf_delay_seconds", "VDF Delay (seconds)", latency.VDFDelayBounds, s.VDFDelaySeconds),
		text(Text, 1, "Without VDF (Traditional PoS)", ""),
		{
			Kind: Bar, Column: 1, Title: "Block Propagation Time",
			Bar: &BarSpec{
				XLabel: "Node", YLabel: "Time to See Block (ms)", Categories: nodes,
				Series: []Series{{Name: "Time to See Block (ms)", Values: []float64{timeline[0].TimeToSeeMs, timeline[1].TimeToSeeMs}}},
			},
		},
		{Kind: Metric, Column: 1, Metric: &MetricSpec{Label: "Fast Node Advantage", Value: percent(advantage), Delta: "Unfair"}},
		text(Text, 2, "With VDF (Proposed Work)", ""),
		{
			Kind: Bar, Column: 2, Title: "VDF + Latency (Stacked)",
			Bar: &BarSpec{
				XLabel: "Node", YLabel: "Time (ms)", Categories: nodes, Stacked: true,
				Series: []Series{
					{Name: "VDF Time (ms)", Values: []float64{stack[0].VDFMs, stack[1].VDFMs}, Color: "green"},
					{Name: "Network Latency (ms)", Values: []float64{stack[0].NetworkMs, stack[1].NetworkMs}, Color: "orange"},
				},
			},
		},
		{Kind: Metric, Column: 2, Metric: &MetricSpec{Label: "Time Difference", Value: percent(n.DifferencePercent), Delta: "Negligible"}},
		text(verdict, 2, "", n.Classification.Message()),
	}

	blocks = append(blocks, action("Run VDF Simulation", "/simulation"))

	if sim.Running || sim.Done {
		blocks = append(blocks, Block{
			Kind:     Progress,
			Progress: &ProgressSpec{Percent: sim.Percent, Label: "Computing VDF..."},
		})
	}
	if sim.Done {
		blocks = append(blocks, text(Success, 0, "", sim.Message))
	}

	return "VDF Simulation: Neutralizing Latency Advantage", blocks, nil
}

func fairnessWitnesses(s *page.Session, _ progress.Status) (string, []Block, error) {
	winners := &TableSpec{Header: []string{"Block", "Selected Validator", "Witness Valid"}}
	for _, w := range dataset.WinnerProofs() {
		winners.Rows = append(winners.Rows, []string{strconv.Itoa(w.Block), w.Validator, check(w.WitnessValid)})
	}

	losers := &TableSpec{Header: []string{"Validator", "Stake (%)", "Expected Wins", "Actual Wins", "Fairness Verified"}}
	for _, l := range dataset.LoserProofs() {
		losers.Rows = append(losers.Rows, []string{
			l.Validator, number(l.StakePercent), number(l.ExpectedWins), number(l.ActualWins), check(l.FairnessVerified),
		})
	}

	verifiers := &TableSpec{Header: []string{"Verifier", "Has Secret Key", "Can Verify"}}
	for _, v := range dataset.PublicVerifiers() {
		verifiers.Rows = append(verifiers.Rows, []string{v.Verifier, yesNo(v.HasSecretKey), yesNo(v.CanVerify)})
	}

	blocks := []Block{
		text(Text, 0, "", "A **Fairness Witness** is a publicly verifiable, cryptographically binding proof that:"),
		text(Success, 1, "Winner Proof", "Validator was legitimately selected as leader"),
		{Kind: Table, Column: 1, Table: winners},
		text(Success, 2, "Loser Proof", "Validators lost fairly (selection was unbiased)"),
		{Kind: Table, Column: 2, Table: losers},
		text(Success, 3, "Public Verification", "Anyone can verify without secret keys"),
		{Kind: Table, Column: 3, Table: verifiers},
		divider(),
		text(Text, 0, "Try It: Verify a Fairness Witness", ""),
		{
			Kind: Slider, Column: 1,
			Slider: &SliderSpec{
				Control: "block_number", Label: "Block Number",
				Min: witness.MinBlock, Max: witness.MaxBlock, Value: float64(s.BlockNumber),
			},
		},
		{
			Kind: Select, Column: 2,
			Select: &SelectSpec{
				Control: "validator", Label: "Select Validator",
				Options: witness.Validators, Selected: []string{s.Validator},
			},
		},
		action("Verify Fairness", "/verify"),
	}

	if res := s.LastVerification; res != nil {
		blocks = append(blocks, text(Success, 0,
			fmt.Sprintf("Verification Result for Block #%d", s.BlockNumber),
			verificationReport(res, s.Validator)))
	}
	return "The Innovation: Fairness Witnesses", blocks, nil
}

func comparisonMatrix(s *page.Session, _ progress.Status) (string, []Block, error) {
	table := &TableSpec{Header: []string{"Algorithm", string(dataset.GeographicGini), string(dataset.TPSThousands), string(dataset.GrindingAttack)}}
	for _, r := range dataset.Rows() {
		table.Rows = append(table.Rows, []string{r.Algorithm, number(r.GeographicGini), number(r.TPSThousands), number(r.GrindingAttackPercent)})
	}

	blocks := []Block{
		{Kind: Table, Table: table},
		text(Text, 0, "Radar Chart Comparison", ""),
		{
			Kind: Select,
			Select: &SelectSpec{
				Control: "algorithms", Label: "Select algorithms to compare",
				Options: dataset.Algorithms(), Selected: s.Algorithms, Multiple: true,
			},
		},
	}

	if len(s.Algorithms) > 0 {
		series := make([]Series, 0, len(s.Algorithms))
		for _, name := range s.Algorithms {
			row, err := dataset.Lookup(name)
			if err != nil {
				return "", nil, err
			}
			series = append(series, Series{Name: row.Algorithm, Values: row.Scores.Values(), Highlight: row.Highlighted()})
		}
		blocks = append(blocks, Block{Kind: Polar, Polar: &PolarSpec{Axes: dataset.ScoreNames, Range: 10, Series: series}})
	}

	blocks = append(blocks, text(Info, 0, "Key Insight",
		"Proposed Work is the ONLY algorithm providing VERIFIABLE FAIRNESS while maintaining excellence across all other metrics."))

	return "Comparison Matrix: All Consensus Algorithms", blocks, nil
}

func results(s *page.Session, _ progress.Status) (string, []Block, error) {
	var blocks []Block
	for i, h := range dataset.Headlines() {
		bands := make([]GaugeBand, len(h.Bands))
		for j, b := range h.Bands {
			bands[j] = GaugeBand{From: b.From, To: b.To, Color: b.Color}
		}
		blocks = append(blocks,
			Block{Kind: Metric, Column: i + 1, Metric: &MetricSpec{Label: h.Label, Value: h.Display, Delta: h.Delta, Inverse: h.Inverse}},
			text(Caption, i+1, "", h.Caption),
			Block{Kind: Gauge, Column: i + 1, Title: h.Gauge, Gauge: &GaugeSpec{Value: h.Value, Max: h.Max, Threshold: h.Threshold, Bands: bands}},
		)
	}

	rows, err := dataset.SortBy(s.Metric)
	if err != nil {
		return "", nil, err
	}

	names := make([]string, len(rows))
	values := make([]float64, len(rows))
	for i, r := range rows {
		names[i] = r.Algorithm
		values[i] = s.Metric.Value(r)
	}

	columns := make([]string, len(dataset.Columns))
	for i, c := range dataset.Columns {
		columns[i] = string(c)
	}

	blocks = append(blocks,
		divider(),
		text(Text, 0, "Performance Comparison", ""),
		Block{
			Kind: Select,
			Select: &SelectSpec{
				Control: "metric", Label: "Select metric to compare",
				Options: columns, Selected: []string{string(s.Metric)},
			},
		},
		Block{
			Kind: Bar, Title: fmt.Sprintf("%s by Algorithm", s.Metric),
			Bar: &BarSpec{
				XLabel: "Algorithm", YLabel: string(s.Metric), Categories: names, TickAngle: -45,
				Emphasis: dataset.ProposedWork,
				Series: []Series{{Name: string(s.Metric), Values: values}},
			},
		},
	)
	return "Quantitative Results", blocks, nil
}

func verificationReport(res *witness.Result, validator string) string {
	report := fmt.Sprintf("Winner: %s, other validators: %d\n", validator, res.OtherValidators)
	for _, c := range res.Checks {
		report += fmt.Sprintf("- %s: **%s**\n", c.Name, c.Status)
	}
	report += fmt.Sprintf("\n**Fairness Witness:** `%s` (attached to block)", res.WitnessHash)
	return report
}

func slider(control, label string, b latency.Bounds, value float64) Block {
	return Block{
		Kind:   Slider,
		Slider: &SliderSpec{Control: control, Label: label, Min: b.Min, Max: b.Max, Value: value},
	}
}

func action(label, path string) Block {
	return Block{Kind: Action, Action: &ActionSpec{Label: label, Method: "POST", Path: path}}
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func check(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

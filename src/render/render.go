// Package render turns a viewer session into the view model of the selected
// page: text blocks, metrics, tables and chart specs. Drawing is left to the
// front-end; every number comes from the dataset package, the latency
// calculator or the session itself.
package render

import (
	"fmt"

	"github.com/mosaicnetworks/fairshow/src/page"
	"github.com/mosaicnetworks/fairshow/src/progress"
)

// Presentation titles.
const (
	Title    = "Verifiable Fairness in Proof-of-Stake Consensus"
	Subtitle = "A Hybrid Architecture"
)

var sidebarFooter = []string{
	"PhD Research: Verifiable Fairness in PoS Consensus",
	"From Trust to Proof",
}

type builder func(s *page.Session, sim progress.Status) (string, []Block, error)

var builders = map[page.Page]builder{
	page.Overview:          overview,
	page.Trilemma:          trilemma,
	page.FairnessProblem:   fairnessProblem,
	page.Architecture:      architecture,
	page.VDFSimulation:     vdfSimulation,
	page.FairnessWitnesses: fairnessWitnesses,
	page.ComparisonMatrix:  comparisonMatrix,
	page.Results:           results,
	page.ResearchImpact:    researchImpact,
}

// Render builds the view of the session's current page.
func Render(s *page.Session) (View, error) {
	return renderPage(s, s.Simulation())
}

// renderPage renders with an explicit VDF run state; only the VDF Simulation
// page shows it.
func renderPage(s *page.Session, sim progress.Status) (View, error) {
	build, ok := builders[s.Page]
	if !ok {
		return View{}, fmt.Errorf("no renderer for page %d", s.Page)
	}

	header, blocks, err := build(s, sim)
	if err != nil {
		return View{}, err
	}

	return View{
		Title:    Title,
		Subtitle: Subtitle,
		Page:     s.Page.String(),
		Header:   header,
		Blocks:   blocks,
		Sidebar: Sidebar{
			Title:    "Navigation",
			Pages:    page.Labels(),
			Selected: s.Page.String(),
			Footer:   sidebarFooter,
		},
	}, nil
}

// Package page defines the nine presentation pages and the per-viewer session
// that remembers which page is selected and where the controls stand.
package page

import "github.com/mosaicnetworks/fairshow/src/common"

// Page is one entry of the navigation sidebar.
type Page int

// Pages in sidebar order.
const (
	Overview Page = iota
	Trilemma
	FairnessProblem
	Architecture
	VDFSimulation
	FairnessWitnesses
	ComparisonMatrix
	Results
	ResearchImpact
)

var labels = []string{
	"Overview",
	"Blockchain Trilemma",
	"Fairness Problem",
	"Architecture",
	"VDF Simulation",
	"Fairness Witnesses",
	"Comparison Matrix",
	"Results",
	"Research Impact",
}

// All returns every page in sidebar order.
func All() []Page {
	pages := make([]Page, len(labels))
	for i := range pages {
		pages[i] = Page(i)
	}
	return pages
}

// Labels returns the sidebar labels in order.
func Labels() []string {
	l := make([]string, len(labels))
	copy(l, labels)
	return l
}

// Parse maps a sidebar label to its Page.
func Parse(label string) (Page, error) {
	for i, l := range labels {
		if l == label {
			return Page(i), nil
		}
	}
	return Overview, common.NewValidationErr("page", common.Unknown, label)
}

// String returns the sidebar label.
func (p Page) String() string {
	if p < 0 || int(p) >= len(labels) {
		return "Unknown"
	}
	return labels[p]
}

// MarshalText encodes the page by label.
func (p Page) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText ...
func (p *Page) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

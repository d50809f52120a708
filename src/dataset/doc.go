// Package dataset holds the literal numbers shown by the presentation.
//
// The comparison table has eleven rows: ten baseline consensus algorithms and
// "Proposed Work". The values are authored illustrations, not measurements,
// and they never change at runtime. Accessors return copies so the table stays
// fixed for the lifetime of the process.
//
// The six radar scores (Security, Decentralization, Scalability, Verifiable
// Fairness, Finality, Energy Efficiency) are authored columns as well; no
// formula derives them from the other metrics.
package dataset

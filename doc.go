// Package grouping assigns recurring-meeting participants into small
// discussion groups, biased against repeat pairings and steerable across
// categorical attributes.
//
// The engine consults a persisted history of past groupings to compute a
// pairwise grouping cost (the affinity score), assembles groups of at least
// a configured minimum size favoring low-cost pairs, and returns the new
// grouping together with the updated append-only history.
//
// # Quick Start
//
//	cfg := grouping.Config{MinSize: 3, Seed: 42}
//
//	m, err := grouping.NewMatcher(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	roster, err := source.NewFile("names.csv").Load(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	history, err := store.LoadHistory("history.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := m.CreateMatching(roster, history)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Key Properties
//
//   - History aversion: the pair cost is monotonically non-decreasing in the
//     pair's past co-occurrence count
//   - Assortative mixing: per-attribute multipliers encourage cross-category
//     pairs when both sides are willing and discourage them otherwise; a
//     negative multiplier flips both effects
//   - Firm size rule: group sizes are as even as possible and never fall
//     below minSize, with a single undersized group only when fewer than
//     minSize participants are active
//   - Reproducibility: identical inputs and an explicit seed produce
//     byte-identical groupings; seed 0 derives a seed from the clock
//   - Append-only history: CreateMatching never mutates its inputs and
//     returns a new history value
//
// # Builders
//
// The default builder greedily assigns participants in shuffled order to the
// open group with the lowest pairwise cost. The sampling builder (the
// historical algorithm) draws many uniformly random partitions and keeps the
// cheapest; select it with Config.Candidates or strategy.NewSampling.
package grouping

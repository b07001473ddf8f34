// Package scorer implements the affinity scorer: the pairwise grouping cost
// that combines repeat-pairing history with attribute mixing preferences.
//
// The cost is monotonically non-decreasing in the pair's co-occurrence
// count, which is what makes the builders' bias against repetition
// well-defined.
package scorer

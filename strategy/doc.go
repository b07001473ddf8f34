// Package strategy provides group builder implementations.
//
// Builders implement different assembly algorithms:
//   - Greedy: seeded-random greedy assembly, the default
//   - Sampling: draw many random partitions and keep the cheapest
//   - Custom: user-defined algorithms via types.GroupStrategy
//
// All builders honor the same size rule (GroupSizes) and are deterministic
// given an identically seeded random source.
package strategy

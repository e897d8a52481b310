// Package split provides train/test label generators for the stability
// driver.
//
// A Splitter yields Pairs of annotation values. The values name groups of
// dataset positions (for example subject IDs), not positions themselves;
// resolving values to matrix rows or columns is the driver's job.
//
// # Generators
//
//   - Fixed: a literal list of pairs
//   - KFold: k contiguous chunks, each tested against the rest
//   - LeaveOneOut: one value out per pair
//   - Random: repeated shuffled splits at a fixed train fraction
//
// Pairs() can be consumed multiple times; generators replay the same
// sequence on every call, including Random, which derives its shuffles
// from a seed captured at construction.
package split

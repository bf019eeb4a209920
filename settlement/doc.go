// Package settlement decides the outcome of a parsed payment instruction
// against a set of candidate accounts.
//
// Core flow:
//   - Evaluator.Evaluate runs the schedule, resolution, currency, and funds
//     checks in order and settles when all of them pass.
//   - Every branch produces an Outcome; evaluation never fails.
//   - Accounts are never mutated: settlement returns derived copies that
//     record the balance before the transfer.
package settlement

// Package instruction parses the payment-instruction micro-language into a
// structured, validated representation.
//
// Core flow:
//   - Parse tokenizes the raw string and walks the grammar in a fixed order.
//   - The first violated rule wins and is reported as a typed ParseError.
//   - A successful parse always yields a positive integer amount, a supported
//     currency, and two distinct account identifiers.
//
// The package has no side effects and no dependencies on the evaluation layer.
package instruction

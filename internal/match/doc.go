// Package match pairs target value descriptors with source value descriptors
// by property name and validates each pair for type identity.
//
// Matching policy:
//   - Both descriptor lists are compared in ascending property-name order, so
//     the first reported finding is deterministic for a given specification.
//   - Duplicate names on either side are rejected outright.
//   - Every target must have a same-named source and vice versa; a matched
//     pair must carry the identical value type.
//
// All findings are collected and combined into a single error rather than
// stopping at the first one.
package match

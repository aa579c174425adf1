// Package domain contains the core domain entities and value objects for
// prtdecode.
//
// This package represents the innermost layer of the Clean Architecture. It
// has no dependencies on infrastructure concerns (file system, terminals,
// logging) and contains only pure decoding logic.
//
// # Entities
//
//   - [Frame]: one decoded PRT-7 instruction unit (data, remap, or terminate)
//   - [Rotor]: the rotating alphabetic substitution wheel and its shift
//   - [Transcript]: the ordered, append-only accumulation of decoded symbols
//
// # Design Principles
//
// Domain entities are:
//   - Free of infrastructure dependencies
//   - Focused on protocol rules and invariants
//   - Testable without mocks or external systems
//
// The rotor's cyclic alphabet never changes; only its tracked shift does.
// The transcript only grows; decoded symbols are never reordered or removed.
package domain

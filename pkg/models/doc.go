// Package models builds Ameax import documents.
//
// Field containers (Address, Communications, Identifiers and friends) each
// own a dotpath.Store. Documents (Organization, PrivatePerson, Sale,
// Receipt) embed those containers by reference: a container's map is the
// same map found under its key in the document, so every setter on a
// container is immediately visible in the document's ToMap output.
//
// Every *FromMap constructor accepts the canonical nested shape as well as
// the legacy flat keys older callers send, and converges both to the
// canonical shape. Keys no rule claims are passed through unchanged.
//
// Setters that can only succeed return their receiver for chaining.
// Setters that enforce an enumeration, a range or a prerequisite return an
// *InvalidArgumentError instead.
package models

// Package memory provides the in-memory overlay store for perfconf.
//
// The store maps section.key to the text value collected from a
// perfconfig file. It keeps two orders at once:
//
//   - Sections: in the order their first key was collected
//   - Elements: in the order each key was first collected within a section
//
// Lookups go through a name index, iteration goes through the ordered
// slices, so output built from the store is deterministic.
//
// Thread Safety:
//
// The store is built and read by a single sequential pass and does no
// locking. Do not share a Store between goroutines.
package memory

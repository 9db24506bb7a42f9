// Package match provides the domain types for HLTV match results.
//
// The match package defines the Match record, the insertion-ordered Results
// collection with its order-preserving JSON encoding, the map-abbreviation
// lookup table, and the calendar-day conversion used to group results by
// date. Records are built fresh on each fetch and never persisted.
package match

// Package store holds the in-memory card store that backs a study session.
// The Deck type owns every card for the lifetime of the session and enforces
// the uniqueness rules for terms and definitions; persistence to disk lives
// in internal/platform/jsonfile.
package store

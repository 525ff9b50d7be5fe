// Package jsonfile persists decks as a flat JSON object that maps each term
// to a two-element array holding the definition and the error count:
//
//	{"dog": ["a domestic animal", 0], "cat": ["a small animal", 2]}
//
// Object members are written in deck order and read back in file order.
package jsonfile

// Package domain contains the core flashcard entities and the validation
// rules that apply to them, independent of how cards are stored or how the
// user interacts with them.
package domain

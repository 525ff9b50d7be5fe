// Package service contains the study session use cases: adding and removing
// cards, quizzing, error statistics, and moving decks between memory and
// disk. Each operation talks to the user through a console.Console and
// mutates the deck through the CardRepository interface.
//
// Error handling follows three tiers:
//
//  1. Conflicts that the user can fix by retyping (duplicate term or
//     definition) are handled inside the operation by prompting again.
//  2. Expected misses (removing an unknown card, importing a missing file)
//     are reported to the user and the operation returns normally.
//  3. Everything else (unparsable question counts, unwritable files, closed
//     input) is returned to the caller wrapped in a ServiceError and ends the
//     session.
package service

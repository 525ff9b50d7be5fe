// Package repl runs the command loop of a study session: it prompts for an
// action, dispatches recognised verbs to the study service and stops on exit.
package repl

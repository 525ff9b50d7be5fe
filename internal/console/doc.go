// Package console implements the line-oriented prompt/response protocol used
// by the study session, and the Transcript that records everything shown to
// and typed by the user.
package console

// Package cli implements the interactive versekeeper session: a simple
// REPL over the poem, collection, progress and backup services.
package cli

// Package app contains the registrant generator's application logic. It ties
// manifest loading, validation and rendering together and decides whether the
// result is written out or compared against the file already on disk,
// decoupled from any specific entrypoint like a CLI or go:generate.
package app

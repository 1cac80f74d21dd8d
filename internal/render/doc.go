// Package render turns a manifest into the Go source of a plugin registrant.
//
// The generated registrant is stateless. It derives its own registry key from
// its type's canonical name, claims that key before any plugin is touched, and
// then hands each plugin a registrar requested under the plugin's own id.
package render

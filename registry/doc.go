// Package registry defines the contract between a host application and the
// plugins compiled into it.
//
// The host owns a Registry: a table of installed plugins keyed by opaque
// strings. Plugins never see the table itself. They ask the registry for a
// Registrar under their own key and bind themselves to the host through it.
//
// This package deliberately contains no registry implementation. Hosts provide
// one, and tests use the recording double in internal/testutil. Everything a
// registrant needs to decide whether it is already installed lives in the
// host's Registry, never in the registrant.
package registry

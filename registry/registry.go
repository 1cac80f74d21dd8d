package registry

// Registry is the capability set a host exposes to registrants.
//
// Keys are opaque and compared by exact string equality. Implementations are
// not required to be safe for concurrent use; hosts are expected to serialize
// plugin initialization.
type Registry interface {
	// HasPlugin reports whether an entry for key has been claimed.
	HasPlugin(key string) (bool, error)

	// RegistrarFor returns the registrar for key. Requesting a registrar is
	// what claims the key: afterwards HasPlugin(key) reports true.
	RegistrarFor(key string) (Registrar, error)
}

// Registrar is a per-key handle issued by a Registry. A plugin uses it to bind
// itself to host extension points.
type Registrar interface {
	// Key returns the registry key the registrar was issued for.
	Key() string

	// Publish exposes value to the host under the registrar's key.
	Publish(value any) error
}

// Registrant installs a fixed set of plugins into a Registry.
type Registrant interface {
	RegisterWith(r Registry) error
}

package registry

import "reflect"

// CanonicalName returns the fully qualified name of v's type, in the form
// "<import path>.<TypeName>". Pointers are dereferenced first.
//
// It returns an empty string for nil and for unnamed types, which have no
// stable identity to register under.
func CanonicalName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return ""
	}
	if t.PkgPath() == "" {
		return t.Name()
	}
	return t.PkgPath() + "." + t.Name()
}

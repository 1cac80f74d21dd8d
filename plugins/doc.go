// Package plugins holds the registrant that installs the plugins compiled into
// this binary. The registrant is generated from plugins.hcl; regenerate it with
// go generate after editing the manifest.
package plugins

//go:generate go run ../cmd/registrantgen -manifest plugins.hcl -out generated_plugin_registrant.go

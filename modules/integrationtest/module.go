package integrationtest

import (
	"github.com/specialistvlad/pluginregistrant/registry"
)

// PluginID is the registry key the plugin binds itself under.
const PluginID = "dev.flutter.plugins.integration_test.IntegrationTestPlugin"

// ChannelName is the host method channel the plugin listens on.
const ChannelName = "plugins.flutter.io/integration_test"

// Plugin is the value the plugin publishes to the host.
type Plugin struct {
	Channel string
}

// RegisterWith binds the plugin to the host through r. Errors from the
// registrar are returned unchanged.
func RegisterWith(r registry.Registrar) error {
	return r.Publish(&Plugin{Channel: ChannelName})
}

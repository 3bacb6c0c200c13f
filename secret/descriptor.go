package secret

import "strings"

// Descriptor is the registered metadata for a provider kind,
// independent of any live instance.
type Descriptor struct {
	// Kind uniquely identifies the provider kind, e.g. "EnvProvider".
	Kind string
	// Name is the display name used by enable/disable and filters.
	// Derived from Kind when empty.
	Name string
	// Enabled controls whether the Manager instantiates this kind.
	Enabled bool
	// Priority orders resolution; lower values are consulted first.
	Priority int
	// Factory constructs the live instance from Options.
	Factory Factory
	// Options is passed to Factory at instantiation time.
	Options map[string]any
}

// deriveName strips the conventional "Provider" suffix from a kind and
// lowercases the remainder, e.g. "KeyringProvider" -> "keyring".
func deriveName(kind string) string {
	return strings.ToLower(strings.TrimSuffix(kind, "Provider"))
}

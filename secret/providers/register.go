package providers

import "github.com/kbukum/secretkit/secret"

// Override adjusts a built-in descriptor's defaults from configuration.
// Nil fields keep the default.
type Override struct {
	Enabled  *bool
	Priority *int
	Options  map[string]any
}

// defaults returns the built-in descriptor set. Priorities follow the
// conventional resolution order: environment first, then secret-manager
// CLIs, then file stores, then the OS keyring.
func defaults() []secret.Descriptor {
	return []secret.Descriptor{
		{Kind: "EnvProvider", Name: "environment", Enabled: true, Priority: 10, Factory: NewEnv},
		{Kind: "VaultProvider", Name: "vault", Enabled: true, Priority: 20, Factory: NewVault},
		{Kind: "DotenvProvider", Name: "dotenv", Enabled: true, Priority: 25, Factory: NewDotenv},
		{Kind: "JSONFileProvider", Name: "json_file", Enabled: true, Priority: 30, Factory: NewJSONFile},
		{Kind: "OnePasswordProvider", Name: "1password", Enabled: true, Priority: 30, Factory: NewOnePassword},
		{Kind: "YAMLFileProvider", Name: "yaml_file", Enabled: true, Priority: 40, Factory: NewYAMLFile},
		{Kind: "LastPassProvider", Name: "lastpass", Enabled: true, Priority: 40, Factory: NewLastPass},
		{Kind: "KeyringProvider", Name: "keyring", Enabled: true, Priority: 50, Factory: NewKeyring},
	}
}

// RegisterAll registers every built-in provider kind with the registry,
// applying any per-name overrides first. This is the explicit
// registration step: nothing registers itself at import time.
func RegisterAll(reg *secret.Registry, overrides map[string]Override) error {
	for _, d := range defaults() {
		if o, ok := overrides[d.Name]; ok {
			if o.Enabled != nil {
				d.Enabled = *o.Enabled
			}
			if o.Priority != nil {
				d.Priority = *o.Priority
			}
			if len(o.Options) > 0 {
				d.Options = o.Options
			}
		}
		if err := reg.Register(d); err != nil {
			return err
		}
	}
	return nil
}

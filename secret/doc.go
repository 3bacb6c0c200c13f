// Package secret implements the provider registry and resolution engine
// at the core of secretkit.
//
// A Registry holds declarative Descriptors: one per provider kind, each
// carrying a display name, an enabled flag, a priority and a factory.
// A Manager lazily instantiates the enabled kinds in priority order and
// resolves keys by walking that chain until a provider yields a
// non-empty value, caching the result. Writes walk the same chain but
// only touch providers that report write support, validating first;
// persistence succeeds when at least one backend accepted the key.
//
// Providers satisfy the Provider interface plus any of the optional
// Writer, Validator and Describer capabilities. Provider failures are
// local: the Manager logs them and fails over to the next backend.
//
//	registry := secret.NewRegistry()
//	providers.RegisterAll(registry, nil)
//	mgr := secret.NewManager(registry)
//	value, ok := mgr.Get(ctx, "OPENAI_API_KEY")
package secret

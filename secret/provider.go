package secret

import "context"

// Provider is the minimum surface a secret backend exposes to the resolver.
//
// GetKey returns the value for a key, or "" when the provider does not
// hold it. An empty value and a miss are equivalent. Errors never
// propagate past the Manager boundary: the Manager logs them and moves
// on to the next provider.
type Provider interface {
	// Name returns the provider's stable, unique name.
	Name() string
	// GetKey looks up a key in this backend.
	GetKey(ctx context.Context, name string) (string, error)
}

// Writer is the optional write capability. Providers that do not
// implement it are skipped during persistence.
type Writer interface {
	// SupportsWrite reports whether the provider can persist keys.
	SupportsWrite() bool
	// WriteKey persists a key to this backend. Only called when
	// SupportsWrite returns true.
	WriteKey(ctx context.Context, name, value string) error
}

// Validator is the optional pre-write validation capability. A false
// result skips the provider for that write without treating it as an
// error.
type Validator interface {
	ValidateKey(name, value string) bool
}

// Describer is the optional self-description capability, used purely
// for status reporting, never for resolution.
type Describer interface {
	Describe() map[string]any
}

// Factory constructs a provider instance from its options map.
type Factory func(options map[string]any) (Provider, error)

// supportsWrite resolves the write capability of a provider instance.
func supportsWrite(p Provider) bool {
	w, ok := p.(Writer)
	return ok && w.SupportsWrite()
}

// validateKey resolves the validation capability, defaulting to valid.
func validateKey(p Provider, name, value string) bool {
	v, ok := p.(Validator)
	if !ok {
		return true
	}
	return v.ValidateKey(name, value)
}

// describe resolves the description capability, synthesizing the
// default {name, supports_write} when absent.
func describe(p Provider) map[string]any {
	if d, ok := p.(Describer); ok {
		return d.Describe()
	}
	return map[string]any{
		"name":           p.Name(),
		"supports_write": supportsWrite(p),
	}
}

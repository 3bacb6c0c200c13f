package secret

import (
	"context"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/secretkit/logger"
)

// ProviderStatus describes one registered descriptor for introspection.
type ProviderStatus struct {
	Kind          string         `json:"kind"`
	Enabled       bool           `json:"enabled"`
	Priority      int            `json:"priority"`
	SupportsWrite bool           `json:"supports_write"`
	Capabilities  map[string]any `json:"capabilities"`
}

// Manager owns the live provider instances and the key cache, and
// resolves keys against providers in priority order.
//
// Construct one Manager per process and pass it by handle. Provider
// calls are blocking and performed inline; a single mutex serializes
// initialization, resolution and cache mutation.
type Manager struct {
	mu          sync.Mutex
	registry    *Registry
	instances   []Provider
	cache       map[string]string
	initialized bool
	log         *logger.Logger
	tracer      trace.Tracer
}

// NewManager creates a Manager over the given descriptor registry.
func NewManager(registry *Registry) *Manager {
	return &Manager{
		registry: registry,
		cache:    make(map[string]string),
		log:      logger.Get("resolver"),
		tracer:   otel.Tracer("github.com/kbukum/secretkit/secret"),
	}
}

// initialize instantiates every enabled descriptor in priority order.
// Factory failures are local recoverable failures: warn and skip.
// Callers must hold m.mu.
func (m *Manager) initialize() {
	if m.initialized {
		return
	}
	m.instances = nil

	seen := make(map[string]bool)
	for _, d := range m.registry.ByPriority() {
		if !d.Enabled {
			continue
		}
		if seen[d.Name] {
			m.log.Warn("duplicate provider name, first registrant wins",
				logger.Fields(logger.FieldProvider, d.Name, "kind", d.Kind))
			continue
		}
		instance, err := d.Factory(d.Options)
		if err != nil {
			m.log.Warn("failed to initialize provider, skipping",
				logger.Fields(logger.FieldProvider, d.Name, logger.FieldError, err.Error()))
			continue
		}
		m.instances = append(m.instances, instance)
		seen[d.Name] = true
		m.log.Debug("provider initialized",
			logger.Fields(logger.FieldProvider, d.Name, logger.FieldPriority, d.Priority))
	}
	m.initialized = true
}

// reset discards live instances so the next operation rebuilds them
// from current descriptor state. The cache is retained: values already
// resolved through a now-disabled provider stay visible until
// overwritten or process exit.
// Callers must hold m.mu.
func (m *Manager) reset() {
	m.initialized = false
	m.instances = nil
}

// RegisterProvider registers an already-constructed provider instance,
// appending it after the descriptor-built chain. A duplicate name is a
// no-op with a warning; the first registrant wins.
func (m *Manager) RegisterProvider(p Provider) {
	if p == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initialize()

	for _, existing := range m.instances {
		if existing.Name() == p.Name() {
			m.log.Warn("provider already registered, skipping",
				logger.Fields(logger.FieldProvider, p.Name()))
			return
		}
	}
	m.instances = append(m.instances, p)
	m.log.Debug("provider instance registered", logger.Fields(logger.FieldProvider, p.Name()))
}

// Get resolves a key by walking providers in priority order, stopping
// at the first non-empty value. Cache hits short-circuit without any
// provider call. An optional list of provider names narrows the chain;
// unmatched names are ignored. Absence is a valid outcome, not an
// error.
func (m *Manager) Get(ctx context.Context, key string, providers ...string) (string, bool) {
	ctx, span := m.tracer.Start(ctx, "secret.get",
		trace.WithAttributes(attribute.String("secret.key", key)))
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.cache[key]; ok && v != "" {
		span.SetAttributes(attribute.Bool("secret.cache_hit", true))
		return v, true
	}

	m.initialize()

	for _, p := range m.narrow(providers) {
		value, err := p.GetKey(ctx, key)
		if err != nil {
			m.log.Warn("provider lookup failed",
				logger.Fields(logger.FieldProvider, p.Name(), logger.FieldKey, key, logger.FieldError, err.Error()))
			continue
		}
		if value == "" {
			continue
		}
		m.cache[key] = value
		// Mirror into the process environment so downstream code
		// reading os.Getenv sees the resolved value.
		if err := os.Setenv(key, value); err != nil {
			m.log.Warn("failed to mirror key into environment",
				logger.Fields(logger.FieldKey, key, logger.FieldError, err.Error()))
		}
		span.SetAttributes(attribute.String("secret.provider", p.Name()))
		m.log.Debug("key resolved",
			logger.Fields(logger.FieldKey, key, logger.FieldProvider, p.Name()))
		return value, true
	}

	return "", false
}

// Set stores a key in the cache and, when persist is true, writes it
// through every eligible provider in priority order. The in-memory set
// always succeeds; with persist the result is true iff at least one
// provider wrote successfully. Providers are independent stores, not
// replicas, so a partial write still counts as success.
func (m *Manager) Set(ctx context.Context, key, value string, persist bool, providers ...string) bool {
	ctx, span := m.tracer.Start(ctx, "secret.set",
		trace.WithAttributes(
			attribute.String("secret.key", key),
			attribute.Bool("secret.persist", persist),
		))
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.cache[key] = value

	if !persist {
		return true
	}

	m.initialize()

	success := false
	for _, p := range m.narrow(providers) {
		if !supportsWrite(p) {
			continue
		}
		if !validateKey(p, key, value) {
			m.log.Warn("key failed validation for provider",
				logger.Fields(logger.FieldKey, key, logger.FieldProvider, p.Name()))
			continue
		}
		w := p.(Writer)
		if err := w.WriteKey(ctx, key, value); err != nil {
			m.log.Warn("failed to write key to provider",
				logger.Fields(logger.FieldKey, key, logger.FieldProvider, p.Name(), logger.FieldError, err.Error()))
			continue
		}
		m.log.Debug("key persisted",
			logger.Fields(logger.FieldKey, key, logger.FieldProvider, p.Name()))
		success = true
	}

	span.SetAttributes(attribute.Bool("secret.persisted", success))
	return success
}

// EnsureKey resolves a key and logs a diagnostic naming the providers
// tried when it is absent.
func (m *Manager) EnsureKey(ctx context.Context, key string, providers ...string) bool {
	if _, ok := m.Get(ctx, key, providers...); ok {
		return true
	}
	tried := providers
	if len(tried) == 0 {
		tried = m.Providers()
	}
	m.log.Error("key is not set",
		logger.Fields(logger.FieldKey, key, "providers_tried", tried))
	return false
}

// EnableProvider enables the named provider kind and rebuilds the
// instance chain on the next operation. Returns false when no
// descriptor matches.
func (m *Manager) EnableProvider(name string) bool {
	return m.setEnabled(name, true)
}

// DisableProvider disables the named provider kind. Cache entries
// already resolved through it are retained. Returns false when no
// descriptor matches.
func (m *Manager) DisableProvider(name string) bool {
	return m.setEnabled(name, false)
}

func (m *Manager) setEnabled(name string, enabled bool) bool {
	if !m.registry.SetEnabled(name, enabled) {
		return false
	}
	m.mu.Lock()
	m.reset()
	m.mu.Unlock()
	m.log.Debug("provider enabled flag changed",
		logger.Fields(logger.FieldProvider, name, "enabled", enabled))
	return true
}

// Providers returns the names of active instances in priority order.
func (m *Manager) Providers() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initialize()

	names := make([]string, 0, len(m.instances))
	for _, p := range m.instances {
		names = append(names, p.Name())
	}
	return names
}

// WritableProviders returns the names of active instances that report
// write support.
func (m *Manager) WritableProviders() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initialize()

	var names []string
	for _, p := range m.instances {
		if supportsWrite(p) {
			names = append(names, p.Name())
		}
	}
	return names
}

// Status reports every registered descriptor with capabilities resolved
// from the live instance when one exists. Status never requires a
// successful instantiation: kinds whose factory failed report
// conservative defaults.
func (m *Manager) Status() map[string]ProviderStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initialize()

	live := make(map[string]Provider, len(m.instances))
	for _, p := range m.instances {
		live[p.Name()] = p
	}

	out := make(map[string]ProviderStatus)
	for _, d := range m.registry.ByPriority() {
		st := ProviderStatus{
			Kind:         d.Kind,
			Enabled:      d.Enabled,
			Priority:     d.Priority,
			Capabilities: map[string]any{},
		}
		if p, ok := live[d.Name]; ok {
			st.SupportsWrite = supportsWrite(p)
			st.Capabilities = describe(p)
		}
		out[d.Name] = st
	}
	return out
}

// narrow filters the instance chain to the given provider names,
// preserving priority order. Unmatched names are silently ignored. An
// empty filter keeps the full chain.
func (m *Manager) narrow(names []string) []Provider {
	if len(names) == 0 {
		return m.instances
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var out []Provider
	for _, p := range m.instances {
		if wanted[p.Name()] {
			out = append(out, p)
		}
	}
	return out
}

// Package providers contains the built-in secret backends: process
// environment, vault/1Password/LastPass CLIs, JSON/YAML/.env file
// stores, and the OS keyring.
//
// Each backend is a thin adapter over the secret.Provider capability
// contract. RegisterAll wires the full set into a registry with the
// default priorities; callers pass Overrides to adjust enabled flags,
// priorities or backend options from configuration.
package providers

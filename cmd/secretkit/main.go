// Command secretkit resolves named secrets from an ordered chain of
// providers: process environment, secret-manager CLIs, JSON/YAML/.env
// files and the OS keyring.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

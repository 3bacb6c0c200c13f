package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/secretkit/errors"
	"github.com/kbukum/secretkit/logger"
)

func newSetCmd(a *app) *cobra.Command {
	var (
		providerFilter []string
		noPersist      bool
	)

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "set a key, optionally persisting it to writable providers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			persist := !noPersist

			// Caller-level policy: an explicit filter with no writable
			// member is a hard failure; no writable providers at all
			// degrades to memory-only storage.
			if persist {
				writable := a.manager.WritableProviders()
				if len(providerFilter) > 0 {
					writable = intersect(writable, providerFilter)
					if len(writable) == 0 {
						return errors.NotWritable(providerFilter)
					}
				} else if len(writable) == 0 {
					logger.Warn("no writable providers available, storing in memory only")
					persist = false
				}
			}

			ok := a.manager.Set(cmd.Context(), key, value, persist, providerFilter...)
			if persist && !ok {
				return errors.WriteFailed(key)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Key '%s' set successfully\n", key)
			if persist {
				targets := "all writable providers"
				if len(providerFilter) > 0 {
					targets = strings.Join(providerFilter, ", ")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Key persisted to providers: %s\n", targets)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Key stored in memory only (not persisted)")
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&providerFilter, "provider", "p", nil,
		"specific provider(s) to persist to (repeatable)")
	cmd.Flags().BoolVar(&noPersist, "no-persist", false,
		"store the key in memory only")
	return cmd
}

func intersect(a, b []string) []string {
	wanted := make(map[string]bool, len(b))
	for _, s := range b {
		wanted[s] = true
	}
	var out []string
	for _, s := range a {
		if wanted[s] {
			out = append(out, s)
		}
	}
	return out
}

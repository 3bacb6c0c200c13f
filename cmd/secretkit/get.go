package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/secretkit/errors"
)

func newGetCmd(a *app) *cobra.Command {
	var providerFilter []string

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "resolve a key, printing only its raw value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value, ok := a.manager.Get(cmd.Context(), key, providerFilter...)
			if !ok {
				tried := providerFilter
				if len(tried) == 0 {
					tried = a.manager.Providers()
				}
				return errors.KeyNotFound(key, tried)
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&providerFilter, "provider", "p", nil,
		"specific provider(s) to consult (repeatable)")
	return cmd
}

package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kbukum/secretkit/errors"
	"github.com/kbukum/secretkit/secret"
)

func newProvidersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "manage key providers",
	}
	cmd.AddCommand(
		newProvidersListCmd(a),
		newProvidersEnableCmd(a),
		newProvidersDisableCmd(a),
		newProvidersStatusCmd(a),
		newProvidersWritableCmd(a),
	)
	return cmd
}

func newProvidersListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list active providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := a.manager.Providers()
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No active providers")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Active providers:")
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", name)
			}
			return nil
		},
	}
}

func newProvidersEnableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "enable <name>",
		Short: "enable a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.manager.EnableProvider(args[0]) {
				return errors.ProviderNotFound(args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Provider '%s' enabled\n", args[0])
			return nil
		},
	}
}

func newProvidersDisableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "disable <name>",
		Short: "disable a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.manager.DisableProvider(args[0]) {
				return errors.ProviderNotFound(args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Provider '%s' disabled\n", args[0])
			return nil
		},
	}
}

func newProvidersStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "show per-provider status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status := a.manager.Status()
			if len(status) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No providers registered")
				return nil
			}

			type row struct {
				name string
				st   secret.ProviderStatus
			}
			rows := make([]row, 0, len(status))
			for name, st := range status {
				rows = append(rows, row{name, st})
			}
			sort.Slice(rows, func(i, j int) bool {
				if rows[i].st.Priority != rows[j].st.Priority {
					return rows[i].st.Priority < rows[j].st.Priority
				}
				return rows[i].name < rows[j].name
			})

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PROVIDER\tPRIORITY\tSTATUS\tWRITABLE\tKIND")
			for _, r := range rows {
				status := "Enabled"
				if !r.st.Enabled {
					status = "Disabled"
				}
				writable := "No"
				if r.st.SupportsWrite {
					writable = "Yes"
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", r.name, r.st.Priority, status, writable, r.st.Kind)
			}
			return w.Flush()
		},
	}
}

func newProvidersWritableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "writable",
		Short: "list providers that support writing keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := a.manager.WritableProviders()
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No writable providers available")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Writable providers:")
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", name)
			}
			return nil
		},
	}
}

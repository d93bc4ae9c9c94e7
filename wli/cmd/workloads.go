/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and workload-inspection-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	kyaml "sigs.k8s.io/yaml"

	"github.com/sap/workload-inspection-runtime/wli/internal/overview"
)

const workloadsUsage = `List workloads with their live pod counts

For each deployment and stateful set, the number of pods currently backing it is
derived from the observable API state, and the workload status is computed with
kstatus semantics.
`

type workloadsOptions struct {
	allNamespaces bool
	outputFormat  string
}

func newWorkloadsCmd() *cobra.Command {
	options := &workloadsOptions{}

	cmd := &cobra.Command{
		Use:          "workloads",
		Aliases:      []string{"ws"},
		Short:        "List workloads with their live pod counts",
		Long:         workloadsUsage,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PreRunE: func(c *cobra.Command, args []string) error {
			switch options.outputFormat {
			case "table", "yaml", "json":
				return nil
			default:
				return fmt.Errorf("invalid value for flag --%s: %s", "output", options.outputFormat)
			}
		},
		RunE: func(c *cobra.Command, args []string) error {
			namespace := c.Flag("namespace").Value.String()
			if options.allNamespaces {
				namespace = ""
			}

			clnt, err := getClient(c.Flag("kubeconfig").Value.String())
			if err != nil {
				return err
			}

			rows, err := overview.Collect(context.TODO(), clnt, namespace)
			if err != nil {
				return err
			}

			switch options.outputFormat {
			case "table":
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n", "NAMESPACE", "NAME", "KIND", "PODS", "STATUS", "CREATED")
				for _, row := range rows {
					pods := "-"
					if row.Pods != nil {
						pods = fmt.Sprintf("%d", *row.Pods)
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
						row.Namespace,
						row.Name,
						row.Kind,
						pods,
						row.Status,
						formatTimestamp(row.CreatedAt.Time),
					)
				}
				w.Flush()
			case "yaml":
				fmt.Printf("%s", string(must(kyaml.Marshal(rows))))
			case "json":
				fmt.Printf("%s\n", string(must(json.MarshalIndent(rows, "", "  "))))
			}
			return nil
		},
		ValidArgsFunction: func(c *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&options.allNamespaces, "all-namespaces", "A", false, "List workloads across all namespaces")
	flags.StringVarP(&options.outputFormat, "output", "o", "table", "Output format; one of \"table\", \"yaml\" or \"json\"")

	return cmd
}

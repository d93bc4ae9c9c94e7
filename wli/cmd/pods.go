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
	"time"

	"github.com/sap/go-generics/slices"
	"github.com/spf13/cobra"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"

	kyaml "sigs.k8s.io/yaml"

	"github.com/sap/workload-inspection-runtime/pkg/objects"
	"github.com/sap/workload-inspection-runtime/pkg/workloads"
)

const podsUsage = `Show the pods currently backing a workload

For a deployment, the current replica set is derived by pod template equality
(ignoring the generated pod-template-hash label), and the pods controlled by it
are shown. For a stateful set, the pods carrying the current
controller-revision-hash label are shown.
`

type podsOptions struct {
	outputFormat string
}

func newPodsCmd() *cobra.Command {
	options := &podsOptions{}

	cmd := &cobra.Command{
		Use:          "pods (deployment|statefulset) NAME",
		Short:        "Show the pods currently backing a workload",
		Long:         podsUsage,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(2),
		PreRunE: func(c *cobra.Command, args []string) error {
			switch args[0] {
			case "deployment", "deploy", "statefulset", "sts":
			default:
				return fmt.Errorf("invalid workload kind: %s (must be one of \"deployment\", \"statefulset\")", args[0])
			}
			switch options.outputFormat {
			case "table", "yaml", "json":
				return nil
			default:
				return fmt.Errorf("invalid value for flag --%s: %s", "output", options.outputFormat)
			}
		},
		RunE: func(c *cobra.Command, args []string) error {
			kind := args[0]
			name := args[1]
			namespace := c.Flag("namespace").Value.String()

			clnt, err := getClient(c.Flag("kubeconfig").Value.String())
			if err != nil {
				return err
			}

			resolver := workloads.NewResolver(clnt)

			var pods []corev1.Pod
			switch kind {
			case "deployment", "deploy":
				deployment, err := objects.GetDeploymentOpt(context.TODO(), clnt, namespace, name)
				if err != nil {
					return err
				}
				if deployment == nil {
					return fmt.Errorf("deployment %s/%s not found", namespace, name)
				}
				var ok bool
				pods, ok, err = resolver.PodsOfDeployment(context.TODO(), deployment)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("deployment %s/%s has no current replica set", namespace, name)
				}
			case "statefulset", "sts":
				var ok bool
				pods, ok, err = resolver.PodsOfStatefulSetByName(context.TODO(), namespace, name)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("statefulset %s/%s not found", namespace, name)
				}
			}

			switch options.outputFormat {
			case "table":
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", "NAME", "PHASE", "NODE", "AGE")
				for _, pod := range pods {
					details := getPodDetails(pod)
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
						details.Name,
						details.Phase,
						details.Node,
						details.Age,
					)
				}
				w.Flush()
			case "yaml":
				fmt.Printf("%s", string(must(kyaml.Marshal(slices.Collect(pods, getPodDetails)))))
			case "json":
				fmt.Printf("%s\n", string(must(json.MarshalIndent(slices.Collect(pods, getPodDetails), "", "  "))))
			}
			return nil
		},
		ValidArgsFunction: func(c *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return []string{"deployment", "statefulset"}, cobra.ShellCompDirectiveNoFileComp
			}
			if len(args) > 1 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			if clnt, err := getClient(c.Flag("kubeconfig").Value.String()); err == nil {
				namespace := c.Flag("namespace").Value.String()
				if namespace == "" {
					namespace = "default"
				}
				ctx, cancel := context.WithTimeout(context.TODO(), 3*time.Second)
				defer cancel()
				switch args[0] {
				case "deployment", "deploy":
					if deployments, err := objects.ListDeployments(ctx, clnt, namespace); err == nil {
						return slices.Collect(deployments, func(deployment appsv1.Deployment) string { return deployment.Name }), cobra.ShellCompDirectiveNoFileComp
					}
				case "statefulset", "sts":
					if statefulSets, err := objects.ListStatefulSets(ctx, clnt, namespace); err == nil {
						return slices.Collect(statefulSets, func(statefulSet appsv1.StatefulSet) string { return statefulSet.Name }), cobra.ShellCompDirectiveNoFileComp
					}
				}
			}
			return nil, cobra.ShellCompDirectiveDefault
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&options.outputFormat, "output", "o", "table", "Output format; one of \"table\", \"yaml\" or \"json\"")

	return cmd
}

/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and workload-inspection-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package overview

import (
	"context"

	"github.com/sap/go-generics/slices"

	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	kstatus "sigs.k8s.io/cli-utils/pkg/kstatus/status"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/sap/workload-inspection-runtime/pkg/objects"
	"github.com/sap/workload-inspection-runtime/pkg/workloads"
)

// A Row summarizes one workload: its identity, the number of pods currently backing it
// as derived by the resolver, and its kstatus status. Pods is nil for a deployment
// without a current replica set.
type Row struct {
	Namespace string      `json:"namespace"`
	Name      string      `json:"name"`
	Kind      string      `json:"kind"`
	Pods      *int        `json:"pods,omitempty"`
	Status    string      `json:"status"`
	CreatedAt metav1.Time `json:"createdAt"`
}

// Collect assembles overview rows for all deployments and stateful sets in the given
// namespace (or across all namespaces if empty), ordered by namespace, kind, name.
func Collect(ctx context.Context, clnt client.Reader, namespace string) ([]*Row, error) {
	resolver := workloads.NewResolver(clnt)
	var rows []*Row

	deployments, err := objects.ListDeployments(ctx, clnt, namespace)
	if err != nil {
		return nil, err
	}
	for i := range deployments {
		deployment := &deployments[i]
		pods, ok, err := resolver.PodsOfDeployment(ctx, deployment)
		if err != nil {
			return nil, err
		}
		row := &Row{
			Namespace: deployment.Namespace,
			Name:      deployment.Name,
			Kind:      "Deployment",
			Status:    computeStatus(deployment, "Deployment"),
			CreatedAt: deployment.CreationTimestamp,
		}
		if ok {
			row.Pods = ref(len(pods))
		}
		rows = append(rows, row)
	}

	statefulSets, err := objects.ListStatefulSets(ctx, clnt, namespace)
	if err != nil {
		return nil, err
	}
	for i := range statefulSets {
		statefulSet := &statefulSets[i]
		pods, _, err := resolver.PodsOfStatefulSet(ctx, statefulSet)
		if err != nil {
			return nil, err
		}
		rows = append(rows, &Row{
			Namespace: statefulSet.Namespace,
			Name:      statefulSet.Name,
			Kind:      "StatefulSet",
			Pods:      ref(len(pods)),
			Status:    computeStatus(statefulSet, "StatefulSet"),
			CreatedAt: statefulSet.CreationTimestamp,
		})
	}

	rows = slices.SortBy(rows, func(x *Row, y *Row) bool {
		if x.Namespace != y.Namespace {
			return x.Namespace > y.Namespace
		}
		if x.Kind != y.Kind {
			return x.Kind > y.Kind
		}
		return x.Name > y.Name
	})
	return rows, nil
}

// kstatus dispatches on the object's group-kind, so the kind has to be set explicitly;
// typed objects usually come with an empty TypeMeta.
func computeStatus(object client.Object, kind string) string {
	obj, err := runtime.DefaultUnstructuredConverter.ToUnstructured(object)
	if err != nil {
		return string(kstatus.UnknownStatus)
	}
	u := &unstructured.Unstructured{Object: obj}
	u.SetGroupVersionKind(appsv1.SchemeGroupVersion.WithKind(kind))
	res, err := kstatus.Compute(u)
	if err != nil {
		return string(kstatus.UnknownStatus)
	}
	return string(res.Status)
}

func ref[T any](x T) *T {
	return &x
}

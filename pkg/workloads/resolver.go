/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and workload-inspection-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package workloads

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sap/go-generics/slices"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/sap/workload-inspection-runtime/internal/metrics"
	"github.com/sap/workload-inspection-runtime/pkg/objects"
)

// NewResolver creates a Resolver reading through the given client.
func NewResolver(clnt client.Reader) *Resolver {
	return &Resolver{client: clnt}
}

// A Resolver derives the currently live set of pods owned by a workload, directly or
// transitively, from the observable API state. It is stateless, performs no writes, and
// is safe for concurrent use; every call is a fresh point-in-time read, so a resolution
// spanning multiple round-trips may observe a torn view of the cluster, which heals on
// the next call.
type Resolver struct {
	client client.Reader
}

// PodsOfDeployment returns the pods currently backing the given deployment, that is the
// pods controlled by its current replica set. The second return value is false if the
// deployment has no current replica set (for example because it was never reconciled);
// the pod slice is nil in that case. A deployment which is scaled down to zero replicas
// instead yields an empty slice and true.
func (r *Resolver) PodsOfDeployment(ctx context.Context, deployment *appsv1.Deployment) ([]corev1.Pod, bool, error) {
	log := log.FromContext(ctx)
	metrics.Resolutions.WithLabelValues(kindDeployment).Inc()

	replicaSets, err := objects.ListReplicaSets(ctx, r.client, deployment.Namespace)
	if err != nil {
		metrics.ResolutionErrors.WithLabelValues(kindDeployment).Inc()
		return nil, false, errors.Wrapf(err, "error listing replica sets for deployment %s/%s", deployment.Namespace, deployment.Name)
	}
	replicaSet := CurrentReplicaSet(deployment, replicaSets)
	if replicaSet == nil {
		return nil, false, nil
	}
	log.V(2).Info("selected current replica set", "namespace", replicaSet.Namespace, "name", replicaSet.Name)

	pods, err := objects.ListPods(ctx, r.client, deployment.Namespace)
	if err != nil {
		metrics.ResolutionErrors.WithLabelValues(kindDeployment).Inc()
		return nil, false, errors.Wrapf(err, "error listing pods for deployment %s/%s", deployment.Namespace, deployment.Name)
	}
	pods = slices.Select(pods, func(pod corev1.Pod) bool {
		return isControlledBy(&pod, kindReplicaSet, replicaSet.Name)
	})
	return pods, true, nil
}

// PodsOfDeploymentByName fetches the named deployment and resolves its pods as
// PodsOfDeployment does. A missing deployment yields (nil, false, nil), not an error.
func (r *Resolver) PodsOfDeploymentByName(ctx context.Context, namespace string, name string) ([]corev1.Pod, bool, error) {
	deployment, err := objects.GetDeploymentOpt(ctx, r.client, namespace, name)
	if err != nil {
		return nil, false, errors.Wrapf(err, "error getting deployment %s/%s", namespace, name)
	}
	if deployment == nil {
		return nil, false, nil
	}
	return r.PodsOfDeployment(ctx, deployment)
}

// PodsOfStatefulSet returns the pods belonging to the stateful set's current revision,
// identified by the controller-revision-hash label; no secondary ownership filter is
// applied. A stateful set which has not published a current revision yet yields an empty
// slice and true (it exists but owns nothing resolvable yet); note that this differs from
// the deployment case, where a missing current replica set yields false.
func (r *Resolver) PodsOfStatefulSet(ctx context.Context, statefulSet *appsv1.StatefulSet) ([]corev1.Pod, bool, error) {
	log := log.FromContext(ctx)
	metrics.Resolutions.WithLabelValues(kindStatefulSet).Inc()

	selector, ok := CurrentRevisionSelector(statefulSet)
	if !ok {
		return []corev1.Pod{}, true, nil
	}
	log.V(2).Info("selected current revision", "namespace", statefulSet.Namespace, "name", statefulSet.Name, "selector", selector.String())

	pods, err := objects.ListPods(ctx, r.client, statefulSet.Namespace, client.MatchingLabelsSelector{Selector: selector})
	if err != nil {
		metrics.ResolutionErrors.WithLabelValues(kindStatefulSet).Inc()
		return nil, false, errors.Wrapf(err, "error listing pods for statefulset %s/%s", statefulSet.Namespace, statefulSet.Name)
	}
	return pods, true, nil
}

// PodsOfStatefulSetByName fetches the named stateful set and resolves its pods as
// PodsOfStatefulSet does. A missing stateful set yields (nil, false, nil), not an error.
func (r *Resolver) PodsOfStatefulSetByName(ctx context.Context, namespace string, name string) ([]corev1.Pod, bool, error) {
	statefulSet, err := objects.GetStatefulSetOpt(ctx, r.client, namespace, name)
	if err != nil {
		return nil, false, errors.Wrapf(err, "error getting statefulset %s/%s", namespace, name)
	}
	if statefulSet == nil {
		return nil, false, nil
	}
	return r.PodsOfStatefulSet(ctx, statefulSet)
}

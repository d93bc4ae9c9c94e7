/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and workload-inspection-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package workloads

import (
	"github.com/sap/go-generics/slices"

	appsv1 "k8s.io/api/apps/v1"
	"k8s.io/apimachinery/pkg/api/equality"
)

// CurrentReplicaSet picks, among the given candidates, the replica set which currently
// backs the given deployment: the earliest-created replica set which is controlled by the
// deployment and whose canonicalized pod template equals the deployment's canonicalized
// pod template. Returns nil if no candidate matches; a deployment which was never
// reconciled legitimately has no current replica set, so nil is a valid outcome, not an
// error condition.
func CurrentReplicaSet(deployment *appsv1.Deployment, candidates []appsv1.ReplicaSet) *appsv1.ReplicaSet {
	replicaSets := slices.Select(candidates, func(replicaSet appsv1.ReplicaSet) bool {
		return isControlledBy(&replicaSet, kindDeployment, deployment.Name)
	})
	// creation timestamps have one-second resolution; the name breaks remaining ties
	replicaSets = slices.SortBy(replicaSets, func(x appsv1.ReplicaSet, y appsv1.ReplicaSet) bool {
		if !x.CreationTimestamp.Equal(&y.CreationTimestamp) {
			return y.CreationTimestamp.Before(&x.CreationTimestamp)
		}
		return x.Name > y.Name
	})
	template := canonicalTemplate(deployment.Spec.Template)
	for i := range replicaSets {
		if equality.Semantic.DeepEqual(canonicalTemplate(replicaSets[i].Spec.Template), template) {
			return &replicaSets[i]
		}
	}
	return nil
}

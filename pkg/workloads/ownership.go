/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and workload-inspection-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package workloads

import (
	appsv1 "k8s.io/api/apps/v1"
	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

const (
	kindDeployment  = "Deployment"
	kindReplicaSet  = "ReplicaSet"
	kindStatefulSet = "StatefulSet"
	kindDaemonSet   = "DaemonSet"
	kindJob         = "Job"
	kindCronJob     = "CronJob"
	kindPod         = "Pod"
)

// IsControlledBy reports whether object carries a controller owner reference pointing to
// owner. Kind and name are compared exactly; UIDs are deliberately ignored, so the
// predicate also works on objects which were assembled by hand rather than read from the
// API server. An owner whose kind cannot be determined matches nothing.
func IsControlledBy(object metav1.Object, owner client.Object) bool {
	return isControlledBy(object, ownerKind(owner), owner.GetName())
}

func isControlledBy(object metav1.Object, kind string, name string) bool {
	if kind == "" {
		return false
	}
	for _, ownerReference := range object.GetOwnerReferences() {
		if ownerReference.Kind == kind && ownerReference.Name == name && ownerReference.Controller != nil && *ownerReference.Controller {
			return true
		}
	}
	return false
}

// TypeMeta is usually empty on objects decoded by client-go, so the owner's kind is
// derived from its concrete Go type; TypeMeta is only a fallback.
func ownerKind(owner client.Object) string {
	switch owner.(type) {
	case *appsv1.Deployment:
		return kindDeployment
	case *appsv1.ReplicaSet:
		return kindReplicaSet
	case *appsv1.StatefulSet:
		return kindStatefulSet
	case *appsv1.DaemonSet:
		return kindDaemonSet
	case *batchv1.Job:
		return kindJob
	case *batchv1.CronJob:
		return kindCronJob
	case *corev1.Pod:
		return kindPod
	default:
		return owner.GetObjectKind().GroupVersionKind().Kind
	}
}

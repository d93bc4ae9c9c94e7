/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and workload-inspection-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package objects

import (
	"context"

	appsv1 "k8s.io/api/apps/v1"
	batchv1 "k8s.io/api/batch/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Owner lookup: find the first owner reference of the wanted kind on obj and fetch the
// referenced object from obj's namespace. Both a missing reference and a dangling
// reference yield nil (and no error).
func getOwner[T any, P object[T]](ctx context.Context, c client.Reader, kind string, obj client.Object) (P, error) {
	for _, ownerReference := range obj.GetOwnerReferences() {
		if ownerReference.Kind == kind {
			return getOpt[T, P](ctx, c, kind, obj.GetNamespace(), ownerReference.Name)
		}
	}
	return nil, nil
}

// Get the deployment referenced by obj's owner references, if any.
func GetDeploymentOwner(ctx context.Context, c client.Reader, obj client.Object) (*appsv1.Deployment, error) {
	return getOwner[appsv1.Deployment](ctx, c, kindDeployment, obj)
}

// Get the replica set referenced by obj's owner references, if any.
func GetReplicaSetOwner(ctx context.Context, c client.Reader, obj client.Object) (*appsv1.ReplicaSet, error) {
	return getOwner[appsv1.ReplicaSet](ctx, c, kindReplicaSet, obj)
}

// Get the stateful set referenced by obj's owner references, if any.
func GetStatefulSetOwner(ctx context.Context, c client.Reader, obj client.Object) (*appsv1.StatefulSet, error) {
	return getOwner[appsv1.StatefulSet](ctx, c, kindStatefulSet, obj)
}

// Get the job referenced by obj's owner references, if any.
func GetJobOwner(ctx context.Context, c client.Reader, obj client.Object) (*batchv1.Job, error) {
	return getOwner[batchv1.Job](ctx, c, kindJob, obj)
}

/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and workload-inspection-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package objects

import (
	"context"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	apitypes "k8s.io/apimachinery/pkg/types"
	apiregistrationv1 "k8s.io/kube-aggregator/pkg/apis/apiregistration/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/sap/workload-inspection-runtime/internal/metrics"
)

const (
	kindPod                      = "Pod"
	kindConfigMap                = "ConfigMap"
	kindSecret                   = "Secret"
	kindService                  = "Service"
	kindServiceAccount           = "ServiceAccount"
	kindDeployment               = "Deployment"
	kindReplicaSet               = "ReplicaSet"
	kindStatefulSet              = "StatefulSet"
	kindJob                      = "Job"
	kindCronJob                  = "CronJob"
	kindCustomResourceDefinition = "CustomResourceDefinition"
	kindAPIService               = "APIService"
)

// Object pointer constraint for the generic accessor core.
type object[T any] interface {
	*T
	client.Object
}

func get[T any, P object[T]](ctx context.Context, c client.Reader, kind string, namespace string, name string) (P, error) {
	metrics.Reads.WithLabelValues(kind, "get").Inc()
	obj := P(new(T))
	if err := c.Get(ctx, apitypes.NamespacedName{Namespace: namespace, Name: name}, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func getOpt[T any, P object[T]](ctx context.Context, c client.Reader, kind string, namespace string, name string) (P, error) {
	obj, err := get[T, P](ctx, c, kind, namespace, name)
	if apierrors.IsNotFound(err) {
		return nil, nil
	}
	return obj, err
}

// Get the named pod; a missing pod is an error.
func GetPod(ctx context.Context, c client.Reader, namespace string, name string) (*corev1.Pod, error) {
	return get[corev1.Pod](ctx, c, kindPod, namespace, name)
}

// Get the named pod; return nil (and no error) if it does not exist.
func GetPodOpt(ctx context.Context, c client.Reader, namespace string, name string) (*corev1.Pod, error) {
	return getOpt[corev1.Pod](ctx, c, kindPod, namespace, name)
}

func GetConfigMap(ctx context.Context, c client.Reader, namespace string, name string) (*corev1.ConfigMap, error) {
	return get[corev1.ConfigMap](ctx, c, kindConfigMap, namespace, name)
}

func GetConfigMapOpt(ctx context.Context, c client.Reader, namespace string, name string) (*corev1.ConfigMap, error) {
	return getOpt[corev1.ConfigMap](ctx, c, kindConfigMap, namespace, name)
}

func GetSecret(ctx context.Context, c client.Reader, namespace string, name string) (*corev1.Secret, error) {
	return get[corev1.Secret](ctx, c, kindSecret, namespace, name)
}

func GetSecretOpt(ctx context.Context, c client.Reader, namespace string, name string) (*corev1.Secret, error) {
	return getOpt[corev1.Secret](ctx, c, kindSecret, namespace, name)
}

func GetDeployment(ctx context.Context, c client.Reader, namespace string, name string) (*appsv1.Deployment, error) {
	return get[appsv1.Deployment](ctx, c, kindDeployment, namespace, name)
}

func GetDeploymentOpt(ctx context.Context, c client.Reader, namespace string, name string) (*appsv1.Deployment, error) {
	return getOpt[appsv1.Deployment](ctx, c, kindDeployment, namespace, name)
}

func GetReplicaSet(ctx context.Context, c client.Reader, namespace string, name string) (*appsv1.ReplicaSet, error) {
	return get[appsv1.ReplicaSet](ctx, c, kindReplicaSet, namespace, name)
}

func GetReplicaSetOpt(ctx context.Context, c client.Reader, namespace string, name string) (*appsv1.ReplicaSet, error) {
	return getOpt[appsv1.ReplicaSet](ctx, c, kindReplicaSet, namespace, name)
}

func GetStatefulSet(ctx context.Context, c client.Reader, namespace string, name string) (*appsv1.StatefulSet, error) {
	return get[appsv1.StatefulSet](ctx, c, kindStatefulSet, namespace, name)
}

func GetStatefulSetOpt(ctx context.Context, c client.Reader, namespace string, name string) (*appsv1.StatefulSet, error) {
	return getOpt[appsv1.StatefulSet](ctx, c, kindStatefulSet, namespace, name)
}

// Get the named custom resource definition (cluster-scoped).
func GetCustomResourceDefinition(ctx context.Context, c client.Reader, name string) (*apiextensionsv1.CustomResourceDefinition, error) {
	return get[apiextensionsv1.CustomResourceDefinition](ctx, c, kindCustomResourceDefinition, "", name)
}

func GetCustomResourceDefinitionOpt(ctx context.Context, c client.Reader, name string) (*apiextensionsv1.CustomResourceDefinition, error) {
	return getOpt[apiextensionsv1.CustomResourceDefinition](ctx, c, kindCustomResourceDefinition, "", name)
}

// Get the named API service (cluster-scoped).
func GetAPIService(ctx context.Context, c client.Reader, name string) (*apiregistrationv1.APIService, error) {
	return get[apiregistrationv1.APIService](ctx, c, kindAPIService, "", name)
}

func GetAPIServiceOpt(ctx context.Context, c client.Reader, name string) (*apiregistrationv1.APIService, error) {
	return getOpt[apiregistrationv1.APIService](ctx, c, kindAPIService, "", name)
}

/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and workload-inspection-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package objects

import (
	"context"

	appsv1 "k8s.io/api/apps/v1"
	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/sap/workload-inspection-runtime/internal/metrics"
)

func listOptions(namespace string, opts []client.ListOption) []client.ListOption {
	return append([]client.ListOption{client.InNamespace(namespace)}, opts...)
}

// List all pods in the given namespace; additional list options (such as label selectors) may be passed.
func ListPods(ctx context.Context, c client.Reader, namespace string, opts ...client.ListOption) ([]corev1.Pod, error) {
	metrics.Reads.WithLabelValues(kindPod, "list").Inc()
	podList := &corev1.PodList{}
	if err := c.List(ctx, podList, listOptions(namespace, opts)...); err != nil {
		return nil, err
	}
	return podList.Items, nil
}

func ListConfigMaps(ctx context.Context, c client.Reader, namespace string, opts ...client.ListOption) ([]corev1.ConfigMap, error) {
	metrics.Reads.WithLabelValues(kindConfigMap, "list").Inc()
	configMapList := &corev1.ConfigMapList{}
	if err := c.List(ctx, configMapList, listOptions(namespace, opts)...); err != nil {
		return nil, err
	}
	return configMapList.Items, nil
}

func ListSecrets(ctx context.Context, c client.Reader, namespace string, opts ...client.ListOption) ([]corev1.Secret, error) {
	metrics.Reads.WithLabelValues(kindSecret, "list").Inc()
	secretList := &corev1.SecretList{}
	if err := c.List(ctx, secretList, listOptions(namespace, opts)...); err != nil {
		return nil, err
	}
	return secretList.Items, nil
}

func ListServices(ctx context.Context, c client.Reader, namespace string, opts ...client.ListOption) ([]corev1.Service, error) {
	metrics.Reads.WithLabelValues(kindService, "list").Inc()
	serviceList := &corev1.ServiceList{}
	if err := c.List(ctx, serviceList, listOptions(namespace, opts)...); err != nil {
		return nil, err
	}
	return serviceList.Items, nil
}

func ListServiceAccounts(ctx context.Context, c client.Reader, namespace string, opts ...client.ListOption) ([]corev1.ServiceAccount, error) {
	metrics.Reads.WithLabelValues(kindServiceAccount, "list").Inc()
	serviceAccountList := &corev1.ServiceAccountList{}
	if err := c.List(ctx, serviceAccountList, listOptions(namespace, opts)...); err != nil {
		return nil, err
	}
	return serviceAccountList.Items, nil
}

func ListDeployments(ctx context.Context, c client.Reader, namespace string, opts ...client.ListOption) ([]appsv1.Deployment, error) {
	metrics.Reads.WithLabelValues(kindDeployment, "list").Inc()
	deploymentList := &appsv1.DeploymentList{}
	if err := c.List(ctx, deploymentList, listOptions(namespace, opts)...); err != nil {
		return nil, err
	}
	return deploymentList.Items, nil
}

func ListReplicaSets(ctx context.Context, c client.Reader, namespace string, opts ...client.ListOption) ([]appsv1.ReplicaSet, error) {
	metrics.Reads.WithLabelValues(kindReplicaSet, "list").Inc()
	replicaSetList := &appsv1.ReplicaSetList{}
	if err := c.List(ctx, replicaSetList, listOptions(namespace, opts)...); err != nil {
		return nil, err
	}
	return replicaSetList.Items, nil
}

func ListStatefulSets(ctx context.Context, c client.Reader, namespace string, opts ...client.ListOption) ([]appsv1.StatefulSet, error) {
	metrics.Reads.WithLabelValues(kindStatefulSet, "list").Inc()
	statefulSetList := &appsv1.StatefulSetList{}
	if err := c.List(ctx, statefulSetList, listOptions(namespace, opts)...); err != nil {
		return nil, err
	}
	return statefulSetList.Items, nil
}

func ListJobs(ctx context.Context, c client.Reader, namespace string, opts ...client.ListOption) ([]batchv1.Job, error) {
	metrics.Reads.WithLabelValues(kindJob, "list").Inc()
	jobList := &batchv1.JobList{}
	if err := c.List(ctx, jobList, listOptions(namespace, opts)...); err != nil {
		return nil, err
	}
	return jobList.Items, nil
}

func ListCronJobs(ctx context.Context, c client.Reader, namespace string, opts ...client.ListOption) ([]batchv1.CronJob, error) {
	metrics.Reads.WithLabelValues(kindCronJob, "list").Inc()
	cronJobList := &batchv1.CronJobList{}
	if err := c.List(ctx, cronJobList, listOptions(namespace, opts)...); err != nil {
		return nil, err
	}
	return cronJobList.Items, nil
}

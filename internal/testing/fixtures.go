/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and workload-inspection-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package testing

import (
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func Ref[T any](x T) *T {
	return &x
}

// NewPodTemplate builds a minimal pod template with the given labels and a single
// container running the given image.
func NewPodTemplate(labels map[string]string, image string) corev1.PodTemplateSpec {
	return corev1.PodTemplateSpec{
		ObjectMeta: metav1.ObjectMeta{
			Labels: labels,
		},
		Spec: corev1.PodSpec{
			Containers: []corev1.Container{
				{Name: "main", Image: image},
			},
		},
	}
}

func NewDeployment(namespace string, name string, labels map[string]string, image string) *appsv1.Deployment {
	return &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Namespace: namespace,
			Name:      name,
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: Ref(int32(1)),
			Selector: &metav1.LabelSelector{MatchLabels: labels},
			Template: NewPodTemplate(labels, image),
		},
	}
}

// NewReplicaSet derives a replica set from the given deployment, the way the deployment
// controller would: the pod template is copied and stamped with the given
// pod-template-hash, and a controller owner reference to the deployment is attached.
// Callers may mutate the returned template to model an outdated generation.
func NewReplicaSet(deployment *appsv1.Deployment, name string, hash string, createdAt time.Time) *appsv1.ReplicaSet {
	template := *deployment.Spec.Template.DeepCopy()
	if template.Labels == nil {
		template.Labels = map[string]string{}
	}
	template.Labels[appsv1.DefaultDeploymentUniqueLabelKey] = hash
	return &appsv1.ReplicaSet{
		ObjectMeta: metav1.ObjectMeta{
			Namespace:         deployment.Namespace,
			Name:              name,
			Labels:            template.Labels,
			CreationTimestamp: metav1.NewTime(createdAt),
			OwnerReferences: []metav1.OwnerReference{
				{
					APIVersion: "apps/v1",
					Kind:       "Deployment",
					Name:       deployment.Name,
					Controller: Ref(true),
				},
			},
		},
		Spec: appsv1.ReplicaSetSpec{
			Replicas: deployment.Spec.Replicas,
			Selector: &metav1.LabelSelector{MatchLabels: template.Labels},
			Template: template,
		},
	}
}

func NewReplicaSetPod(replicaSet *appsv1.ReplicaSet, name string) *corev1.Pod {
	template := replicaSet.Spec.Template.DeepCopy()
	return &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Namespace: replicaSet.Namespace,
			Name:      name,
			Labels:    template.Labels,
			OwnerReferences: []metav1.OwnerReference{
				{
					APIVersion: "apps/v1",
					Kind:       "ReplicaSet",
					Name:       replicaSet.Name,
					Controller: Ref(true),
				},
			},
		},
		Spec: template.Spec,
	}
}

func NewStatefulSet(namespace string, name string, labels map[string]string, image string, currentRevision string) *appsv1.StatefulSet {
	return &appsv1.StatefulSet{
		ObjectMeta: metav1.ObjectMeta{
			Namespace: namespace,
			Name:      name,
		},
		Spec: appsv1.StatefulSetSpec{
			Replicas:    Ref(int32(1)),
			ServiceName: name,
			Selector:    &metav1.LabelSelector{MatchLabels: labels},
			Template:    NewPodTemplate(labels, image),
		},
		Status: appsv1.StatefulSetStatus{
			CurrentRevision: currentRevision,
		},
	}
}

// NewStatefulSetPod builds a pod owned by the given stateful set and tagged with the
// given controller-revision-hash, the way the statefulset controller would create it.
func NewStatefulSetPod(statefulSet *appsv1.StatefulSet, name string, revision string) *corev1.Pod {
	template := statefulSet.Spec.Template.DeepCopy()
	labels := map[string]string{}
	for key, value := range template.Labels {
		labels[key] = value
	}
	labels[appsv1.ControllerRevisionHashLabelKey] = revision
	return &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Namespace: statefulSet.Namespace,
			Name:      name,
			Labels:    labels,
			OwnerReferences: []metav1.OwnerReference{
				{
					APIVersion: "apps/v1",
					Kind:       "StatefulSet",
					Name:       statefulSet.Name,
					Controller: Ref(true),
				},
			},
		},
		Spec: template.Spec,
	}
}

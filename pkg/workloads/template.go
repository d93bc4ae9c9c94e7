/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and workload-inspection-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package workloads

import (
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/equality"
)

// The deployment controller stamps every replica set's pod template with a generated
// pod-template-hash label; templates must be compared with that label stripped, since its
// value is not semantically meaningful. Returns a copy, the input is never mutated.
func canonicalTemplate(template corev1.PodTemplateSpec) corev1.PodTemplateSpec {
	template = *template.DeepCopy()
	delete(template.Labels, appsv1.DefaultDeploymentUniqueLabelKey)
	return template
}

func templatesMatch(x corev1.PodTemplateSpec, y corev1.PodTemplateSpec) bool {
	return equality.Semantic.DeepEqual(canonicalTemplate(x), canonicalTemplate(y))
}

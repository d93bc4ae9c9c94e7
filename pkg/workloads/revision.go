/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and workload-inspection-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package workloads

import (
	appsv1 "k8s.io/api/apps/v1"
	"k8s.io/apimachinery/pkg/labels"
)

// CurrentRevisionSelector returns a label selector matching the pods belonging to the
// stateful set's current revision. The second return value is false if the stateful set
// has not published a current revision yet (that is, was never reconciled).
func CurrentRevisionSelector(statefulSet *appsv1.StatefulSet) (labels.Selector, bool) {
	revision := statefulSet.Status.CurrentRevision
	if revision == "" {
		return nil, false
	}
	return labels.SelectorFromSet(labels.Set{appsv1.ControllerRevisionHashLabelKey: revision}), true
}

/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and workload-inspection-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package overview_test

import (
	"context"
	"time"

	"github.com/sap/go-generics/slices"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/sap/workload-inspection-runtime/internal/testing"

	"github.com/sap/workload-inspection-runtime/wli/internal/overview"
)

var _ = Describe("testing: overview.go", func() {
	var ctx context.Context
	var deployment *appsv1.Deployment
	var statefulSet *appsv1.StatefulSet
	var t0 time.Time

	BeforeEach(func() {
		ctx = context.TODO()
		t0 = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

		deployment = NewDeployment("ns1", "web", map[string]string{"app": "web"}, "web:1.0")
		deployment.Status = appsv1.DeploymentStatus{
			Replicas:          1,
			UpdatedReplicas:   1,
			ReadyReplicas:     1,
			AvailableReplicas: 1,
			Conditions: []appsv1.DeploymentCondition{
				{Type: appsv1.DeploymentProgressing, Status: corev1.ConditionTrue, Reason: "NewReplicaSetAvailable"},
				{Type: appsv1.DeploymentAvailable, Status: corev1.ConditionTrue},
			},
		}

		statefulSet = NewStatefulSet("ns1", "db", map[string]string{"app": "db"}, "db:1.0", "db-5f8c")
		statefulSet.Status = appsv1.StatefulSetStatus{
			Replicas:        1,
			ReadyReplicas:   1,
			CurrentReplicas: 1,
			UpdatedReplicas: 1,
			CurrentRevision: "db-5f8c",
			UpdateRevision:  "db-5f8c",
		}
	})

	Context("testing: Collect()", func() {
		It("should assemble rows with live pod counts and status", func() {
			replicaSet := NewReplicaSet(deployment, "web-5f8c7d9b6", "5f8c7d9b6", t0)
			pod := NewReplicaSetPod(replicaSet, "web-5f8c7d9b6-aaaaa")
			dbPod := NewStatefulSetPod(statefulSet, "db-0", "db-5f8c")

			clnt := NewClient(deployment, replicaSet, pod, statefulSet, dbPod)
			rows, err := overview.Collect(ctx, clnt, "ns1")
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))

			Expect(rows[0].Kind).To(Equal("Deployment"))
			Expect(rows[0].Name).To(Equal("web"))
			Expect(rows[0].Pods).NotTo(BeNil())
			Expect(*rows[0].Pods).To(Equal(1))
			Expect(rows[0].Status).To(Equal("Current"))

			Expect(rows[1].Kind).To(Equal("StatefulSet"))
			Expect(rows[1].Name).To(Equal("db"))
			Expect(rows[1].Pods).NotTo(BeNil())
			Expect(*rows[1].Pods).To(Equal(1))
			Expect(rows[1].Status).To(Equal("Current"))
		})

		It("should leave the pod count unset for a deployment without a current replica set", func() {
			clnt := NewClient(deployment)
			rows, err := overview.Collect(ctx, clnt, "ns1")
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Pods).To(BeNil())
		})

		It("should order rows by namespace, kind, name", func() {
			otherDeployment := NewDeployment("ns1", "api", map[string]string{"app": "api"}, "api:1.0")
			clnt := NewClient(deployment, otherDeployment, statefulSet)

			rows, err := overview.Collect(ctx, clnt, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(slices.Collect(rows, func(row *overview.Row) string { return row.Name })).To(Equal([]string{"api", "web", "db"}))
		})

		It("should scope the listing to the given namespace", func() {
			otherDeployment := NewDeployment("ns2", "api", map[string]string{"app": "api"}, "api:1.0")
			clnt := NewClient(deployment, otherDeployment)

			rows, err := overview.Collect(ctx, clnt, "ns1")
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Name).To(Equal("web"))
		})
	})
})

/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and workload-inspection-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package objects_test

import (
	"context"
	"fmt"
	"time"

	"github.com/sap/go-generics/slices"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/client"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/sap/workload-inspection-runtime/internal/testing"

	"github.com/sap/workload-inspection-runtime/pkg/objects"
)

var _ = Describe("testing: get.go", func() {
	var ctx context.Context
	var clnt client.Client
	var deployment *appsv1.Deployment

	BeforeEach(func() {
		ctx = context.TODO()
		deployment = NewDeployment("ns1", "web", map[string]string{"app": "web"}, "web:1.0")
		clnt = NewClient(
			deployment,
			&corev1.ConfigMap{ObjectMeta: metav1.ObjectMeta{Namespace: "ns1", Name: "web-config"}, Data: map[string]string{"key": "value"}},
		)
	})

	Context("testing: GetDeployment()", func() {
		It("should return the named deployment", func() {
			found, err := objects.GetDeployment(ctx, clnt, "ns1", "web")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Name).To(Equal("web"))
		})

		It("should return a not-found error for a missing deployment", func() {
			_, err := objects.GetDeployment(ctx, clnt, "ns1", "missing")
			Expect(apierrors.IsNotFound(err)).To(BeTrue())
		})
	})

	Context("testing: GetDeploymentOpt()", func() {
		It("should return nil (and no error) for a missing deployment", func() {
			found, err := objects.GetDeploymentOpt(ctx, clnt, "ns1", "missing")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})

		It("should return the deployment if it exists", func() {
			found, err := objects.GetDeploymentOpt(ctx, clnt, "ns1", "web")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).NotTo(BeNil())
		})
	})

	Context("testing: GetConfigMap()", func() {
		It("should return the named configmap", func() {
			configMap, err := objects.GetConfigMap(ctx, clnt, "ns1", "web-config")
			Expect(err).NotTo(HaveOccurred())
			Expect(configMap.Data).To(HaveKeyWithValue("key", "value"))
		})
	})
})

var _ = Describe("testing: list.go", func() {
	var ctx context.Context
	var clnt client.Client

	BeforeEach(func() {
		ctx = context.TODO()
		clnt = NewClient(
			&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Namespace: "ns1", Name: "pod-a", Labels: map[string]string{"app": "web"}}},
			&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Namespace: "ns1", Name: "pod-b", Labels: map[string]string{"app": "db"}}},
			&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Namespace: "ns2", Name: "pod-c", Labels: map[string]string{"app": "web"}}},
		)
	})

	Context("testing: ListPods()", func() {
		It("should list the pods of the given namespace", func() {
			pods, err := objects.ListPods(ctx, clnt, "ns1")
			Expect(err).NotTo(HaveOccurred())
			Expect(slices.Collect(pods, func(pod corev1.Pod) string { return pod.Name })).To(ConsistOf("pod-a", "pod-b"))
		})

		It("should honor additional label selector options", func() {
			pods, err := objects.ListPods(ctx, clnt, "ns1", client.MatchingLabels{"app": "web"})
			Expect(err).NotTo(HaveOccurred())
			Expect(slices.Collect(pods, func(pod corev1.Pod) string { return pod.Name })).To(ConsistOf("pod-a"))
		})

		It("should return an empty slice for a namespace without pods", func() {
			pods, err := objects.ListPods(ctx, clnt, "ns3")
			Expect(err).NotTo(HaveOccurred())
			Expect(pods).To(BeEmpty())
		})
	})

	Context("testing: ListReplicaSets()", func() {
		It("should list replica sets", func() {
			deployment := NewDeployment("ns1", "web", map[string]string{"app": "web"}, "web:1.0")
			replicaSet := NewReplicaSet(deployment, "web-5f8c7d9b6", "5f8c7d9b6", time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
			clnt = NewClient(replicaSet)

			replicaSets, err := objects.ListReplicaSets(ctx, clnt, "ns1")
			Expect(err).NotTo(HaveOccurred())
			Expect(replicaSets).To(HaveLen(1))
			Expect(replicaSets[0].Name).To(Equal("web-5f8c7d9b6"))
		})
	})
})

var _ = Describe("testing: owner.go", func() {
	var ctx context.Context
	var deployment *appsv1.Deployment
	var replicaSet *appsv1.ReplicaSet

	BeforeEach(func() {
		ctx = context.TODO()
		deployment = NewDeployment("ns1", "web", map[string]string{"app": "web"}, "web:1.0")
		replicaSet = NewReplicaSet(deployment, "web-5f8c7d9b6", "5f8c7d9b6", time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	})

	Context("testing: GetDeploymentOwner()", func() {
		It("should fetch the owning deployment through the owner reference", func() {
			clnt := NewClient(deployment, replicaSet)
			owner, err := objects.GetDeploymentOwner(ctx, clnt, replicaSet)
			Expect(err).NotTo(HaveOccurred())
			Expect(owner).NotTo(BeNil())
			Expect(owner.Name).To(Equal("web"))
		})

		It("should return nil if there is no owner reference of that kind", func() {
			clnt := NewClient(deployment)
			owner, err := objects.GetDeploymentOwner(ctx, clnt, deployment)
			Expect(err).NotTo(HaveOccurred())
			Expect(owner).To(BeNil())
		})

		It("should return nil for a dangling owner reference", func() {
			clnt := NewClient(replicaSet)
			owner, err := objects.GetDeploymentOwner(ctx, clnt, replicaSet)
			Expect(err).NotTo(HaveOccurred())
			Expect(owner).To(BeNil())
		})
	})

	Context("testing: GetReplicaSetOwner()", func() {
		It("should fetch the owning replica set of a pod", func() {
			pod := NewReplicaSetPod(replicaSet, "web-5f8c7d9b6-aaaaa")
			clnt := NewClient(replicaSet, pod)
			owner, err := objects.GetReplicaSetOwner(ctx, clnt, pod)
			Expect(err).NotTo(HaveOccurred())
			Expect(owner).NotTo(BeNil())
			Expect(owner.Name).To(Equal("web-5f8c7d9b6"))
		})
	})
})

var _ = Describe("testing: errors.go", func() {
	Context("testing: NotFoundOk()", func() {
		It("should map nil to (true, nil)", func() {
			found, err := objects.NotFoundOk(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
		})

		It("should map a not-found error to (false, nil)", func() {
			notFoundErr := apierrors.NewNotFound(schema.GroupResource{Group: "apps", Resource: "deployments"}, "web")
			found, err := objects.NotFoundOk(notFoundErr)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
		})

		It("should pass any other error through", func() {
			otherErr := fmt.Errorf("connection refused")
			_, err := objects.NotFoundOk(otherErr)
			Expect(err).To(MatchError("connection refused"))
		})
	})
})

/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and workload-inspection-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"fmt"
	"os"
	"time"

	corev1 "k8s.io/api/core/v1"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/tools/clientcmd"
	apiregistrationv1 "k8s.io/kube-aggregator/pkg/apis/apiregistration/v1"

	"github.com/sap/workload-inspection-runtime/internal/clientfactory"
	"github.com/sap/workload-inspection-runtime/pkg/cluster"
)

func ref[T any](x T) *T {
	return &x
}

func must[T any](x T, err error) T {
	if err != nil {
		panic(err)
	}
	return x
}

func getClient(kubeConfigPath string) (cluster.Client, error) {
	if kubeConfigPath == "" {
		kubeConfigPath = os.Getenv("KUBECONFIG")
	}
	if kubeConfigPath == "" {
		return nil, fmt.Errorf("no kubeconfig was specified")
	}
	kubeConfig, err := os.ReadFile(kubeConfigPath)
	if err != nil {
		return nil, err
	}
	config, err := clientcmd.RESTConfigFromKubeConfig(kubeConfig)
	if err != nil {
		return nil, err
	}
	scheme := runtime.NewScheme()
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(apiextensionsv1.AddToScheme(scheme))
	utilruntime.Must(apiregistrationv1.AddToScheme(scheme))
	return clientfactory.NewClientFor(config, scheme)
}

func formatTimestamp(t time.Time) string {
	d := time.Since(t)
	if d > 24*time.Hour {
		return fmt.Sprintf("%dd", d/(24*time.Hour))
	} else if d > time.Hour {
		return fmt.Sprintf("%dh", d/time.Hour)
	} else if d > time.Minute {
		return fmt.Sprintf("%dm", d/time.Minute)
	} else {
		return fmt.Sprintf("%ds", d/time.Second)
	}
}

type podDetails struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	Phase     string `json:"phase"`
	Node      string `json:"node"`
	Age       string `json:"age"`
}

func getPodDetails(pod corev1.Pod) *podDetails {
	return &podDetails{
		Namespace: pod.Namespace,
		Name:      pod.Name,
		Phase:     string(pod.Status.Phase),
		Node:      pod.Spec.NodeName,
		Age:       formatTimestamp(pod.CreationTimestamp.Time),
	}
}

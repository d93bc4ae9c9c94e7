/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and workload-inspection-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package clientfactory

import (
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/discovery"
	"k8s.io/client-go/rest"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/sap/workload-inspection-runtime/pkg/cluster"
)

func NewClientFor(config *rest.Config, scheme *runtime.Scheme) (cluster.Client, error) {
	httpClient, err := rest.HTTPClientFor(config)
	if err != nil {
		return nil, err
	}
	ctrlClient, err := client.New(config, client.Options{HTTPClient: httpClient, Scheme: scheme})
	if err != nil {
		return nil, err
	}
	discoveryClient, err := discovery.NewDiscoveryClientForConfigAndClient(config, httpClient)
	if err != nil {
		return nil, err
	}
	return cluster.NewClient(ctrlClient, discoveryClient, config, httpClient), nil
}

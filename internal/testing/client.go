/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and workload-inspection-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package testing

import (
	"context"

	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	apiregistrationv1 "k8s.io/kube-aggregator/pkg/apis/apiregistration/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
)

func NewScheme() *runtime.Scheme {
	scheme := runtime.NewScheme()
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(apiextensionsv1.AddToScheme(scheme))
	utilruntime.Must(apiregistrationv1.AddToScheme(scheme))
	return scheme
}

// NewClient builds a fake client pre-populated with the given objects. Fields such as
// creation timestamps and owner references are stored as-is, which lets suites model
// cluster states (old and new replica sets, revision labels) deterministically.
func NewClient(objects ...client.Object) client.Client {
	return fake.NewClientBuilder().WithScheme(NewScheme()).WithObjects(objects...).Build()
}

// NewFailingReader returns a reader whose operations all fail with the given error;
// used to verify that transport errors propagate unswallowed.
func NewFailingReader(err error) client.Reader {
	return &failingReader{err: err}
}

type failingReader struct {
	err error
}

func (r *failingReader) Get(ctx context.Context, key client.ObjectKey, obj client.Object, opts ...client.GetOption) error {
	return r.err
}

func (r *failingReader) List(ctx context.Context, list client.ObjectList, opts ...client.ListOption) error {
	return r.err
}

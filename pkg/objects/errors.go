/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and workload-inspection-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package objects

import (
	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// NotFoundOk normalizes the outcome of a call where the target object being absent counts
// as success, typically around delete style operations. A nil error maps to (true, nil),
// a not-found error to (false, nil); every other error is passed through unchanged. The
// returned bool tells whether the object actually existed.
func NotFoundOk(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if apierrors.IsNotFound(err) {
		return false, nil
	}
	return false, err
}

/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and workload-inspection-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"os"

	"github.com/go-logr/logr"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/sap/workload-inspection-runtime/wli/cmd"
)

func main() {
	log.SetLogger(logr.Discard())

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and workload-inspection-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

/*
Package workloads resolves the currently live set of pods owned by a workload controller
(Deployment or StatefulSet), re-deriving ownership from observable API objects instead of
relying on controller-internal state. For deployments this means finding the current
replica set by pod template equality (ignoring the generated pod-template-hash label) and
then the pods controlled by it; for stateful sets it means listing pods carrying the
current controller-revision-hash label.
*/
package workloads

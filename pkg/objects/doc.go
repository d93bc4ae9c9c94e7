/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and workload-inspection-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

/*
Package objects provides a typed read surface over a controller-runtime client: get and list
operations for a closed set of kinds, owner lookups through owner references, and helpers to
normalize not-found outcomes.
*/
package objects

// SPDX-License-Identifier: MPL-2.0

// Package issue provides structured, user-facing error reporting.
//
// ActionableError carries the failed operation, the resource involved and
// suggestions for fixing the problem. The Issue catalog holds rendered
// markdown cards for the handful of fatal conditions pbinv can hit at
// startup.
package issue

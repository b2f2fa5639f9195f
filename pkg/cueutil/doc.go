// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// It consolidates the error formatting and input guards used by the
// config package when validating user-supplied CUE files against an
// embedded schema.
package cueutil

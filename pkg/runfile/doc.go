// SPDX-License-Identifier: MPL-2.0

// Package runfile implements the recipe registry: parsing the on-disk
// runfile format into immutable Recipe definitions, binding caller-supplied
// positional tokens to recipe parameters, and rendering the resolved
// command lines. Everything here is pure and deterministic; the only I/O is
// reading the runfile during Load.
package runfile

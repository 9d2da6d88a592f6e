// File: pool/doc.go
// License: Apache-2.0
//
// Package pool provides object reuse helpers for hot loops: a generic
// sync.Pool wrapper and a fixed-length slice pool sized to match elastic
// pop requests.
package pool

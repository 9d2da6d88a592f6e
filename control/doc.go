// File: control/doc.go
// License: Apache-2.0
//
// Package control holds observability helpers for loops built on the ring
// package: a registry that counts elastic pop outcomes for logging and
// export. The registry is optional; the core structures never depend on it.
package control

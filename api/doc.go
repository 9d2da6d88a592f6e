// File: api/doc.go
// License: Apache-2.0
//
// Package api defines the public contracts of hioload-ds: FIFO buffer
// interfaces and the elastic pop outcome types shared across packages.
//
// Concrete implementations live in ring; this package carries no state and
// no logic beyond outcome formatting, so that callers can depend on the
// contracts without pulling in implementations.
package api

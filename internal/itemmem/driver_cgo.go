//go:build cgo

package itemmem

import (
	vec "github.com/asg017/sqlite-vec-go-bindings/cgo"
	_ "github.com/mattn/go-sqlite3"
)

const driverName = "sqlite3"

func init() {
	// Registers sqlite-vec on every new connection, providing vec_bit
	// and vec_distance_hamming natively.
	vec.Auto()
}

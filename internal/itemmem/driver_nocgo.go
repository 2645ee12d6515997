//go:build !cgo

package itemmem

import (
	"database/sql/driver"
	"fmt"
	"math/bits"

	sqlite "modernc.org/sqlite"
)

const driverName = "sqlite"

func init() {
	// Register sqlite-vec compat: vec_bit and vec_distance_hamming as
	// plain scalar functions so the KNN query works on the pure-Go
	// driver too.
	// Deterministic: same input blobs produce the same distance.
	_ = sqlite.RegisterDeterministicScalarFunction("vec_bit", 1, vecBit)
	_ = sqlite.RegisterDeterministicScalarFunction("vec_distance_hamming", 2, vecDistanceHamming)
}

// vecBit marks a blob as a bit vector. The native extension wraps the
// payload in a typed header; here the raw bytes already are the bit
// vector, so this is the identity.
func vecBit(ctx *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("vec_bit expects 1 argument")
	}
	return coerceBits(args[0])
}

// vecDistanceHamming counts differing bits between two bit vectors.
func vecDistanceHamming(ctx *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("vec_distance_hamming expects 2 arguments")
	}
	a, err := coerceBits(args[0])
	if err != nil {
		return nil, err
	}
	b, err := coerceBits(args[1])
	if err != nil {
		return nil, err
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("vec_distance_hamming: length mismatch %d vs %d", len(a), len(b))
	}
	total := 0
	for i := range a {
		total += bits.OnesCount8(a[i] ^ b[i])
	}
	return int64(total), nil
}

// coerceBits converts supported driver.Value types into raw bytes.
func coerceBits(v driver.Value) ([]byte, error) {
	switch x := v.(type) {
	case []byte:
		return x, nil
	case string:
		return []byte(x), nil
	default:
		return nil, fmt.Errorf("vec_distance_hamming: unsupported type %T", v)
	}
}

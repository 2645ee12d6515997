// Package vsa implements binary hyperdimensional vectors and the
// algebra the semantic layer builds on: XOR binding, majority-vote
// bundling, and normalized Hamming similarity. Vectors are dense bit
// strings packed into uint64 words; all operations are deterministic
// given the same seeds.
package vsa

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math/bits"
)

// Vector is a binary hypervector. The zero value is unusable; construct
// with New, Random, or HashLabel. Vectors are treated as immutable:
// operations return fresh vectors and never modify their inputs.
type Vector struct {
	data []uint64
	dims int
}

// New returns a zero vector of the given dimension.
// Panics if dims is not a positive multiple of 64.
func New(dims int) Vector {
	checkDims(dims)
	return Vector{data: make([]uint64, dims/64), dims: dims}
}

// Random returns a deterministic pseudo-random vector for a seed.
// The same (dims, seed) pair always yields the same vector. Bits are
// drawn from a splitmix64 stream, so any two distinct seeds produce
// vectors with expected similarity 0.5.
func Random(dims int, seed uint64) Vector {
	checkDims(dims)
	v := Vector{data: make([]uint64, dims/64), dims: dims}
	s := seed
	for i := range v.data {
		s, v.data[i] = splitmix64(s)
	}
	return v
}

// HashLabel returns the deterministic vector for an arbitrary label.
// Labels are hashed case-sensitively; callers normalize first.
func HashLabel(dims int, label string) Vector {
	h := fnv.New64a()
	h.Write([]byte(label))
	return Random(dims, h.Sum64())
}

// Dims returns the vector width in bits.
func (v Vector) Dims() int { return v.dims }

// IsZero reports whether v is the uninitialized zero value.
func (v Vector) IsZero() bool { return v.data == nil }

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := Vector{data: make([]uint64, len(v.data)), dims: v.dims}
	copy(out.data, v.data)
	return out
}

// Bit returns bit i as 0 or 1.
func (v Vector) Bit(i int) int {
	return int(v.data[i/64]>>(uint(i)%64)) & 1
}

// PopCount returns the number of set bits.
func (v Vector) PopCount() int {
	n := 0
	for _, w := range v.data {
		n += bits.OnesCount64(w)
	}
	return n
}

// Equal reports exact bitwise equality.
func (v Vector) Equal(o Vector) bool {
	if v.dims != o.dims {
		return false
	}
	for i, w := range v.data {
		if w != o.data[i] {
			return false
		}
	}
	return true
}

// Bytes serializes the vector to little-endian words for storage.
func (v Vector) Bytes() []byte {
	out := make([]byte, len(v.data)*8)
	for i, w := range v.data {
		binary.LittleEndian.PutUint64(out[i*8:], w)
	}
	return out
}

// FromBytes reconstructs a vector serialized by Bytes.
func FromBytes(dims int, b []byte) (Vector, error) {
	checkDims(dims)
	if len(b) != dims/8 {
		return Vector{}, fmt.Errorf("vsa: want %d bytes for %d dims, got %d", dims/8, dims, len(b))
	}
	v := Vector{data: make([]uint64, dims/64), dims: dims}
	for i := range v.data {
		v.data[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
	return v, nil
}

func checkDims(dims int) {
	if dims <= 0 || dims%64 != 0 {
		panic(fmt.Sprintf("vsa: dims must be a positive multiple of 64, got %d", dims))
	}
}

// splitmix64 advances the state and returns (newState, output).
// Reference constants from Vigna's splitmix64.
func splitmix64(state uint64) (uint64, uint64) {
	state += 0x9E3779B97F4A7C15
	z := state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return state, z ^ (z >> 31)
}

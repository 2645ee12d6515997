package vsa

// tiebreakSeed generates the vector that settles 50/50 bundle votes.
// Fixed so bundling stays deterministic across processes.
const tiebreakSeed uint64 = 0x9E3779B97F4A7C15

// Bind combines two vectors with XOR. Binding is its own inverse:
// Bind(Bind(a, b), b) == a, which is what makes role-filler pairs
// recoverable. Panics on dimension mismatch; callers at API
// boundaries check dimensions and surface typed errors instead.
func Bind(a, b Vector) Vector {
	mustMatch(a, b)
	out := Vector{data: make([]uint64, len(a.data)), dims: a.dims}
	for i := range a.data {
		out.data[i] = a.data[i] ^ b.data[i]
	}
	return out
}

// Bundle superimposes vectors with a per-bit majority vote. The result
// stays similar to every input (similarity > 0.5), degrading as more
// vectors are added. Ties on even counts are broken by a fixed
// tiebreak vector so results are reproducible. Panics when given no
// vectors or mismatched dimensions.
func Bundle(vs ...Vector) Vector {
	if len(vs) == 0 {
		panic("vsa: Bundle requires at least one vector")
	}
	if len(vs) == 1 {
		return vs[0].Clone()
	}
	for _, v := range vs[1:] {
		mustMatch(vs[0], v)
	}

	dims := vs[0].dims
	counts := make([]int, dims)
	for _, v := range vs {
		for i := 0; i < dims; i++ {
			counts[i] += v.Bit(i)
		}
	}

	tie := Random(dims, tiebreakSeed)
	out := New(dims)
	n := len(vs)
	for i := 0; i < dims; i++ {
		switch {
		case counts[i]*2 > n:
			out.data[i/64] |= 1 << (uint(i) % 64)
		case counts[i]*2 == n:
			if tie.Bit(i) == 1 {
				out.data[i/64] |= 1 << (uint(i) % 64)
			}
		}
	}
	return out
}

// Hamming returns the number of positions where a and b differ.
func Hamming(a, b Vector) int {
	mustMatch(a, b)
	n := 0
	for i := range a.data {
		x := a.data[i] ^ b.data[i]
		for x != 0 {
			x &= x - 1
			n++
		}
	}
	return n
}

// Similarity returns 1 - hamming/dims, normalized to [0,1].
// Identical vectors score 1.0; unrelated random vectors hover
// around 0.5; complementary vectors score 0.0.
func Similarity(a, b Vector) float64 {
	return 1.0 - float64(Hamming(a, b))/float64(a.dims)
}

// Permute cyclically rotates the whole bit string left by n positions.
// Permutation preserves similarity structure while making the result
// quasi-orthogonal to the input, which encodes sequence position.
func Permute(v Vector, n int) Vector {
	if n < 0 {
		n = v.dims + n%v.dims
	}
	n = n % v.dims
	if n == 0 {
		return v.Clone()
	}
	out := New(v.dims)
	for i := 0; i < v.dims; i++ {
		if v.Bit(i) == 1 {
			j := (i + n) % v.dims
			out.data[j/64] |= 1 << (uint(j) % 64)
		}
	}
	return out
}

func mustMatch(a, b Vector) {
	if a.dims != b.dims {
		panic("vsa: dimension mismatch")
	}
	if a.data == nil || b.data == nil {
		panic("vsa: uninitialized vector")
	}
}

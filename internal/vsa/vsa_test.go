package vsa

import (
	"math"
	"testing"
)

const testDims = 8192

func TestRandomDeterministic(t *testing.T) {
	a := Random(testDims, 42)
	b := Random(testDims, 42)
	if !a.Equal(b) {
		t.Error("same seed must produce the same vector")
	}

	c := Random(testDims, 43)
	if a.Equal(c) {
		t.Error("different seeds must produce different vectors")
	}
	if s := Similarity(a, c); s < 0.45 || s > 0.55 {
		t.Errorf("unrelated vectors should sit near 0.5 similarity, got %v", s)
	}
}

func TestRandomBitBalance(t *testing.T) {
	v := Random(testDims, 7)
	ones := v.PopCount()
	ratio := float64(ones) / float64(testDims)
	if ratio < 0.45 || ratio > 0.55 {
		t.Errorf("expected roughly balanced bits, got ratio %v", ratio)
	}
}

func TestHashLabelDeterministic(t *testing.T) {
	a := HashLabel(testDims, "moscow")
	b := HashLabel(testDims, "moscow")
	if !a.Equal(b) {
		t.Error("same label must hash to the same vector")
	}
	c := HashLabel(testDims, "berlin")
	if a.Equal(c) {
		t.Error("different labels must hash to different vectors")
	}
}

func TestBindSelfInverse(t *testing.T) {
	a := Random(testDims, 1)
	b := Random(testDims, 2)

	bound := Bind(a, b)
	if s := Similarity(bound, a); s > 0.55 {
		t.Errorf("bound vector should be dissimilar to its inputs, got %v", s)
	}

	recovered := Bind(bound, b)
	if !recovered.Equal(a) {
		t.Error("Bind(Bind(a,b), b) must equal a exactly")
	}
}

func TestBundleStaysSimilarToInputs(t *testing.T) {
	vs := []Vector{
		Random(testDims, 10),
		Random(testDims, 11),
		Random(testDims, 12),
	}
	bundled := Bundle(vs...)
	for i, v := range vs {
		if s := Similarity(bundled, v); s <= 0.55 {
			t.Errorf("bundle should stay similar to input %d, got %v", i, s)
		}
	}
}

func TestBundleDeterministicTiebreak(t *testing.T) {
	vs := []Vector{Random(testDims, 20), Random(testDims, 21)}
	a := Bundle(vs...)
	b := Bundle(vs...)
	if !a.Equal(b) {
		t.Error("bundling the same inputs twice must be identical")
	}
}

// The classic role-filler probe: bundle three bound pairs, unbind one
// role, and check the filler is still recoverable above the noise floor.
func TestRoleFillerRecoverability(t *testing.T) {
	roleSubj := Random(testDims, 100)
	rolePred := Random(testDims, 101)
	roleObj := Random(testDims, 102)

	subj := HashLabel(testDims, "socrates")
	pred := HashLabel(testDims, "is-a")
	obj := HashLabel(testDims, "philosopher")

	record := Bundle(
		Bind(roleSubj, subj),
		Bind(rolePred, pred),
		Bind(roleObj, obj),
	)

	probe := Bind(record, roleSubj)
	if s := Similarity(probe, subj); s <= 0.55 {
		t.Errorf("unbound subject similarity %v, want > 0.55", s)
	}
	if s := Similarity(probe, obj); s > 0.6 {
		t.Errorf("unbound subject should not resemble the object, got %v", s)
	}
}

func TestSimilarityBounds(t *testing.T) {
	a := Random(testDims, 5)
	if s := Similarity(a, a); s != 1.0 {
		t.Errorf("self-similarity must be 1.0, got %v", s)
	}

	inv := a.Clone()
	for i := range inv.data {
		inv.data[i] = ^inv.data[i]
	}
	if s := Similarity(a, inv); s != 0.0 {
		t.Errorf("complement similarity must be 0.0, got %v", s)
	}
}

func TestPermutePreservesWeightAndInverts(t *testing.T) {
	v := Random(testDims, 33)
	p := Permute(v, 1)
	if p.PopCount() != v.PopCount() {
		t.Error("permutation must preserve bit count")
	}
	if p.Equal(v) {
		t.Error("non-zero rotation should change the vector")
	}
	back := Permute(p, -1)
	if !back.Equal(v) {
		t.Error("rotating back must restore the original")
	}
}

func TestBytesRoundTrip(t *testing.T) {
	v := Random(testDims, 77)
	b := v.Bytes()
	if len(b) != testDims/8 {
		t.Fatalf("expected %d bytes, got %d", testDims/8, len(b))
	}
	back, err := FromBytes(testDims, b)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if !back.Equal(v) {
		t.Error("serialization round-trip must be exact")
	}

	if _, err := FromBytes(testDims, b[:8]); err == nil {
		t.Error("short buffer must be rejected")
	}
}

func TestHammingMatchesSimilarity(t *testing.T) {
	a := Random(testDims, 3)
	b := Random(testDims, 4)
	h := Hamming(a, b)
	want := 1.0 - float64(h)/float64(testDims)
	if got := Similarity(a, b); math.Abs(got-want) > 1e-12 {
		t.Errorf("similarity %v inconsistent with hamming %d", got, h)
	}
}

func TestNewPanicsOnBadDims(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-multiple-of-64 dims")
		}
	}()
	New(100)
}

package interlingua

import (
	"hash/fnv"
	"strings"

	"github.com/Toasterson/akh-medu-sub001/internal/knowledge"
	"github.com/Toasterson/akh-medu-sub001/internal/vsa"
)

// VectorSource supplies hypervectors for grounded symbols. It is
// satisfied by the item memory index.
type VectorSource interface {
	Dims() int
	GetOrCreate(sym knowledge.SymbolID) (vsa.Vector, error)
}

// RoleID derives the stable symbol id for a structural role. Role ids
// live in the derived half of the symbol space so they can never collide
// with interned graph symbols.
func RoleID(name string) knowledge.SymbolID {
	h := fnv.New64a()
	h.Write([]byte(name))
	return knowledge.SymbolID(knowledge.DerivedBit | h.Sum64())
}

// Structural role symbols used by the role-filler encoding. Two trees
// that share fillers under the same roles land near each other in
// hamming space.
var (
	RoleSubject   = RoleID("role:subject")
	RolePredicate = RoleID("role:predicate")
	RoleObject    = RoleID("role:object")
	RoleEntity    = RoleID("role:entity")
	RoleSimilarTo = RoleID("role:similar-to")
	RoleHeading   = RoleID("role:heading")
	RoleQuestion  = RoleID("role:question")
	RolePremise   = RoleID("role:premise")
	RoleAspect    = RoleID("role:aspect")
)

const opEncode = "interlingua.Encode"

// Encode folds the tree into a single hypervector by binding each child
// to its structural role and bundling the results. Grounded leaves take
// their vector from src; ungrounded leaves fall back to a label hash so
// encoding never fails on missing symbols. Modifier wrappers are
// transparent. Empty conjunctions and data flows cannot be encoded.
func Encode(t *Tree, src VectorSource) (vsa.Vector, error) {
	if t == nil {
		return vsa.Vector{}, NewError(VsaError, opEncode, "nil tree")
	}
	if src == nil {
		return vsa.Vector{}, NewError(VsaError, opEncode, "nil vector source")
	}
	e := &encoder{src: src, dims: src.Dims()}
	return e.encode(t)
}

type encoder struct {
	src  VectorSource
	dims int
}

func (e *encoder) encode(t *Tree) (vsa.Vector, error) {
	switch t.Kind {
	case KindEntity, KindRelation:
		return e.leaf(t)
	case KindFreeform:
		return vsa.HashLabel(e.dims, strings.ToLower(t.Label)), nil

	case KindTriple:
		return e.bundleRoles(
			rolePair{RoleSubject, t.Subject},
			rolePair{RolePredicate, t.Predicate},
			rolePair{RoleObject, t.Object},
		)
	case KindSimilarity:
		return e.bundleRoles(
			rolePair{RoleEntity, t.Entity},
			rolePair{RoleSimilarTo, t.Other},
		)
	case KindGap:
		topic, err := e.encode(t.Topic)
		if err != nil {
			return vsa.Vector{}, err
		}
		parts := []vsa.Vector{vsa.Bind(e.role(RoleEntity), topic)}
		if t.Question != "" {
			q := vsa.HashLabel(e.dims, strings.ToLower(t.Question))
			parts = append(parts, vsa.Bind(e.role(RoleQuestion), q))
		}
		return vsa.Bundle(parts...), nil
	case KindInference:
		if len(t.Premises) == 0 || t.Conclusion == nil {
			return vsa.Vector{}, NewError(VsaError, opEncode, "inference missing premises or conclusion")
		}
		prem := make([]vsa.Vector, 0, len(t.Premises))
		for _, p := range t.Premises {
			v, err := e.encode(p)
			if err != nil {
				return vsa.Vector{}, err
			}
			prem = append(prem, v)
		}
		concl, err := e.encode(t.Conclusion)
		if err != nil {
			return vsa.Vector{}, err
		}
		return vsa.Bundle(
			vsa.Bind(e.role(RolePremise), vsa.Bundle(prem...)),
			vsa.Bind(e.role(RoleObject), concl),
		), nil

	case KindCodeFact:
		subj, err := e.encode(t.Subject)
		if err != nil {
			return vsa.Vector{}, err
		}
		parts := []vsa.Vector{
			vsa.Bind(e.role(RoleSubject), subj),
			vsa.Bind(e.role(RoleAspect), vsa.HashLabel(e.dims, strings.ToLower(t.Aspect))),
		}
		if t.Detail != nil {
			d, err := e.encode(t.Detail)
			if err != nil {
				return vsa.Vector{}, err
			}
			parts = append(parts, vsa.Bind(e.role(RoleObject), d))
		}
		return vsa.Bundle(parts...), nil
	case KindCodeSignature:
		return vsa.Bundle(
			vsa.Bind(e.role(RoleEntity), vsa.HashLabel(e.dims, strings.ToLower(t.Name))),
			vsa.Bind(e.role(RolePredicate), vsa.HashLabel(e.dims, string(t.ItemKind))),
		), nil
	case KindCodeModule:
		parts := []vsa.Vector{
			vsa.Bind(e.role(RoleHeading), vsa.HashLabel(e.dims, strings.ToLower(t.Name))),
		}
		for _, it := range t.Items {
			v, err := e.encode(it)
			if err != nil {
				return vsa.Vector{}, err
			}
			parts = append(parts, v)
		}
		return vsa.Bundle(parts...), nil
	case KindDataFlow:
		if len(t.Items) == 0 {
			return vsa.Vector{}, NewError(VsaError, opEncode, "empty data flow")
		}
		parts := make([]vsa.Vector, 0, len(t.Items))
		for i, st := range t.Items {
			v, err := e.encode(st)
			if err != nil {
				return vsa.Vector{}, err
			}
			parts = append(parts, vsa.Permute(v, i))
		}
		return vsa.Bundle(parts...), nil

	case KindConjunction:
		if len(t.Items) == 0 {
			return vsa.Vector{}, NewError(VsaError, opEncode, "empty conjunction")
		}
		parts := make([]vsa.Vector, 0, len(t.Items))
		for _, it := range t.Items {
			v, err := e.encode(it)
			if err != nil {
				return vsa.Vector{}, err
			}
			parts = append(parts, v)
		}
		return vsa.Bundle(parts...), nil
	case KindSection:
		parts := []vsa.Vector{}
		if t.Heading != "" {
			h := vsa.HashLabel(e.dims, strings.ToLower(t.Heading))
			parts = append(parts, vsa.Bind(e.role(RoleHeading), h))
		}
		for _, it := range t.Items {
			v, err := e.encode(it)
			if err != nil {
				return vsa.Vector{}, err
			}
			parts = append(parts, v)
		}
		if len(parts) == 0 {
			return vsa.Vector{}, NewError(VsaError, opEncode, "empty section")
		}
		return vsa.Bundle(parts...), nil
	case KindDocument:
		parts := []vsa.Vector{}
		if t.Overview != nil {
			v, err := e.encode(t.Overview)
			if err != nil {
				return vsa.Vector{}, err
			}
			parts = append(parts, v)
		}
		for _, it := range t.Items {
			v, err := e.encode(it)
			if err != nil {
				return vsa.Vector{}, err
			}
			parts = append(parts, v)
		}
		for _, g := range t.Gaps {
			v, err := e.encode(g)
			if err != nil {
				return vsa.Vector{}, err
			}
			parts = append(parts, v)
		}
		if len(parts) == 0 {
			return vsa.Vector{}, NewError(VsaError, opEncode, "empty document")
		}
		return vsa.Bundle(parts...), nil

	case KindWithConfidence, KindWithProvenance, KindDiscourseFrame:
		if t.Inner == nil {
			return vsa.Vector{}, NewError(VsaError, opEncode, "modifier without inner node")
		}
		return e.encode(t.Inner)
	}
	return vsa.Vector{}, Errorf(VsaError, opEncode, "unencodable node kind %q", t.Kind)
}

type rolePair struct {
	role knowledge.SymbolID
	node *Tree
}

func (e *encoder) bundleRoles(pairs ...rolePair) (vsa.Vector, error) {
	parts := make([]vsa.Vector, 0, len(pairs))
	for _, p := range pairs {
		if p.node == nil {
			return vsa.Vector{}, Errorf(VsaError, opEncode, "missing filler for role %d", p.role)
		}
		v, err := e.encode(p.node)
		if err != nil {
			return vsa.Vector{}, err
		}
		parts = append(parts, vsa.Bind(e.role(p.role), v))
	}
	return vsa.Bundle(parts...), nil
}

// role derives the fixed vector for a structural role. Role vectors are
// seeded by the role symbol, so every encoder agrees on them without
// touching item memory.
func (e *encoder) role(id knowledge.SymbolID) vsa.Vector {
	return vsa.Random(e.dims, uint64(id))
}

func (e *encoder) leaf(t *Tree) (vsa.Vector, error) {
	if t.Symbol != 0 {
		v, err := e.src.GetOrCreate(t.Symbol)
		if err != nil {
			return vsa.Vector{}, Wrap(VsaError, opEncode, "fetching vector for "+t.Label, err)
		}
		if v.Dims() != e.dims {
			return vsa.Vector{}, Errorf(VsaError, opEncode,
				"vector for %q has %d dims, want %d", t.Label, v.Dims(), e.dims)
		}
		return v, nil
	}
	return vsa.HashLabel(e.dims, strings.ToLower(t.Label)), nil
}

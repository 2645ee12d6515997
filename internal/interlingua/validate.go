package interlingua

import "fmt"

const opValidate = "interlingua.Validate"

// Validate walks the tree depth-first and returns the first category
// violation as a TypeMismatch error whose detail names the offending
// path. A nil error means every composite holds arguments of the
// categories it requires.
func Validate(t *Tree) error {
	if t == nil {
		return NewError(TypeMismatch, opValidate, "nil tree")
	}
	return validateNode(t, string(t.Kind))
}

func validateNode(t *Tree, path string) error {
	switch t.Kind {
	case KindEntity:
		if t.Label == "" {
			return NewError(TypeMismatch, opValidate, "at "+path+": entity with empty label")
		}
	case KindRelation:
		if t.Label == "" {
			return NewError(TypeMismatch, opValidate, "at "+path+": relation with empty label")
		}
	case KindFreeform:
		// Any text, including empty, is permitted.

	case KindTriple:
		if err := requireArg(t.Subject, path+".subject", CategoryEntity, CategoryFreeform); err != nil {
			return err
		}
		if err := requireCategory(t.Predicate, path+".predicate", CategoryRelation); err != nil {
			return err
		}
		if err := requireArg(t.Object, path+".object", CategoryEntity, CategoryFreeform); err != nil {
			return err
		}
	case KindSimilarity:
		if err := requireArg(t.Entity, path+".entity", CategoryEntity, CategoryFreeform); err != nil {
			return err
		}
		if err := requireArg(t.Other, path+".other", CategoryEntity, CategoryFreeform); err != nil {
			return err
		}
	case KindGap:
		if err := requireArg(t.Topic, path+".topic", CategoryEntity, CategoryFreeform); err != nil {
			return err
		}
	case KindInference:
		if len(t.Premises) == 0 {
			return NewError(TypeMismatch, opValidate, "at "+path+": inference without premises")
		}
		for i, p := range t.Premises {
			sub := fmt.Sprintf("%s.premises[%d]", path, i)
			if err := requireArg(p, sub, CategoryStatement, CategoryConjunction); err != nil {
				return err
			}
		}
		if err := requireArg(t.Conclusion, path+".conclusion", CategoryStatement, CategoryConjunction); err != nil {
			return err
		}
	case KindCodeFact:
		if err := requireArg(t.Subject, path+".subject", CategoryEntity, CategoryFreeform, CategoryCodeSignature); err != nil {
			return err
		}
		if t.Detail != nil {
			if err := requireArg(t.Detail, path+".detail", CategoryEntity, CategoryFreeform); err != nil {
				return err
			}
		}
	case KindCodeSignature:
		if t.Name == "" {
			return NewError(TypeMismatch, opValidate, "at "+path+": code signature without a name")
		}
	case KindCodeModule:
		for i, it := range t.Items {
			sub := fmt.Sprintf("%s.items[%d]", path, i)
			if err := requireArg(it, sub, CategoryCodeSignature, CategoryCodeFact); err != nil {
				return err
			}
		}
	case KindDataFlow:
		for i, st := range t.Items {
			sub := fmt.Sprintf("%s.stages[%d]", path, i)
			if err := requireArg(st, sub, CategoryEntity, CategoryFreeform); err != nil {
				return err
			}
		}
	case KindConjunction:
		for i, it := range t.Items {
			if it == nil {
				return NewError(TypeMismatch, opValidate, fmt.Sprintf("at %s.items[%d]: nil item", path, i))
			}
			if err := validateNode(it, fmt.Sprintf("%s.items[%d].%s", path, i, it.Kind)); err != nil {
				return err
			}
		}
	case KindSection:
		for i, it := range t.Items {
			if it == nil {
				return NewError(TypeMismatch, opValidate, fmt.Sprintf("at %s.items[%d]: nil item", path, i))
			}
			if err := validateNode(it, fmt.Sprintf("%s.items[%d].%s", path, i, it.Kind)); err != nil {
				return err
			}
		}
	case KindDocument:
		if t.Overview != nil {
			if err := validateNode(t.Overview, path+".overview."+string(t.Overview.Kind)); err != nil {
				return err
			}
		}
		for i, it := range t.Items {
			sub := fmt.Sprintf("%s.sections[%d]", path, i)
			if err := requireCategory(it, sub, CategorySection); err != nil {
				return err
			}
		}
		for i, g := range t.Gaps {
			sub := fmt.Sprintf("%s.gaps[%d]", path, i)
			if err := requireCategory(g, sub, CategoryGap); err != nil {
				return err
			}
		}
	case KindWithConfidence:
		if t.Inner == nil {
			return NewError(TypeMismatch, opValidate, "at "+path+": confidence wrapper without inner node")
		}
		if t.Confidence < 0 || t.Confidence > 1 {
			return NewError(TypeMismatch, opValidate,
				fmt.Sprintf("at %s: confidence %.3f outside [0,1]", path, t.Confidence))
		}
		return validateNode(t.Inner, path+"."+string(t.Inner.Kind))
	case KindWithProvenance:
		if t.Inner == nil {
			return NewError(TypeMismatch, opValidate, "at "+path+": provenance wrapper without inner node")
		}
		return validateNode(t.Inner, path+"."+string(t.Inner.Kind))
	case KindDiscourseFrame:
		if t.Inner == nil {
			return NewError(TypeMismatch, opValidate, "at "+path+": discourse frame without inner node")
		}
		return validateNode(t.Inner, path+"."+string(t.Inner.Kind))
	default:
		return NewError(TypeMismatch, opValidate, "at "+path+": unknown node kind "+string(t.Kind))
	}
	return nil
}

// requireArg checks the argument's structural category against the
// allowed set, then recurses so nested violations also surface.
func requireArg(arg *Tree, path string, allowed ...Category) error {
	if arg == nil {
		return NewError(TypeMismatch, opValidate, "at "+path+": missing node")
	}
	got := arg.StructuralCategory()
	for _, want := range allowed {
		if got == want {
			inner := arg.Unwrap()
			if inner == nil {
				return NewError(TypeMismatch, opValidate, "at "+path+": modifier without inner node")
			}
			return validateNode(arg, path)
		}
	}
	return NewTypeMismatch(opValidate, path, allowed[0], got)
}

func requireCategory(arg *Tree, path string, want Category) error {
	return requireArg(arg, path, want)
}

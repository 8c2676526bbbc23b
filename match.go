package shapely

import (
	"fmt"

	"github.com/shapely-lang/shapely/debug"
	"github.com/shapely-lang/shapely/ir"
	"github.com/shapely-lang/shapely/schema"
)

// Match walks a checked spec and a value together, resolving references
// against env, and reports the first mismatch as a Result whose cause
// records the traversal path. Mismatches are ordinary data; Match only
// panics on caller bugs (an Alt node without a choice maker).
func Match(env schema.CheckedEnv, spec *schema.Checked, doc *ir.Value) Result {
	if debug.Match() {
		debug.Logf("match %s against %s\n", spec, doc)
	}
	switch spec.Kind {
	case schema.AnythingNode:
		return Matched()
	case schema.NumberNode:
		return matchKind(spec, doc, ir.NumberKind)
	case schema.TextNode:
		return matchKind(spec, doc, ir.TextKind)
	case schema.BoolNode:
		return matchKind(spec, doc, ir.BoolKind)
	case schema.NullNode:
		return matchKind(spec, doc, ir.NullKind)
	case schema.ConstNumberNode:
		if r := matchKind(spec, doc, ir.NumberKind); !r.IsMatch() {
			return r
		}
		if doc.Num != spec.Num {
			return failAt(ConstMismatch, spec, doc)
		}
		return Matched()
	case schema.ConstTextNode:
		if r := matchKind(spec, doc, ir.TextKind); !r.IsMatch() {
			return r
		}
		if doc.Text != spec.Text {
			return failAt(ConstMismatch, spec, doc)
		}
		return Matched()
	case schema.ConstBoolNode:
		if r := matchKind(spec, doc, ir.BoolKind); !r.IsMatch() {
			return r
		}
		if doc.Bool != spec.Bool {
			return failAt(ConstMismatch, spec, doc)
		}
		return Matched()
	case schema.TupleNode:
		return matchTuple(env, spec, doc)
	case schema.ArrayNode:
		if doc.Kind != ir.ArrayKind {
			return failAt(TypeMismatch, spec, doc)
		}
		for i, elem := range doc.Values {
			if r := Match(env, spec.Elem, elem); !r.IsMatch() {
				return UnMatchedBecause(r.Cause().Under(ArrayElem(i)))
			}
		}
		return Matched()
	case schema.NamedTupleNode:
		return matchNamedTuple(env, spec, doc)
	case schema.TextMapNode:
		if doc.Kind != ir.ObjectKind {
			return failAt(TypeMismatch, spec, doc)
		}
		for i, key := range doc.Keys {
			if r := Match(env, spec.Elem, doc.Values[i]); !r.IsMatch() {
				return UnMatchedBecause(r.Cause().Under(TextMapElem(key)))
			}
		}
		return Matched()
	case schema.RefNode:
		def, ok := env[spec.Ref]
		if !ok {
			return failAt(UnknownRef, spec, doc)
		}
		if r := Match(env, def, doc); !r.IsMatch() {
			return UnMatchedBecause(r.Cause().Under(RefDef(spec.Ref)))
		}
		return Matched()
	case schema.RefinedNode:
		if r := Match(env, spec.Elem, doc); !r.IsMatch() {
			return UnMatchedBecause(r.Cause().Under(RefinedShape()))
		}
		if !spec.Pred(doc) {
			return failAt(PredicateFailed, spec, doc)
		}
		return Matched()
	case schema.AltNode:
		if spec.Choice == nil {
			panic("shapely: alternative without choice maker")
		}
		switch spec.Choice(doc) {
		case schema.PreferLeft:
			if r := Match(env, spec.Left, doc); !r.IsMatch() {
				return UnMatchedBecause(r.Cause().Under(AltLeft()))
			}
			return Matched()
		case schema.PreferRight:
			if r := Match(env, spec.Right, doc); !r.IsMatch() {
				return UnMatchedBecause(r.Cause().Under(AltRight()))
			}
			return Matched()
		default:
			return failAt(NoAlternative, spec, doc)
		}
	default:
		panic(fmt.Sprintf("shapely: match on unknown node kind %s", spec.Kind))
	}
}

func matchKind(spec *schema.Checked, doc *ir.Value, want ir.Kind) Result {
	if doc.Kind != want {
		return failAt(TypeMismatch, spec, doc)
	}
	return Matched()
}

func matchTuple(env schema.CheckedEnv, spec *schema.Checked, doc *ir.Value) Result {
	if doc.Kind != ir.ArrayKind {
		return failAt(TypeMismatch, spec, doc)
	}
	if len(doc.Values) < len(spec.Fields) {
		return failAt(LengthMismatch, spec, doc)
	}
	if spec.Strictness == schema.Strict && len(doc.Values) > len(spec.Fields) {
		return failAt(LengthMismatch, spec, doc)
	}
	for i, f := range spec.Fields {
		if r := Match(env, f, doc.Values[i]); !r.IsMatch() {
			return UnMatchedBecause(r.Cause().Under(TupleField(i)))
		}
	}
	return Matched()
}

func matchNamedTuple(env schema.CheckedEnv, spec *schema.Checked, doc *ir.Value) Result {
	if doc.Kind != ir.ObjectKind {
		return failAt(TypeMismatch, spec, doc)
	}
	for i, name := range spec.FieldNames {
		field := spec.Fields[i]
		val, ok := doc.Lookup(name)
		if !ok {
			// an absent key satisfies a nullable field
			if shape, err := schema.DeriveCheckedShape(env, field); err == nil && schema.MatchNull(shape) {
				continue
			}
			return failAt(MissingField, spec, doc)
		}
		if r := Match(env, field, val); !r.IsMatch() {
			return UnMatchedBecause(r.Cause().Under(NamedTupleField(name)))
		}
	}
	if spec.Strictness == schema.Strict {
		declared := make(map[string]bool, len(spec.FieldNames))
		for _, name := range spec.FieldNames {
			declared[name] = true
		}
		for _, key := range doc.Keys {
			if !declared[key] {
				return failAt(ExtraField, spec, doc)
			}
		}
	}
	return Matched()
}

func failAt(reason Reason, spec *schema.Checked, doc *ir.Value) Result {
	if debug.Match() {
		debug.Logf("match: %s at %s / %s\n", reason, spec, doc)
	}
	return UnMatchedBecause(NewCause(reason, spec, doc))
}

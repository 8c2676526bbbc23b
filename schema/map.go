package schema

// This file holds the generic one-level traversal operations the phase
// transformations are built from. All three agree on child order: tuple
// and named-tuple fields left to right, then the single Elem slot of
// arrays, maps and refinements, then Left before Right for alternatives.

// MapNode rebuilds n one level deep, mapping its four slots independently:
// refFn the reference name, predFn the predicate, choiceFn the
// disambiguation payload, childFn each recursive child. It never recurses
// on its own; childFn decides whether and how to descend, which lets
// phase-to-phase transformations be written as one bottom-up fold.
func MapNode[R1, P1, C1, R2, P2, C2 any](
	n *Node[R1, P1, C1],
	refFn func(R1) R2,
	predFn func(P1) P2,
	choiceFn func(C1) C2,
	childFn func(*Node[R1, P1, C1]) *Node[R2, P2, C2],
) *Node[R2, P2, C2] {
	res := &Node[R2, P2, C2]{
		Kind:       n.Kind,
		Strictness: n.Strictness,
		Num:        n.Num,
		Text:       n.Text,
		Bool:       n.Bool,
	}
	if n.FieldNames != nil {
		res.FieldNames = make([]string, len(n.FieldNames))
		copy(res.FieldNames, n.FieldNames)
	}
	if n.Fields != nil {
		res.Fields = make([]*Node[R2, P2, C2], len(n.Fields))
		for i, f := range n.Fields {
			res.Fields[i] = childFn(f)
		}
	}
	if n.Elem != nil {
		res.Elem = childFn(n.Elem)
	}
	if n.Left != nil {
		res.Left = childFn(n.Left)
	}
	if n.Right != nil {
		res.Right = childFn(n.Right)
	}
	switch n.Kind {
	case RefNode:
		res.Ref = refFn(n.Ref)
	case RefinedNode:
		res.Pred = predFn(n.Pred)
	case AltNode:
		res.Choice = choiceFn(n.Choice)
	}
	return res
}

// FoldChildren folds f over n's recursive children in traversal order,
// threading the accumulator. It does not recurse below one level.
func FoldChildren[R, P, C, A any](
	n *Node[R, P, C],
	acc A,
	f func(A, *Node[R, P, C]) A,
) A {
	for _, child := range n.Fields {
		acc = f(acc, child)
	}
	if n.Elem != nil {
		acc = f(acc, n.Elem)
	}
	if n.Left != nil {
		acc = f(acc, n.Left)
	}
	if n.Right != nil {
		acc = f(acc, n.Right)
	}
	return acc
}

// MapChildren rebuilds n with each recursive child replaced by f(child),
// visiting children in traversal order and stopping at the first error.
// The axis slots carry over unchanged.
func MapChildren[R, P, C any](
	n *Node[R, P, C],
	f func(*Node[R, P, C]) (*Node[R, P, C], error),
) (*Node[R, P, C], error) {
	res := &Node[R, P, C]{
		Kind:       n.Kind,
		Strictness: n.Strictness,
		Num:        n.Num,
		Text:       n.Text,
		Bool:       n.Bool,
		Ref:        n.Ref,
		Pred:       n.Pred,
		Choice:     n.Choice,
	}
	var err error
	if n.FieldNames != nil {
		res.FieldNames = make([]string, len(n.FieldNames))
		copy(res.FieldNames, n.FieldNames)
	}
	if n.Fields != nil {
		res.Fields = make([]*Node[R, P, C], len(n.Fields))
		for i, child := range n.Fields {
			if res.Fields[i], err = f(child); err != nil {
				return nil, err
			}
		}
	}
	if n.Elem != nil {
		if res.Elem, err = f(n.Elem); err != nil {
			return nil, err
		}
	}
	if n.Left != nil {
		if res.Left, err = f(n.Left); err != nil {
			return nil, err
		}
	}
	if n.Right != nil {
		if res.Right, err = f(n.Right); err != nil {
			return nil, err
		}
	}
	return res, nil
}

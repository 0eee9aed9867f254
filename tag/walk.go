package tag

// VisitFunc is called once per tag during a walk. depth is 0 for the root
// and increases by one for each level of List/Compound nesting. Returning
// a non-nil error aborts the walk and propagates to the Walk caller.
type VisitFunc func(t Tag, depth int) error

// Walk traverses the tree rooted at t in pre-order: each container is
// visited before its children, and children are visited in stored order.
//
// Walk does not visit the wire terminator of compounds (it is not part of
// the decoded tree). The traversal allocates nothing and mutates nothing;
// it is safe to run concurrently on the same tree.
func Walk(t Tag, fn VisitFunc) error {
	return walk(t, 0, fn)
}

func walk(t Tag, depth int, fn VisitFunc) error {
	if err := fn(t, depth); err != nil {
		return err
	}

	switch v := t.(type) {
	case List:
		for _, c := range v.Items {
			if err := walk(c, depth+1, fn); err != nil {
				return err
			}
		}
	case Compound:
		for _, c := range v.Items {
			if err := walk(c, depth+1, fn); err != nil {
				return err
			}
		}
	}

	return nil
}

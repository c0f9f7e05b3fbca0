package lcsdiff

// ops converts the LCS into a sequence of DiffOp. Each gap between two
// matched pairs becomes a Delete followed by an Insert; matched pairs
// become Equal operations, merged with their neighbors.
func (l *LCS) ops() []DiffOp {
	var ops []DiffOp
	for k := 1; k <= l.Len()+1; k++ {
		// positions are 1-based; DiffOp indices are 0-based
		i0, j0 := l.a[k-1], l.b[k-1]
		i1, j1 := l.a[k]-1, l.b[k]-1

		if i1 > i0 {
			ops = append(ops, DiffOp{
				Type:   Delete,
				AStart: i0,
				AEnd:   i1,
				BStart: j0,
				BEnd:   j0,
			})
		}
		if j1 > j0 {
			ops = append(ops, DiffOp{
				Type:   Insert,
				AStart: i1,
				AEnd:   i1,
				BStart: j0,
				BEnd:   j1,
			})
		}
		if k <= l.Len() {
			ops = append(ops, DiffOp{
				Type:   Equal,
				AStart: i1,
				AEnd:   i1 + 1,
				BStart: j1,
				BEnd:   j1 + 1,
			})
		}
	}
	return mergeAdjacentOps(ops)
}

// mergeAdjacentOps merges consecutive operations of the same type.
func mergeAdjacentOps(ops []DiffOp) []DiffOp {
	if len(ops) <= 1 {
		return ops
	}

	result := make([]DiffOp, 0, len(ops))
	current := ops[0]

	for i := 1; i < len(ops); i++ {
		op := ops[i]

		// Check if we can merge
		canMerge := current.Type == op.Type &&
			current.AEnd == op.AStart &&
			current.BEnd == op.BStart

		if canMerge {
			// Extend current operation
			current.AEnd = op.AEnd
			current.BEnd = op.BEnd
		} else {
			result = append(result, current)
			current = op
		}
	}

	result = append(result, current)
	return result
}

package splay

// Direction is which child arm a descent step took.
type Direction int

const (
	Left Direction = iota
	Right
)

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == Left {
		return Right
	}
	return Left
}

// DirectionFromBit maps a descent bit to a direction: 0=left, 1=right.
func DirectionFromBit(bit bool) Direction {
	if bit {
		return Right
	}
	return Left
}

// Bit returns the descent bit for this direction.
func (d Direction) Bit() bool { return d == Right }

// frame records one step of a descent: the internal node left behind,
// and the direction taken from it.
type frame struct {
	id  int
	dir Direction
}

// Walker is a cursor borrowed against an Arena. It tracks the current
// node and the ancestor stack accumulated during the current descent.
type Walker struct {
	arena *Arena
	cur   ref
	stack []frame
}

// CurrentValue returns the integer id of the current node, whether it
// is an internal id or a leaf symbol.
func (w *Walker) CurrentValue() int {
	if id, ok := w.cur.asInternal(); ok {
		return id
	}
	sym, _ := w.cur.asLeaf()
	return sym
}

// IsRoot reports whether the ancestor stack is empty.
func (w *Walker) IsRoot() bool { return len(w.stack) == 0 }

// IsLeaf reports whether the current node reference is a leaf.
func (w *Walker) IsLeaf() bool { return w.cur.isLeaf() }

// Go descends one step in direction dir. The current node must be
// internal.
func (w *Walker) Go(dir Direction) {
	id, ok := w.cur.asInternal()
	if !ok {
		panic("splay: Go requires the current node to be internal")
	}
	w.stack = append(w.stack, frame{id: id, dir: dir})
	w.cur = w.arena.node(id).arm(dir)
}

// SplayParentOfLeaf pops the leaf's parent off the ancestor stack and
// splays it to the root. The current node must be a leaf; afterwards
// the walker is back at the (new) root with an empty ancestor stack.
func (w *Walker) SplayParentOfLeaf() {
	if !w.cur.isLeaf() {
		panic("splay: SplayParentOfLeaf requires the current node to be a leaf")
	}
	if len(w.stack) == 0 {
		panic("splay: SplayParentOfLeaf requires a parent on the ancestor stack")
	}
	top := len(w.stack) - 1
	n := w.stack[top].id
	w.stack = w.stack[:top]
	w.cur = internalRef(n)
	w.promoteToRoot()
}

// promoteToRoot runs the bottom-up splay restructuring that pulls the
// current internal node to the root, consuming the remaining ancestor
// stack. It assumes the current node is already the node to promote;
// SplayParentOfLeaf arranges that by popping the leaf's parent first.
func (w *Walker) promoteToRoot() {
	n, ok := w.cur.asInternal()
	if !ok {
		panic("splay: promoteToRoot requires the current node to be internal")
	}

	for len(w.stack) >= 2 {
		top := len(w.stack) - 1
		pFrame := w.stack[top]   // parent of n, and the direction taken from it to reach n
		gFrame := w.stack[top-1] // grandparent of n, and the direction taken from it to reach the parent
		p, dirPtoN := pFrame.id, pFrame.dir
		g, dirGtoP := gFrame.id, gFrame.dir

		if len(w.stack) > 2 {
			ggg := w.stack[top-2]
			w.arena.node(ggg.id).setArm(ggg.dir, internalRef(n))
		} else {
			w.arena.root = n
		}

		pNode := w.arena.node(p)
		gNode := w.arena.node(g)
		nNode := w.arena.node(n)

		if dirPtoN == dirGtoP {
			// zig-zig: G and P lean the same way.
			d := dirPtoN
			od := d.Opposite()
			b := pNode.arm(od)
			c := nNode.arm(od)
			pNode.setArm(od, internalRef(g))
			gNode.setArm(d, b)
			nNode.setArm(od, internalRef(p))
			pNode.setArm(d, c)
		} else {
			// zig-zag: P and N lean opposite ways.
			b := nNode.arm(dirPtoN)
			c := nNode.arm(dirGtoP)
			nNode.setArm(dirPtoN, internalRef(g))
			gNode.setArm(dirGtoP, b)
			nNode.setArm(dirGtoP, internalRef(p))
			pNode.setArm(dirPtoN, c)
		}

		w.stack = w.stack[:top-1]
	}

	if len(w.stack) == 1 {
		fr := w.stack[0]
		p, dirPtoN := fr.id, fr.dir
		od := dirPtoN.Opposite()
		nNode := w.arena.node(n)
		pNode := w.arena.node(p)
		b := nNode.arm(od)
		w.arena.root = n
		nNode.setArm(od, internalRef(p))
		pNode.setArm(dirPtoN, b)
		w.stack = nil
	} else {
		w.arena.root = n
	}
	w.cur = internalRef(n)
}

// FindDeepInternal returns an internal id reachable from the root by at
// least k purely-internal descents. The walker must be at the root on
// an internal node, and k is guaranteed by the caller to be small
// enough (<=7) that some internal-only path of that length always
// exists.
func (w *Walker) FindDeepInternal(k int) int {
	if len(w.stack) != 0 {
		panic("splay: FindDeepInternal requires the walker to be at the root")
	}
	id, ok := w.cur.asInternal()
	if !ok {
		panic("splay: FindDeepInternal requires the current node to be internal")
	}

	candidates := []int{id}
	for round := 0; round < k; round++ {
		var next []int
		for _, cid := range candidates {
			n := w.arena.node(cid)
			if lid, ok := n.left.asInternal(); ok {
				next = append(next, lid)
			}
			if rid, ok := n.right.asInternal(); ok {
				next = append(next, rid)
			}
		}
		if len(next) == 0 {
			panic("splay: FindDeepInternal exhausted internal candidates before reaching the requested depth")
		}
		candidates = next
	}
	return candidates[0]
}

// IsConsistent delegates to the underlying arena's consistency check.
func (w *Walker) IsConsistent() bool { return w.arena.IsConsistent() }

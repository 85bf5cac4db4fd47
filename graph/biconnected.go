package graph

// BiconnectedComponents computes the graph's biconnected component
// decomposition as an arc -> component-id function (both directions of an
// edge always land in the same component): the classic Hopcroft-Tarjan
// edge-stack algorithm, reimplemented as an explicit-stack iterative DFS
// per spec.md §4.B's four event kinds:
//
//   - first-visit-root / last-visit-root: the outer loop entering and
//     leaving a DFS tree root.
//   - tree-down: pushing a new frame when an out-arc leads to an unvisited
//     node.
//   - tree-up: popping a finished frame and checking whether its low-reach
//     depth cleared the parent's depth (an articulation point boundary).
//   - non-tree: a back-arc to an already-visited ancestor, pushed onto the
//     arc stack without recursing.
//
// On tree-up, when low(child) >= depth(parent), a new biconnected
// component is emitted by popping the arc stack down to and including the
// tree arc (parent, child).
//
// Requires a symmetric, simple graph (panics otherwise — this is a
// contract violation, not a caller-input error, since BiconnectedComponents
// is always invoked downstream of MakeSimple). Requires sorted-by-tail
// arcs to iterate out-arcs in O(1) per arc; a graph that isn't yet sorted
// is transparently re-sorted via MakeSimple.
//
// Complexity: O(n+m) time, O(n+m) auxiliary space for the arc stack.
func BiconnectedComponents(g *Graph) (arcComponent []int32, count int) {
	outArc, err := g.OutArcs()
	if err != nil {
		return BiconnectedComponents(MakeSimple(g))
	}
	back, err := g.BackArc()
	if err != nil {
		panic("graph: BiconnectedComponents requires a symmetric graph")
	}

	n := g.NodeCount()
	depth := make([]int32, n)
	low := make([]int32, n)
	for i := range depth {
		depth[i] = -1
	}

	arcComponent = make([]int32, g.ArcCount())
	for i := range arcComponent {
		arcComponent[i] = -1
	}
	nextComponent := int32(0)

	var arcStack []int32

	emit := func(downToArc int32) {
		id := nextComponent
		nextComponent++
		for {
			a := arcStack[len(arcStack)-1]
			arcStack = arcStack[:len(arcStack)-1]
			arcComponent[a] = id
			arcComponent[back[a]] = id
			if a == downToArc {
				break
			}
		}
	}

	type frame struct {
		node      int32
		parentArc int32 // arc (node -> parent); -1 for a DFS root
		cur, end  int32
	}

	var work []frame
	for root := 0; root < n; root++ { // first-visit-root
		if depth[root] != -1 {
			continue
		}
		depth[root] = 0
		low[root] = 0
		b, e := outArc.Range(int32(root))
		work = append(work[:0], frame{node: int32(root), parentArc: -1, cur: b, end: e})

		for len(work) > 0 {
			top := &work[len(work)-1]
			if top.cur < top.end {
				a := top.cur
				top.cur++
				if a == top.parentArc {
					continue // the unique simple-graph arc back to our parent
				}
				y := g.head[a]
				if depth[y] == -1 { // tree-down
					arcStack = append(arcStack, a)
					depth[y] = depth[top.node] + 1
					low[y] = depth[y]
					yb, ye := outArc.Range(y)
					work = append(work, frame{node: y, parentArc: back[a], cur: yb, end: ye})
				} else if depth[y] < depth[top.node] { // non-tree (back arc to an ancestor)
					arcStack = append(arcStack, a)
					if depth[y] < low[top.node] {
						low[top.node] = depth[y]
					}
				}
				continue
			}
			// tree-up / last-visit-root: frame exhausted, pop it.
			v := top.node
			parentArc := top.parentArc
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := &work[len(work)-1]
				if low[v] >= depth[parent.node] {
					emit(parentArc)
				}
				if low[v] < low[parent.node] {
					low[parent.node] = low[v]
				}
			}
		}
	}
	return arcComponent, int(nextComponent)
}

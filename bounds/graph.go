// Copyright 2026 The Ranktau Authors
// This file is part of Ranktau.
//
// Ranktau is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ranktau is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Ranktau. If not, see <http://www.gnu.org/licenses/>.

package bounds

import (
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/ranktau/ranktau/kendall"
	"github.com/ranktau/ranktau/ranking"
)

// pairDir classifies how a single pair of items is ordered within one
// partial order: forced one way, forced the other, or free because the
// pair sits in the same tie group.
type pairDir int

const (
	dirForward pairDir = iota
	dirBackward
	dirFree
)

func groupIndex(p ranking.PartialOrder) map[ranking.Element]int {
	out := make(map[ranking.Element]int, p.SetSize())
	for gi, g := range p {
		for _, e := range g {
			out[e] = gi
		}
	}
	return out
}

func pairDirection(gidx map[ranking.Element]int, x, y ranking.Element) pairDir {
	switch {
	case gidx[x] == gidx[y]:
		return dirFree
	case gidx[x] < gidx[y]:
		return dirForward
	default:
		return dirBackward
	}
}

// GraphSolve computes approximate tau bounds in polynomial time. Per ranking
// it builds a dense order graph encoding every pairwise constraint the
// ranking imposes (and, for tied pairs, the fact that either direction is
// permitted), then greedily resolves one ranking's ties against the other
// ranking's own edge order, weight-sorted, to produce a witness strict-order
// pair for each of the minimising and maximising direction.
func GraphSolve(a, b ranking.PartialOrder, w kendall.Weight, v kendall.Variant) (TauBounds, error) {
	if err := a.EnsureConjoint(b); err != nil {
		return TauBounds{}, err
	}
	if a.SetSize() < 2 {
		return TauBounds{}, ErrTooShort
	}

	if sa, errA := ranking.StrictFromPartial(a); errA == nil {
		if sb, errB := ranking.StrictFromPartial(b); errB == nil {
			tau, err := kendall.TauStrict(sa, sb, w, v)
			if err != nil {
				return TauBounds{}, err
			}
			return TauBounds{Min: Bound{Tau: tau, Witness: sa}, Max: Bound{Tau: tau, Witness: sa}}, nil
		}
	}

	items := sortedItems(a.ItemSet())
	idx := make(map[ranking.Element]int, len(items))
	for i, e := range items {
		idx[e] = i
	}

	gA := buildDenseGraph(a, items, idx)
	gB := buildDenseGraph(b, items, idx)
	edgesA := collectEdges(gA)
	edgesB := collectEdges(gB)

	posA := kendall.AverageRankPositions(a)
	posB := kendall.AverageRankPositions(b)
	pos := func(e ranking.Element) kendall.Position {
		return kendall.Position{A: posA[e], B: posB[e]}
	}

	buildPair := func(maximizing bool) (ranking.StrictOrder, ranking.StrictOrder, error) {
		sortedB := sortEdgesByWeight(edgesB, items, pos, w, maximizing)
		sortedA := sortEdgesByWeight(edgesA, items, pos, w, maximizing)

		targetA := newEmptyDirected(len(items))
		fillTarget(targetA, sortedB, gA, maximizing)
		targetB := newEmptyDirected(len(items))
		fillTarget(targetB, sortedA, gB, maximizing)

		orderA, err := extractStrictOrder(targetA, items)
		if err != nil {
			return nil, nil, err
		}
		orderB, err := extractStrictOrder(targetB, items)
		if err != nil {
			return nil, nil, err
		}
		return orderA, orderB, nil
	}

	maxA, maxB, err := buildPair(true)
	if err != nil {
		return TauBounds{}, err
	}
	minA, minB, err := buildPair(false)
	if err != nil {
		return TauBounds{}, err
	}

	maxTau, err := kendall.TauStrict(maxA, maxB, w, v)
	if err != nil {
		return TauBounds{}, err
	}
	minTau, err := kendall.TauStrict(minA, minB, w, v)
	if err != nil {
		return TauBounds{}, err
	}

	return TauBounds{
		Min: Bound{Tau: minTau, Witness: minA},
		Max: Bound{Tau: maxTau, Witness: maxA},
	}, nil
}

func sortedItems(set map[ranking.Element]struct{}) []ranking.Element {
	out := make([]ranking.Element, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// buildDenseGraph constructs p's dense order graph (G_A or G_B per §4.5 step
// 1): a single edge x->y for every pair in distinct groups with x ranked
// above y, and edges in both directions for every pair sharing a tie group.
func buildDenseGraph(p ranking.PartialOrder, items []ranking.Element, idx map[ranking.Element]int) *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	for i := range items {
		g.AddNode(simple.Node(i))
	}
	gidx := groupIndex(p)
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			x, y := items[i], items[j]
			switch pairDirection(gidx, x, y) {
			case dirForward:
				addEdge(g, idx[x], idx[y])
			case dirBackward:
				addEdge(g, idx[y], idx[x])
			case dirFree:
				addEdge(g, idx[x], idx[y])
				addEdge(g, idx[y], idx[x])
			}
		}
	}
	return g
}

func addEdge(g *simple.DirectedGraph, u, v int) {
	g.SetEdge(g.NewEdge(simple.Node(u), simple.Node(v)))
}

func newEmptyDirected(n int) *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	return g
}

// edgeRef is one directed edge of a dense order graph, by node index.
type edgeRef struct {
	U, V int
}

func collectEdges(g *simple.DirectedGraph) []edgeRef {
	var out []edgeRef
	it := g.Edges()
	for it.Next() {
		e := it.Edge()
		out = append(out, edgeRef{U: int(e.From().ID()), V: int(e.To().ID())})
	}
	return out
}

// sortEdgesByWeight orders edges by w(pos(src), pos(dst)) ascending, as
// §4.5's "Edge ordering for iteration" requires; ties break lexicographically
// by (src, dst) when maximising and by (dst, src) when minimising.
func sortEdgesByWeight(edges []edgeRef, items []ranking.Element, pos func(ranking.Element) kendall.Position, w kendall.Weight, maximizing bool) []edgeRef {
	out := make([]edgeRef, len(edges))
	copy(out, edges)
	sort.Slice(out, func(i, j int) bool {
		ei, ej := out[i], out[j]
		wi := w(pos(items[ei.U]), pos(items[ei.V]))
		wj := w(pos(items[ej.U]), pos(items[ej.V]))
		if wi != wj {
			return wi < wj
		}
		var firstI, secondI, firstJ, secondJ ranking.Element
		if maximizing {
			firstI, secondI = items[ei.U], items[ei.V]
			firstJ, secondJ = items[ej.U], items[ej.V]
		} else {
			firstI, secondI = items[ei.V], items[ei.U]
			firstJ, secondJ = items[ej.V], items[ej.U]
		}
		if firstI != firstJ {
			return firstI < firstJ
		}
		return secondI < secondJ
	})
	return out
}

// fillTarget fills target from sourceEdges (G_B's edges when building G_A′,
// or G_A's when building G_B′), per §4.5 steps 3-4: for each source edge
// u->v, attempt u->v into target when maximising (agreement) or v->u when
// minimising (disagreement); if that direction isn't permitted by
// permission, fall back to the direction permission does allow. Insertions
// that would create a cycle are silently rejected.
func fillTarget(target *simple.DirectedGraph, sourceEdges []edgeRef, permission *simple.DirectedGraph, maximizing bool) {
	for _, e := range sourceEdges {
		tu, tv := e.U, e.V
		if !maximizing {
			tu, tv = e.V, e.U
		}
		if !permission.HasEdgeFromTo(int64(tu), int64(tv)) {
			tu, tv = tv, tu
		}
		insertIfAcyclic(target, tu, tv)
	}
}

// insertIfAcyclic adds the edge u->v to g unless v already reaches u, which
// would close a cycle; in that case the insertion is silently rejected.
func insertIfAcyclic(g *simple.DirectedGraph, u, v int) {
	if reachable(g, int64(v), int64(u)) {
		return
	}
	g.SetEdge(g.NewEdge(simple.Node(u), simple.Node(v)))
}

// reachable reports whether to is reachable from from within g via a
// plain depth-first search.
func reachable(g graph.Directed, from, to int64) bool {
	if from == to {
		return true
	}
	visited := map[int64]bool{from: true}
	stack := []int64{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		it := g.From(cur)
		for it.Next() {
			n := it.Node().ID()
			if n == to {
				return true
			}
			if !visited[n] {
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	return false
}

// extractStrictOrder topologically sorts g's tournament into the unique
// strict total order it encodes, mapping node indices back to items.
func extractStrictOrder(g graph.Directed, items []ranking.Element) (ranking.StrictOrder, error) {
	sorted, err := topo.Sort(g)
	if err != nil {
		return nil, errors.Wrap(ErrInvariantViolation, "resolved order graph contains a cycle")
	}
	out := make(ranking.StrictOrder, len(sorted))
	for i, n := range sorted {
		out[i] = items[n.ID()]
	}
	return out, nil
}

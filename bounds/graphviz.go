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
	"bytes"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-graphviz"
	gvgraph "github.com/goccy/go-graphviz/cgraph"

	"github.com/ranktau/ranktau/ranking"
)

// DumpOrderGraph renders p's dense order graph (every pair, both
// directions for ties) as a Graphviz dot document, for the --debug dry-run
// this package's CLIs support in place of the Rust original's
// debug_assertions-gated dump.
func DumpOrderGraph(p ranking.PartialOrder, m *ranking.TokenMap) ([]byte, error) {
	gv := graphviz.New()
	defer gv.Close()

	graphHandle, err := gv.Graph()
	if err != nil {
		return nil, errors.Wrap(err, "bounds: create graphviz graph")
	}
	defer graphHandle.Close()

	nodes := make(map[ranking.Element]*gvgraph.Node, p.SetSize())
	for e := range p.ItemSet() {
		n, err := graphHandle.CreateNode(m.Token(e))
		if err != nil {
			return nil, errors.Wrapf(err, "bounds: create node for %v", e)
		}
		nodes[e] = n
	}

	gidx := groupIndex(p)
	items := sortedItems(p.ItemSet())
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			x, y := items[i], items[j]
			switch pairDirection(gidx, x, y) {
			case dirForward:
				if _, err := graphHandle.CreateEdge(edgeName(x, y), nodes[x], nodes[y]); err != nil {
					return nil, err
				}
			case dirBackward:
				if _, err := graphHandle.CreateEdge(edgeName(y, x), nodes[y], nodes[x]); err != nil {
					return nil, err
				}
			case dirFree:
				if _, err := graphHandle.CreateEdge(edgeName(x, y), nodes[x], nodes[y]); err != nil {
					return nil, err
				}
				if _, err := graphHandle.CreateEdge(edgeName(y, x), nodes[y], nodes[x]); err != nil {
					return nil, err
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(graphHandle, graphviz.XDOT, &buf); err != nil {
		return nil, errors.Wrap(err, "bounds: render graphviz dot")
	}
	return buf.Bytes(), nil
}

func edgeName(x, y ranking.Element) string {
	return fmt.Sprintf("%v->%v", x, y)
}

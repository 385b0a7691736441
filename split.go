// seehuhn.de/go/spanops - run-length encoded pixel regions
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package spanops

// rowRange gives the spans spans[first:end] which lie in row y.
type rowRange struct {
	y          int
	first, end int
}

// indexRows groups the spans of a sorted span list by row.  It returns the
// rows in increasing order, together with the position in rows of the row
// of every span.
func indexRows(spans []Span) (rows []rowRange, rowOf []int) {
	rowOf = make([]int, len(spans))
	for i, span := range spans {
		if n := len(rows); n > 0 && rows[n-1].y == span.Y {
			rows[n-1].end = i + 1
		} else {
			rows = append(rows, rowRange{y: span.Y, first: i, end: i + 1})
		}
		rowOf[i] = len(rows) - 1
	}
	return rows, rowOf
}

// Split partitions the set into connected components.
//
// Two spans are connected if their rows are next to each other in the
// list of occupied rows and their columns overlap.  Rows without any
// pixels are skipped over, so that spans separated by empty rows can
// still be connected.
//
// The components are returned in the order of their first span.
func (s SpanSet) Split() []SpanSet {
	spans := s.spans
	if len(spans) == 0 {
		return nil
	}
	rows, rowOf := indexRows(spans)

	const unlabeled = 0
	labels := make([]int, len(spans))
	numLabels := 0

	var todo []int
	for i := range spans {
		if labels[i] != unlabeled {
			continue
		}
		numLabels++
		labels[i] = numLabels

		todo = append(todo[:0], i)
		for len(todo) > 0 {
			cur := todo[len(todo)-1]
			todo = todo[:len(todo)-1]

			k := rowOf[cur]
			for _, nb := range [2]int{k - 1, k + 1} {
				if nb < 0 || nb >= len(rows) {
					continue
				}
				for m := rows[nb].first; m < rows[nb].end; m++ {
					if labels[m] == unlabeled && spans[m].X.Overlaps(spans[cur].X) {
						labels[m] = numLabels
						todo = append(todo, m)
					}
				}
			}
		}
	}

	groups := make([][]Span, numLabels)
	for i, span := range spans {
		k := labels[i] - 1
		groups[k] = append(groups[k], span)
	}
	res := make([]SpanSet, numLabels)
	for k, g := range groups {
		res[k] = SpanSet{spans: g}
	}

	Logger().Debug("split span set",
		"spans", len(spans), "rows", len(rows), "components", numLabels)
	return res
}

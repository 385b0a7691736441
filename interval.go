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

import "strconv"

// Interval is a closed range of integers [Min, Max].
//
// The zero value is the empty interval.  Emptiness is stored explicitly,
// so that every pair min <= max, including degenerate ones, can be
// represented.
type Interval struct {
	lo, hi int
	ok     bool // false for the empty interval
}

// Point returns the interval containing the single value v.
func Point(v int) Interval {
	return Interval{lo: v, hi: v, ok: true}
}

// NewInterval returns the interval [lo, hi].
// If lo > hi, the empty interval is returned.
func NewInterval(lo, hi int) Interval {
	if lo > hi {
		return Interval{}
	}
	return Interval{lo: lo, hi: hi, ok: true}
}

// Min returns the smallest value in the interval.
// The result is 0 for the empty interval.
func (i Interval) Min() int { return i.lo }

// Max returns the largest value in the interval.
// The result is 0 for the empty interval.
func (i Interval) Max() int { return i.hi }

// Len returns the number of integers in the interval.
func (i Interval) Len() int {
	if !i.ok {
		return 0
	}
	return 1 + i.hi - i.lo
}

// IsEmpty reports whether the interval contains no values.
func (i Interval) IsEmpty() bool { return !i.ok }

// Intersect returns the values contained in both i and other.
func (i Interval) Intersect(other Interval) Interval {
	if !i.ok || !other.ok {
		return Interval{}
	}
	return NewInterval(max(i.lo, other.lo), min(i.hi, other.hi))
}

// IntersectWith replaces i with the intersection of i and other.
func (i *Interval) IntersectWith(other Interval) {
	*i = i.Intersect(other)
}

// ExpandTo grows the interval, if needed, to include v.
func (i *Interval) ExpandTo(v int) {
	switch {
	case !i.ok:
		*i = Point(v)
	case v < i.lo:
		i.lo = v
	case v > i.hi:
		i.hi = v
	}
}

// ExpandedTo returns the smallest interval containing both i and v.
func (i Interval) ExpandedTo(v int) Interval {
	i.ExpandTo(v)
	return i
}

// ExpandToInterval grows the interval, if needed, to include other.
// Expanding by the empty interval leaves i unchanged.
func (i *Interval) ExpandToInterval(other Interval) {
	if !other.ok {
		return
	}
	if !i.ok {
		*i = other
		return
	}
	i.lo = min(i.lo, other.lo)
	i.hi = max(i.hi, other.hi)
}

// ExpandedToInterval returns the smallest interval containing both i and other.
func (i Interval) ExpandedToInterval(other Interval) Interval {
	i.ExpandToInterval(other)
	return i
}

// Contains reports whether v lies in the interval.
func (i Interval) Contains(v int) bool {
	return i.ok && i.lo <= v && v <= i.hi
}

// Overlaps reports whether i and other have at least one value in common.
// Intervals which share only an endpoint overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.ok && other.ok && i.hi >= other.lo && i.lo <= other.hi
}

// Equal reports whether i and other contain the same values.
// All empty intervals are equal.
func (i Interval) Equal(other Interval) bool {
	if !i.ok || !other.ok {
		return i.ok == other.ok
	}
	return i.lo == other.lo && i.hi == other.hi
}

// String formats the interval as "min..max", or "()" if it is empty.
func (i Interval) String() string {
	if !i.ok {
		return "()"
	}
	return strconv.Itoa(i.lo) + ".." + strconv.Itoa(i.hi)
}

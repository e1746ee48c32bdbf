/*
 * partition.go, part of gofrag.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package partition implements a union-find structure over the integers 0..n-1
//with path compression, union by rank, and cheap independent copies, so a
//tentative union can be tried on a copy and only repeated on the original
//if it is accepted.
package partition

//Partition is a dynamic partition of the ids 0..Len()-1 into disjoint sets.
//The zero value is an empty partition. A Partition must not be shared between goroutines
//without synchronization, as even Same and Find compress paths.
type Partition struct {
	parent []int
	rank   []int
}

//New returns a partition of n ids, each in its own set.
func New(n int) *Partition {
	P := &Partition{parent: make([]int, n), rank: make([]int, n)}
	for i := range P.parent {
		P.parent[i] = i
	}
	return P
}

//Copy returns an independent partition with the same sets as P.
func (P *Partition) Copy() *Partition {
	r := &Partition{parent: make([]int, len(P.parent)), rank: make([]int, len(P.rank))}
	copy(r.parent, P.parent)
	copy(r.rank, P.rank)
	return r
}

//Len returns the number of ids in the partition.
func (P *Partition) Len() int {
	return len(P.parent)
}

//Find returns the representative of the set containing a.
//Panics if a is out of range.
func (P *Partition) Find(a int) int {
	root := a
	for P.parent[root] != root {
		root = P.parent[root]
	}
	for P.parent[a] != root {
		next := P.parent[a]
		P.parent[a] = root
		a = next
	}
	return root
}

//Unite merges the sets containing a and b. It returns false, and does nothing,
//if they were already in the same set.
func (P *Partition) Unite(a, b int) bool {
	ra := P.Find(a)
	rb := P.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case P.rank[ra] < P.rank[rb]:
		P.parent[ra] = rb
	case P.rank[ra] > P.rank[rb]:
		P.parent[rb] = ra
	default:
		P.parent[rb] = ra
		P.rank[ra]++
	}
	return true
}

//Same returns true if a and b belong to the same set.
func (P *Partition) Same(a, b int) bool {
	return P.Find(a) == P.Find(b)
}

//Set returns the members of the set containing a, in increasing order.
func (P *Partition) Set(a int) []int {
	root := P.Find(a)
	ret := make([]int, 0, 4)
	for i := range P.parent {
		if P.Find(i) == root {
			ret = append(ret, i)
		}
	}
	return ret
}

//Sets returns all the sets in the partition. Each set is sorted in increasing order,
//and the sets are sorted by their smallest member, so the result depends only on
//the partition, not on the order of the unions that produced it.
func (P *Partition) Sets() [][]int {
	byroot := make(map[int]int, len(P.parent))
	ret := make([][]int, 0)
	for i := range P.parent {
		root := P.Find(i)
		k, ok := byroot[root]
		if !ok {
			k = len(ret)
			byroot[root] = k
			ret = append(ret, make([]int, 0, 1))
		}
		ret[k] = append(ret[k], i)
	}
	//ids are visited in increasing order, so both orderings hold here.
	return ret
}

//NSets returns the number of disjoint sets in the partition.
func (P *Partition) NSets() int {
	n := 0
	for i := range P.parent {
		if P.Find(i) == i {
			n++
		}
	}
	return n
}

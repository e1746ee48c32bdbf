/*
 * partition_test.go, part of gofrag.
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

package partition

import (
	"fmt"
	"reflect"
	"testing"
)

func TestUniteSame(Te *testing.T) {
	P := New(6)
	if !P.Unite(0, 1) {
		Te.Error("first union of 0 and 1 should report a merge")
	}
	if P.Unite(1, 0) {
		Te.Error("second union of 0 and 1 should be a no-op")
	}
	P.Unite(2, 3)
	P.Unite(3, 1)
	for _, pair := range [][2]int{{0, 3}, {3, 0}, {2, 1}, {4, 4}} {
		if !P.Same(pair[0], pair[1]) {
			Te.Errorf("%d and %d should be in the same set", pair[0], pair[1])
		}
	}
	if P.Same(4, 5) || P.Same(0, 5) {
		Te.Error("4 and 5 were never united")
	}
	if P.NSets() != 3 {
		Te.Errorf("expected 3 sets, got %d", P.NSets())
	}
	fmt.Println(P.Sets())
}

func TestIdempotence(Te *testing.T) {
	A := New(5)
	B := New(5)
	A.Unite(1, 3)
	B.Unite(1, 3)
	B.Unite(1, 3)
	B.Unite(3, 1)
	if !reflect.DeepEqual(A.Sets(), B.Sets()) {
		Te.Errorf("repeated unions changed the partition: %v vs %v", A.Sets(), B.Sets())
	}
}

func TestSetsDeterministic(Te *testing.T) {
	A := New(7)
	B := New(7)
	//same partition, different union orders
	A.Unite(6, 2)
	A.Unite(2, 4)
	A.Unite(1, 5)
	B.Unite(4, 2)
	B.Unite(5, 1)
	B.Unite(4, 6)
	expected := [][]int{{0}, {1, 5}, {2, 4, 6}, {3}}
	if !reflect.DeepEqual(A.Sets(), expected) {
		Te.Errorf("bad sets %v", A.Sets())
	}
	if !reflect.DeepEqual(B.Sets(), expected) {
		Te.Errorf("bad sets %v", B.Sets())
	}
	if !reflect.DeepEqual(A.Set(6), []int{2, 4, 6}) {
		Te.Errorf("bad set for 6: %v", A.Set(6))
	}
}

func TestCopyIndependent(Te *testing.T) {
	P := New(4)
	P.Unite(0, 1)
	C := P.Copy()
	C.Unite(1, 2)
	if P.Same(0, 2) {
		Te.Error("a union in the copy leaked into the original")
	}
	if !C.Same(0, 2) || !C.Same(0, 1) {
		Te.Error("the copy lost or failed a union")
	}
	P.Unite(2, 3)
	if C.Same(2, 3) {
		Te.Error("a union in the original leaked into the copy")
	}
}

func TestEmpty(Te *testing.T) {
	P := New(0)
	if len(P.Sets()) != 0 || P.Len() != 0 {
		Te.Error("an empty partition should have no sets")
	}
}

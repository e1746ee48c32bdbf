/*
 * options.go, part of gofrag.
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

package frag

import "go.uber.org/zap"

//Unlimited, given as maximum ring size, lets rings of any size force their
//atoms into one fragment.
const Unlimited = -1

//Options contains the options for a decomposition.
type Options struct {
	maxRingSize   int
	mergeSolitary bool
	logger        *zap.Logger
}

//DefaultOptions returns the options gofrag uses by default: rings of any size
//are kept in one fragment, solitary rotors are merged, and nothing is logged.
func DefaultOptions() *Options {
	r := new(Options)
	r.maxRingSize = Unlimited
	r.mergeSolitary = true
	r.logger = zap.NewNop()
	return r
}

//MaxRingSize returns the largest ring that is forced into a single fragment,
//and sets it to a new value, if given. Unlimited means no limit. Any other
//value below 3 means that no ring is forced into a fragment.
func (O *Options) MaxRingSize(n ...int) int {
	if len(n) > 0 {
		O.maxRingSize = n[0]
	}
	return O.maxRingSize
}

//MergeSolitary returns whether rotors that don't change the shape of the group
//they join when rotated are merged, and sets it to a new value, if given.
func (O *Options) MergeSolitary(b ...bool) bool {
	if len(b) > 0 {
		O.mergeSolitary = b[0]
	}
	return O.mergeSolitary
}

//Logger returns the logger for the merge decisions, and sets it to a new value,
//if a non-nil one is given.
func (O *Options) Logger(l ...*zap.Logger) *zap.Logger {
	if len(l) > 0 && l[0] != nil {
		O.logger = l[0]
	}
	if O.logger == nil {
		O.logger = zap.NewNop()
	}
	return O.logger
}

//ringFits returns true if a ring of size atoms is forced into one fragment.
func (O *Options) ringFits(size int) bool {
	return O.maxRingSize == Unlimited || size <= O.maxRingSize
}

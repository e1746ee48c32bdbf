/*
 * library.go, part of gofrag.
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

package batch

import "github.com/rmera/gofrag/frag"

//Entry is a unique fragment of a Library.
type Entry struct {
	Key      string
	Count    int
	Fragment *frag.Fragment //the first fragment found with this key
}

//Library keeps the unique fragments of a set of molecules, in the order they were first added.
//A Library is not safe for concurrent use.
type Library struct {
	entries []*Entry
	index   map[string]int
}

//NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{index: make(map[string]int)}
}

//Add counts one more occurrence of the fragment with the given key, and returns
//true if it is the first one.
func (L *Library) Add(key string, f *frag.Fragment) bool {
	if i, ok := L.index[key]; ok {
		L.entries[i].Count++
		return false
	}
	L.index[key] = len(L.entries)
	L.entries = append(L.entries, &Entry{Key: key, Count: 1, Fragment: f})
	return true
}

//Len returns the number of unique fragments.
func (L *Library) Len() int {
	return len(L.entries)
}

//Entries returns the unique fragments in the order they were first added. The slice must not be modified.
func (L *Library) Entries() []*Entry {
	return L.entries
}

//Get returns the entry with the given key, or nil.
func (L *Library) Get(key string) *Entry {
	if i, ok := L.index[key]; ok {
		return L.entries[i]
	}
	return nil
}

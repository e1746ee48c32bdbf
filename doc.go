/*
 * doc.go, part of gofrag.
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

/*
Package chem is the main package of gofrag. It provides the atom, bond and molecule
structures that the fragment decomposition (package frag) works on, and facilities for
reading and writing the files the gofrag tool uses.

	**Capabilities**

    Reads multi-record V2000 SDF/MOL files, including data items, charges and isotopes.

    Writes SDF files with data items, so a decomposition can be stored next to
	the molecule (the fragment id of each atom can go in the isotope field).

    Reads XYZ files, assigning bonds with a distance criterion.

    Assigns rotatable bonds (rotors).

    Rotates the atoms at one side of a bond around it, producing a new conformer.

    Calculates the RMSD between 2 molecules after superimposing them with the
	Kabsch algorithm.

    Extracts sub-molecules, and appends atoms, bonds or whole molecules to
	a molecule.

Coordinates are kept in a v3.Matrix (package v3), based on gonum's mat.Dense. Each row
of the matrix is one point in space. Single points are gonum r3.Vec values.
*/
package chem

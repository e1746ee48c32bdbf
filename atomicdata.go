/*
 * atomicdata.go, part of gofrag.
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

package chem

//Covalent radii, in A, used for bond perception.
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J). Only elements
//common in small organic molecules and ligands are present.
var covalentRadius = map[string]float64{
	"H":  0.4, //0.31 in Cordero et al. A longer radius is harmless, H keeps only its shortest bond.
	"B":  0.84,
	"C":  0.76, //sp3
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"Si": 1.11,
	"P":  1.07,
	"S":  1.05,
	"Cl": 1.02,
	"Se": 1.2,
	"Br": 1.2,
	"I":  1.39,
	"Na": 1.66,
	"K":  2.03,
	"Mg": 1.41,
	"Ca": 1.76,
	"Fe": 1.52, //hs
	"Zn": 1.22,
	"Cu": 1.32,
}

//Maximum number of bonds per element. Atoms with more bonds lose the longest ones.
//Elements not present are not checked.
var maxBonds = map[string]int{
	"H":  1,
	"C":  4,
	"O":  2,
	"F":  1,
	"Cl": 1,
	"Br": 1,
	"I":  1,
}

/*
Package frag decomposes a molecule into rigid fragments connected by rotatable
bonds, for fragment-based conformational search and docking.

The decomposition first groups the atoms with a union-find partition (see Merge):
atoms joined by non-rotatable bonds, atoms in small enough rings, and the two sides
of rotatable bonds that can't change the shape of the molecule (for instance,
a bond to a linear or a symmetric terminal group, checked by actually rotating the bond)
end up in the same fragment. Hydrogens join their heavy atom. Build then turns the
groups into Fragments, linked by pairs of Edges that carry the positions of the bonded
atoms and, when it is unambiguous, the rotation axis.

A typical use:

	mols, err := chem.SDFFileRead("ligands.sdf")
	...
	frags, err := frag.Decompose(mols[0], frag.Unlimited, true)

Key gives a name to a fragment that only depends on its atoms and bonds, so
equal fragments from different molecules can be counted together.
*/
package frag

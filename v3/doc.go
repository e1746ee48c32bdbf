/*Package v3 implements a Matrix type representing a row-major 3D matrix (i.e. a Nx3 matrix).
The v3.Matrix is used to represent the cartesian coordinates of sets of atoms in gofrag.
It is based on gonum's (gonum.org/v1/gonum/mat) Dense type, with some additional restrictions
because of the fixed number of columns and with some additional functions that were found
useful for the purposes of gofrag.

Single points are handled as gonum's r3.Vec values. The helpers in vec.go are the small
set of vector operations the fragment code needs (difference, norm, normalization).
*/
package v3

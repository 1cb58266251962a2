// Package tetra generates the subdivided tetrahedron: every level replaces a
// tetrahedron by the four tetrahedra at its corners, and each leaf contributes
// its four faces, colored by face index, to the geometry buffer.
package tetra

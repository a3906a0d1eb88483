// Package asset holds the geometry, image and shading data that scene
// components point at. Assets are immutable once built and may be shared by
// any number of components.
package asset

import "github.com/go-gl/mathgl/mgl32"

// Mesh is an indexed triangle list. Normals and UVs, when present, are per
// vertex and parallel to Vertices.
type Mesh struct {
	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3
	UVs      []mgl32.Vec2
	Indices  []uint32
}

// NewMesh builds a mesh. Missing normals are computed from the faces.
func NewMesh(vertices []mgl32.Vec3, uvs []mgl32.Vec2, indices []uint32, normals []mgl32.Vec3) *Mesh {
	m := &Mesh{
		Vertices: vertices,
		Normals:  normals,
		UVs:      uvs,
		Indices:  indices,
	}
	if len(m.Normals) == 0 {
		m.Normals = m.vertexNormals()
	}
	return m
}

// Triangles returns the number of complete triangles in the index list.
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// Edges returns every distinct undirected edge of the triangle list, each as
// an index pair with the smaller index first, in first-seen order.
func (m *Mesh) Edges() [][2]uint32 {
	seen := make(map[[2]uint32]struct{}, len(m.Indices))
	var edges [][2]uint32
	add := func(a, b uint32) {
		if a > b {
			a, b = b, a
		}
		key := [2]uint32{a, b}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		edges = append(edges, key)
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		add(a, b)
		add(b, c)
		add(c, a)
	}
	return edges
}

// vertexNormals averages the face normals around each vertex.
func (m *Mesh) vertexNormals() []mgl32.Vec3 {
	normals := make([]mgl32.Vec3, len(m.Vertices))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		ia, ib, ic := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if int(ia) >= len(m.Vertices) || int(ib) >= len(m.Vertices) || int(ic) >= len(m.Vertices) {
			continue
		}
		n, ok := FaceNormal(m.Vertices[ia], m.Vertices[ib], m.Vertices[ic])
		if !ok {
			continue
		}
		normals[ia] = normals[ia].Add(n)
		normals[ib] = normals[ib].Add(n)
		normals[ic] = normals[ic].Add(n)
	}
	for i, n := range normals {
		if n.Len() > 0 {
			normals[i] = n.Normalize()
		}
	}
	return normals
}

// FaceNormal returns the unit normal of the triangle a, b, c, computed as
// (a-b) × (a-c). It reports false for a degenerate triangle.
func FaceNormal(a, b, c mgl32.Vec3) (mgl32.Vec3, bool) {
	n := a.Sub(b).Cross(a.Sub(c))
	if n.Len() == 0 {
		return mgl32.Vec3{}, false
	}
	return n.Normalize(), true
}

// Cube returns an axis-aligned cube centred on the origin with the given edge
// length: 8 shared corners and 12 triangles.
func Cube(size float32) *Mesh {
	h := size / 2
	vertices := []mgl32.Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	uvs := []mgl32.Vec2{
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
	}
	indices := []uint32{
		0, 2, 1, 0, 3, 2, // back
		4, 5, 6, 4, 6, 7, // front
		0, 1, 5, 0, 5, 4, // bottom
		3, 7, 6, 3, 6, 2, // top
		0, 4, 7, 0, 7, 3, // left
		1, 2, 6, 1, 6, 5, // right
	}
	return NewMesh(vertices, uvs, indices, nil)
}

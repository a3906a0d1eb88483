package scene

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/hecs/asset"
	"github.com/plus3/hecs/ecs"
)

// Model is a drawable: a mesh with its texture, material and tint. It is
// placed by its owning entity's transform.
type Model struct {
	ecs.Base

	mu       sync.RWMutex
	mesh     *asset.Mesh
	texture  *asset.Texture
	material *asset.Material
	color    mgl32.Vec4
}

func NewModel(id string, mesh *asset.Mesh, texture *asset.Texture, material *asset.Material, color mgl32.Vec4) *Model {
	m := &Model{
		mesh:     mesh,
		texture:  texture,
		material: material,
		color:    color,
	}
	m.Init(id, ecs.KindModel)
	return m
}

func (m *Model) Mesh() *asset.Mesh {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mesh
}

func (m *Model) SetMesh(mesh *asset.Mesh) {
	m.mu.Lock()
	m.mesh = mesh
	m.mu.Unlock()
}

func (m *Model) Texture() *asset.Texture {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.texture
}

func (m *Model) SetTexture(texture *asset.Texture) {
	m.mu.Lock()
	m.texture = texture
	m.mu.Unlock()
}

func (m *Model) Material() *asset.Material {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.material
}

func (m *Model) SetMaterial(material *asset.Material) {
	m.mu.Lock()
	m.material = material
	m.mu.Unlock()
}

func (m *Model) Color() mgl32.Vec4 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.color
}

func (m *Model) SetColor(color mgl32.Vec4) {
	m.mu.Lock()
	m.color = color
	m.mu.Unlock()
}

// Transform resolves the owning entity's transform, or returns the zero
// TransformData when the owner has none.
func (m *Model) Transform() ecs.TransformData {
	return ownerTransform(m)
}

package asset

// Material holds Phong shading coefficients.
type Material struct {
	Ambient   float32
	Diffuse   float32
	Specular  float32
	Shininess uint32
}

func NewMaterial(ambient, diffuse, specular float32, shininess uint32) *Material {
	return &Material{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

// DefaultMaterial is a dull, mostly diffuse surface.
func DefaultMaterial() *Material {
	return NewMaterial(0.1, 0.8, 0.5, 32)
}

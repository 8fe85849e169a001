package roof

// GeometryData contém os buffers de vértices de uma malha gerada.
// Layout plano pronto para upload: 3 floats por posição/normal, 4 bytes por cor.
type GeometryData struct {
	Vertices []float32
	Normals  []float32
	Colors   []uint8
}

// VertexCount retorna o número de vértices no buffer.
func (g GeometryData) VertexCount() int {
	return len(g.Vertices) / 3
}

// IsEmpty informa se nenhum triângulo foi emitido.
func (g GeometryData) IsEmpty() bool {
	return len(g.Vertices) == 0
}

// MeshBuffer auxilia na construção incremental da malha do telhado.
type MeshBuffer struct {
	Geometry GeometryData
}

func (b *MeshBuffer) addVertex(v [3]float32, n [3]float32, c [4]uint8) {
	b.Geometry.Vertices = append(b.Geometry.Vertices, v[0], v[1], v[2])
	b.Geometry.Normals = append(b.Geometry.Normals, n[0], n[1], n[2])
	b.Geometry.Colors = append(b.Geometry.Colors, c[0], c[1], c[2], c[3])
}

// AddTriangle adiciona uma face triangular ao buffer.
func (b *MeshBuffer) AddTriangle(v1, v2, v3 [3]float32, n [3]float32, c [4]uint8) {
	b.addVertex(v1, n, c)
	b.addVertex(v2, n, c)
	b.addVertex(v3, n, c)
}

// AddQuad adiciona uma face retangular (dois triângulos) ao buffer.
func (b *MeshBuffer) AddQuad(v1, v2, v3, v4 [3]float32, n [3]float32, c [4]uint8) {
	b.AddTriangle(v1, v2, v3, n, c)
	b.AddTriangle(v1, v3, v4, n, c)
}

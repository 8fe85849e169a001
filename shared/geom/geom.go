package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Constantes de interoperabilidade do formato de design.
// Presets exatos: alterar qualquer um quebra snapshots trocados entre versões.
const (
	// SnapDistance é a distância máxima (em unidades de mundo) entre dois
	// pontos de encaixe para que eles sejam considerados candidatos a snap.
	SnapDistance float32 = 0.77

	// SnapDot é o produto escalar máximo entre as direções de dois pontos
	// de encaixe. Direções quase exatamente opostas: dot <= -0.99.
	SnapDot float32 = -0.99

	// CatalogScale converte unidades do catálogo (metros, como os meshes são
	// autorados) para unidades de mundo (pés). Aplicado uma vez, no load do catálogo.
	CatalogScale float32 = 3.28084

	// RoofPitchTan é a tangente do ângulo de inclinação do telhado (~14.04 graus).
	RoofPitchTan float32 = 0.25

	// OverhangLength e OverhangThickness dimensionam os beirais do telhado.
	OverhangLength    float32 = 0.5
	OverhangThickness float32 = 0.12

	// RidgeSplit é a proporção de divisão da cumeeira assimétrica (70/30).
	RidgeSplit float32 = 0.7
)

// Deg2Rad converte graus para radianos.
const Deg2Rad float32 = math.Pi / 180.0

// Transform representa a posição e orientação de um objeto no mundo.
// A rotação é armazenada como ângulos de Euler em graus, ordem XYZ,
// o mesmo formato que o snapshot transporta.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Euler XYZ em graus
}

// Quat retorna o quaternion equivalente à rotação do transform.
func (t Transform) Quat() mgl32.Quat {
	return mgl32.AnglesToQuat(
		t.Rotation.X()*Deg2Rad,
		t.Rotation.Y()*Deg2Rad,
		t.Rotation.Z()*Deg2Rad,
		mgl32.XYZ,
	)
}

// PointToWorld converte um ponto local (espaço do catálogo) para o espaço do mundo.
func (t Transform) PointToWorld(local mgl32.Vec3) mgl32.Vec3 {
	return t.Quat().Rotate(local).Add(t.Position)
}

// DirToWorld converte uma direção local para o espaço do mundo.
// Apenas rotação, sem translação, com re-normalização do resultado.
func (t Transform) DirToWorld(local mgl32.Vec3) mgl32.Vec3 {
	rotated := t.Quat().Rotate(local)
	if rotated.Len() == 0 {
		return rotated
	}
	return rotated.Normalize()
}

// PointToLocal converte um ponto do mundo de volta para o espaço local do transform.
func (t Transform) PointToLocal(world mgl32.Vec3) mgl32.Vec3 {
	return t.Quat().Inverse().Rotate(world.Sub(t.Position))
}

// Dist retorna a distância euclidiana entre dois pontos.
func Dist(a, b mgl32.Vec3) float32 {
	return a.Sub(b).Len()
}

// VecMin retorna o mínimo componente a componente de dois vetores.
func VecMin(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		min(a.X(), b.X()),
		min(a.Y(), b.Y()),
		min(a.Z(), b.Z()),
	}
}

// VecMax retorna o máximo componente a componente de dois vetores.
func VecMax(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		max(a.X(), b.X()),
		max(a.Y(), b.Y()),
		max(a.Z(), b.Z()),
	}
}

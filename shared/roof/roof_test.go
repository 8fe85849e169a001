package roof

import (
	"math"
	"testing"

	"MontaCasa/shared/geom"

	"github.com/go-gl/mathgl/mgl32"
)

func TestStyleRoundTrip(t *testing.T) {
	for _, style := range []Style{StyleNone, StyleGable, StyleAsymmetric, StyleFlat} {
		back, ok := StyleFromString(style.String())
		if !ok || back != style {
			t.Errorf("StyleFromString(%q) = %v, %v", style.String(), back, ok)
		}
	}
	if _, ok := StyleFromString("telhadinho"); ok {
		t.Error("StyleFromString aceitou nome desconhecido")
	}
}

func TestRotateModulo4(t *testing.T) {
	st := State{}
	for i := 0; i < 4; i++ {
		st.Rotate(1)
	}
	if st.RotationStep != 0 {
		t.Errorf("4 rotações não voltaram ao passo 0: %d", st.RotationStep)
	}
	st.Rotate(-1)
	if st.RotationStep != 3 {
		t.Errorf("Rotate(-1) a partir de 0 = %d, want 3", st.RotationStep)
	}
	if got := st.YawDegrees(); got != 270 {
		t.Errorf("YawDegrees = %v, want 270", got)
	}
}

func TestGenerateNone(t *testing.T) {
	if _, ok := Generate(mgl32.Vec3{}, mgl32.Vec3{10, 3, 8}, StyleNone); ok {
		t.Error("StyleNone produziu geometria")
	}
}

func TestGenerateGable(t *testing.T) {
	bmin := mgl32.Vec3{-4, 0, -3}
	bmax := mgl32.Vec3{4, 2.5, 3}
	res, ok := Generate(bmin, bmax, StyleGable)
	if !ok {
		t.Fatal("Generate(Gable) não produziu geometria")
	}
	if res.Telhado.IsEmpty() || res.Beirais.IsEmpty() {
		t.Fatal("telhado ou beirais vazios")
	}

	// Pivô: centro XZ do volume, no topo dele
	if res.Center != (mgl32.Vec3{0, 2.5, 0}) {
		t.Errorf("Center = %v", res.Center)
	}

	// Altura do ápice: tan(inclinação) * W/2
	w := bmax.X() - bmin.X()
	wantH := geom.RoofPitchTan * w / 2
	maxY := float32(math.Inf(-1))
	for i := 1; i < len(res.Telhado.Vertices); i += 3 {
		if y := res.Telhado.Vertices[i]; y > maxY {
			maxY = y
		}
	}
	if math.Abs(float64(maxY-wantH)) > 1e-5 {
		t.Errorf("ápice = %v, want %v", maxY, wantH)
	}

	// Beirais se estendem além da largura pelo comprimento do beiral
	maxX := float32(0)
	for i := 0; i < len(res.Beirais.Vertices); i += 3 {
		if x := res.Beirais.Vertices[i]; x > maxX {
			maxX = x
		}
	}
	wantX := w/2 + geom.OverhangLength
	if math.Abs(float64(maxX-wantX)) > 1e-5 {
		t.Errorf("extensão do beiral = %v, want %v", maxX, wantX)
	}
}

func TestGenerateAsymmetric(t *testing.T) {
	res, ok := Generate(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{10, 3, 6}, StyleAsymmetric)
	if !ok {
		t.Fatal("Generate(Asymmetric) não produziu geometria")
	}

	// Ápice na água longa: tan * 0.7 * W
	wantH := geom.RoofPitchTan * geom.RidgeSplit * 10
	maxY := float32(math.Inf(-1))
	for i := 1; i < len(res.Telhado.Vertices); i += 3 {
		if y := res.Telhado.Vertices[i]; y > maxY {
			maxY = y
		}
	}
	if math.Abs(float64(maxY-wantH)) > 1e-4 {
		t.Errorf("ápice assimétrico = %v, want %v", maxY, wantH)
	}
}

func TestGenerateFlat(t *testing.T) {
	res, ok := Generate(mgl32.Vec3{-2, 0, -1}, mgl32.Vec3{2, 2, 1}, StyleFlat)
	if !ok {
		t.Fatal("Generate(Flat) não produziu geometria")
	}
	if !res.Beirais.IsEmpty() {
		t.Error("laje plana não usa peças de beiral separadas")
	}

	var maxX, maxY float32
	for i := 0; i < len(res.Telhado.Vertices); i += 3 {
		maxX = max(maxX, res.Telhado.Vertices[i])
		maxY = max(maxY, res.Telhado.Vertices[i+1])
	}
	if want := 2 + geom.OverhangLength; math.Abs(float64(maxX-want)) > 1e-5 {
		t.Errorf("meia largura da laje = %v, want %v", maxX, want)
	}
	if math.Abs(float64(maxY-geom.OverhangThickness)) > 1e-5 {
		t.Errorf("espessura da laje = %v, want %v", maxY, geom.OverhangThickness)
	}
}

func TestGenerateEstiloDesconhecidoPanica(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("estilo desconhecido não causou panic")
		}
	}()
	Generate(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, Style(99))
}

package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func vecNear(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < eps
}

func TestPointToWorld(t *testing.T) {
	tests := []struct {
		name  string
		tr    Transform
		local mgl32.Vec3
		want  mgl32.Vec3
	}{
		{
			name:  "identidade",
			tr:    Transform{},
			local: mgl32.Vec3{1, 2, 3},
			want:  mgl32.Vec3{1, 2, 3},
		},
		{
			name:  "translacao pura",
			tr:    Transform{Position: mgl32.Vec3{10, 0, -5}},
			local: mgl32.Vec3{1, 0, 0},
			want:  mgl32.Vec3{11, 0, -5},
		},
		{
			name:  "rotacao 90 graus em Y",
			tr:    Transform{Rotation: mgl32.Vec3{0, 90, 0}},
			local: mgl32.Vec3{1, 0, 0},
			want:  mgl32.Vec3{0, 0, -1},
		},
		{
			name:  "rotacao e translacao combinadas",
			tr:    Transform{Position: mgl32.Vec3{2, 0, 0}, Rotation: mgl32.Vec3{0, 180, 0}},
			local: mgl32.Vec3{1, 0, 0},
			want:  mgl32.Vec3{1, 0, 0},
		},
	}

	for _, tt := range tests {
		got := tt.tr.PointToWorld(tt.local)
		if !vecNear(got, tt.want) {
			t.Errorf("%s: PointToWorld(%v) = %v, want %v", tt.name, tt.local, got, tt.want)
		}
	}
}

func TestDirToWorldIgnoresTranslation(t *testing.T) {
	tr := Transform{Position: mgl32.Vec3{100, 100, 100}, Rotation: mgl32.Vec3{0, 90, 0}}
	got := tr.DirToWorld(mgl32.Vec3{1, 0, 0})
	want := mgl32.Vec3{0, 0, -1}
	if !vecNear(got, want) {
		t.Errorf("DirToWorld com translação = %v, want %v", got, want)
	}
}

func TestDirToWorldRenormaliza(t *testing.T) {
	tr := Transform{Rotation: mgl32.Vec3{30, 45, 10}}
	got := tr.DirToWorld(mgl32.Vec3{0, 3, 0}) // vetor não unitário de entrada
	if l := got.Len(); l < 1-eps || l > 1+eps {
		t.Errorf("DirToWorld não renormalizou: |v| = %v", l)
	}
}

func TestPointToLocalInverso(t *testing.T) {
	tr := Transform{Position: mgl32.Vec3{3, -1, 7}, Rotation: mgl32.Vec3{15, 120, -30}}
	p := mgl32.Vec3{0.5, 2.5, -1.25}
	back := tr.PointToLocal(tr.PointToWorld(p))
	if !vecNear(back, p) {
		t.Errorf("PointToLocal(PointToWorld(p)) = %v, want %v", back, p)
	}
}

func TestVecMinMax(t *testing.T) {
	a := mgl32.Vec3{1, 5, -2}
	b := mgl32.Vec3{3, 2, -7}
	if got := VecMin(a, b); !vecNear(got, mgl32.Vec3{1, 2, -7}) {
		t.Errorf("VecMin = %v", got)
	}
	if got := VecMax(a, b); !vecNear(got, mgl32.Vec3{3, 5, -2}) {
		t.Errorf("VecMax = %v", got)
	}
}

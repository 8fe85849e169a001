package camera

import (
	"math"

	"MontaCasa/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Controller gerencia a câmera orbital do editor: ela gira em torno de um
// ponto de interesse (o centro da montagem) com zoom e movimento suavizados.
type Controller struct {
	RLCamera rl.Camera3D

	// Configurações
	MinZoom      float32
	MaxZoom      float32
	MoveSpeed    float32
	RotateSpeed  float32
	ZoomSpeed    float32
	SmoothFactor float32

	// Estado alvo (para interpolação suave)
	TargetLookAt mgl32.Vec3
	TargetZoom   float32
	AngleY       float32 // azimute (radianos)
	AngleX       float32 // elevação (radianos, negativa = olhando de cima)

	// Estado atual (interpolado)
	CurrentLookAt mgl32.Vec3
	CurrentZoom   float32
}

// New cria o controlador com o enquadramento padrão do editor.
func New(moveSpeed, rotateSpeed, zoomSpeed float32) *Controller {
	c := &Controller{
		MinZoom:      4.0,
		MaxZoom:      120.0,
		MoveSpeed:    moveSpeed,
		RotateSpeed:  rotateSpeed,
		ZoomSpeed:    zoomSpeed,
		SmoothFactor: 0.12,

		TargetZoom: 35.0,
		AngleY:     45.0 * rl.Deg2rad,
		AngleX:     -35.0 * rl.Deg2rad,
	}
	c.CurrentLookAt = c.TargetLookAt
	c.CurrentZoom = c.TargetZoom

	c.RLCamera = rl.Camera3D{
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
	c.recompute()
	return c
}

// Focus centraliza a câmera num ponto imediatamente (sem suavização).
func (c *Controller) Focus(p mgl32.Vec3) {
	c.TargetLookAt = p
	c.CurrentLookAt = p
	c.recompute()
}

// Update interpola a câmera em direção ao alvo. Chamado a cada frame.
func (c *Controller) Update(dt float32) {
	factor := c.SmoothFactor * 60.0 * dt
	if factor > 1.0 {
		factor = 1.0
	}

	delta := c.TargetLookAt.Sub(c.CurrentLookAt).Mul(factor)
	c.CurrentLookAt = c.CurrentLookAt.Add(delta)
	c.CurrentZoom = util.Lerp(c.CurrentZoom, c.TargetZoom, factor)

	c.recompute()
}

// recompute converte os ângulos esféricos e o zoom na posição da câmera.
func (c *Controller) recompute() {
	dist := c.CurrentZoom

	cosX := float32(math.Cos(float64(c.AngleX)))
	sinX := float32(math.Sin(float64(c.AngleX)))
	cosY := float32(math.Cos(float64(c.AngleY)))
	sinY := float32(math.Sin(float64(c.AngleY)))

	offset := mgl32.Vec3{
		dist * cosX * sinY,
		dist * -sinX,
		dist * cosX * cosY,
	}
	pos := c.CurrentLookAt.Add(offset)

	c.RLCamera.Position = rl.Vector3{X: pos.X(), Y: pos.Y(), Z: pos.Z()}
	c.RLCamera.Target = rl.Vector3{X: c.CurrentLookAt.X(), Y: c.CurrentLookAt.Y(), Z: c.CurrentLookAt.Z()}
}

// HandleInput processa zoom (scroll), órbita (botão do meio) e pan (WASD).
// Retorna true se houve qualquer input de câmera.
func (c *Controller) HandleInput(dt float32) bool {
	moved := false

	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		moved = true
		c.TargetZoom = util.Clamp(c.TargetZoom-wheel*c.ZoomSpeed, c.MinZoom, c.MaxZoom)
	}

	if rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			moved = true
		}
		c.AngleY -= delta.X * c.RotateSpeed * 0.005
		c.AngleX -= delta.Y * c.RotateSpeed * 0.005

		// Clamp na elevação para não virar a câmera de ponta cabeça
		c.AngleX = util.Clamp(c.AngleX, -89.0*rl.Deg2rad, -5.0*rl.Deg2rad)
	}

	// Pan WASD relativo à câmera, projetado no plano do chão
	camPos := mgl32.Vec3{c.RLCamera.Position.X, c.RLCamera.Position.Y, c.RLCamera.Position.Z}
	forward := c.TargetLookAt.Sub(camPos)
	forward[1] = 0
	if forward.Len() == 0 {
		return moved
	}
	forward = forward.Normalize()
	right := forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()

	// Velocidade proporcional ao zoom: mais longe, mais rápido
	speed := c.MoveSpeed * (c.CurrentZoom / 35.0) * dt

	move := mgl32.Vec3{}
	if rl.IsKeyDown(rl.KeyW) {
		move = move.Add(forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		move = move.Sub(forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		move = move.Add(right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		move = move.Sub(right)
	}

	if move.Len() > 0 {
		c.TargetLookAt = c.TargetLookAt.Add(move.Normalize().Mul(speed))
		moved = true
	}

	return moved
}

package scenes

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/scrollscene/pkg/game"
)

// nearPlane 近裁剪面距离
const nearPlane = 0.1

// Projector 把世界坐标投影到屏幕像素
type Projector struct {
	pos     mgl64.Vec3
	inv     mgl64.Quat
	tanHalf float64
	width   float64
	height  float64
}

// NewProjector 由一帧的镜头状态构造投影器
func NewProjector(cam game.CameraFrame, width, height int) Projector {
	o := cam.Orientation
	q := mgl64.Quat{W: o[3], V: mgl64.Vec3{o[0], o[1], o[2]}}
	return Projector{
		pos:     cam.Position,
		inv:     q.Conjugate(),
		tanHalf: math.Tan(mgl64.DegToRad(cam.FOV) / 2),
		width:   float64(width),
		height:  float64(height),
	}
}

// Project 投影一个世界坐标点
//
// 返回:
//   - x, y: 屏幕像素坐标
//   - depth: 到镜头的距离（沿视线）
//   - ok: 点在近裁剪面之前时为 true
func (p Projector) Project(world mgl64.Vec3) (x, y, depth float64, ok bool) {
	c := p.inv.Rotate(world.Sub(p.pos))
	depth = -c.Z()
	if depth < nearPlane {
		return 0, 0, depth, false
	}
	aspect := p.width / p.height
	ndcX := c.X() / depth / (p.tanHalf * aspect)
	ndcY := c.Y() / depth / p.tanHalf
	x = (ndcX + 1) / 2 * p.width
	y = (1 - ndcY) / 2 * p.height
	return x, y, depth, true
}

// PixelsPerUnit 深度 depth 处一个世界单位对应的像素数
func (p Projector) PixelsPerUnit(depth float64) float64 {
	if depth < nearPlane {
		depth = nearPlane
	}
	return p.height / (2 * depth * p.tanHalf)
}

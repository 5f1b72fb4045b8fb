package components

import "github.com/go-gl/mathgl/mgl64"

// CardComponent 服务网格中的单张卡片
type CardComponent struct {
	Title string

	// Position 网格局部坐标（未乘网格缩放）
	Position mgl64.Vec3

	// Scale 悬停缩放（阻尼）
	Scale float64

	// Lift 悬停抬升（阻尼）
	Lift float64
}

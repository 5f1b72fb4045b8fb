package components

import "github.com/go-gl/mathgl/mgl64"

// LightComponent 方向光目标与阴影视锥状态
type LightComponent struct {
	// Target 方向光的目标点
	Target mgl64.Vec3

	// ShadowHalfExtent 阴影正交视锥的半宽
	ShadowHalfExtent float64

	// PrevBlend 上一次重算阴影视锥时的混合量
	PrevBlend float64

	// ShadowRevision 阴影视锥被重算的次数，渲染端据此判断是否需要更新投影矩阵
	ShadowRevision int
}

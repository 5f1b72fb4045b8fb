package systems

import (
	"github.com/go-gl/mathgl/mgl64"
)

// 镜头朝向
// 镜头坐标系约定：局部 -Z 为视线方向，+Y 为上方，+X 为右方。

var worldUp = mgl64.Vec3{0, 1, 0}

// degenerateEpsilon 叉积长度平方低于该值时视为视线与世界上方向平行
const degenerateEpsilon = 1e-12

// BasisQuat 由正交基构造旋转
// right/up/back 分别是镜头局部 +X/+Y/+Z 在世界空间中的方向
func BasisQuat(right, up, back mgl64.Vec3) mgl64.Quat {
	m := mgl64.Mat4{
		right[0], right[1], right[2], 0,
		up[0], up[1], up[2], 0,
		back[0], back[1], back[2], 0,
		0, 0, 0, 1,
	}
	return mgl64.Mat4ToQuat(m).Normalize()
}

// LookAtQuat 计算从 eye 看向 target 的镜头朝向（世界上方向为 +Y）
//
// eye 与 target 重合时返回单位旋转。
// 视线垂直向上或向下时右方向取世界 +X，与 DownwardQuat 一致。
func LookAtQuat(eye, target mgl64.Vec3) mgl64.Quat {
	dir := target.Sub(eye)
	if dir.Dot(dir) < degenerateEpsilon {
		return mgl64.QuatIdent()
	}
	forward := dir.Normalize()

	right := forward.Cross(worldUp)
	if right.Dot(right) < degenerateEpsilon {
		right = mgl64.Vec3{1, 0, 0}
	} else {
		right = right.Normalize()
	}
	up := right.Cross(forward)
	return BasisQuat(right, up, forward.Mul(-1))
}

// DownwardQuat 固定的俯视朝向
// 视线竖直向下，右方为世界 +X，上方指向观察者 (-Z)
func DownwardQuat() mgl64.Quat {
	return BasisQuat(
		mgl64.Vec3{1, 0, 0},
		mgl64.Vec3{0, 0, -1},
		mgl64.Vec3{0, 1, 0},
	)
}

// SlerpShortest 沿最短弧的球面插值
func SlerpShortest(from, to mgl64.Quat, amount float64) mgl64.Quat {
	if amount <= 0 {
		return from
	}
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	return mgl64.QuatSlerp(from, to, amount)
}

// Forward 镜头视线方向（局部 -Z 旋转到世界空间）
func Forward(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(mgl64.Vec3{0, 0, -1})
}

// Package utils 提供通用工具函数
package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Easing & Interpolation (缓动与插值)
//
// 滚动驱动的镜头、鱼和灯光都依赖这里的纯数学函数。
// 所有函数无副作用，可以在每帧任意次数调用。

// minRangeWidth 区间映射的最小分母，避免零宽区间除零
const minRangeWidth = 1e-6

// EaseSmoothstep 平滑阶梯缓动
// 特点：两端导数为 0，中点为 0.5
// 公式：f(t) = t²(3 - 2t)
func EaseSmoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpAngle 角度感知的线性插值
// 总是沿最短弧从 start 转向 end（差值被折叠到 [-π, π)）
//
// 参数:
//   - start: 当前角度（弧度）
//   - end: 目标角度（弧度）
//   - amount: 插值系数
//
// 返回:
//   - 插值后的角度（未归一化）
func LerpAngle(start, end, amount float64) float64 {
	diff := math.Mod(end-start+math.Pi*3, math.Pi*2)
	if diff < 0 {
		// Go 的 Mod 保留被除数符号，这里折回 [0, 2π)
		diff += math.Pi * 2
	}
	diff -= math.Pi
	return start + diff*amount
}

// ExpAlpha 指数衰减的帧混合系数
// 用于帧率无关的阻尼：x += (target - x) * ExpAlpha(dt, hz)
// 公式：1 - e^(-hz·dt)
func ExpAlpha(dt, hz float64) float64 {
	return 1 - math.Exp(-hz*dt)
}

// Clamp 将 x 限制在 [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Map01 将 x 从区间 [a, b] 映射到 [0, 1] 并截断
// 区间宽度小于 1e-6 时按 1e-6 计算，零宽区间不会除零
func Map01(x, a, b float64) float64 {
	return Clamp((x-a)/math.Max(minRangeWidth, b-a), 0, 1)
}

// SnapNear 当 x 与 target 的距离小于 eps 时直接返回 target
// 用于消除阻尼量在曲线拐点附近的无限抖动
func SnapNear(x, target, eps float64) float64 {
	if math.Abs(x-target) < eps {
		return target
	}
	return x
}

// IsFinite 判断 x 既不是 NaN 也不是 ±Inf
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// LerpVec3 三维向量线性插值
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

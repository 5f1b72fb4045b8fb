package utils

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// TestEaseSmoothstep 测试平滑阶梯缓动
func TestEaseSmoothstep(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"中点", 0.5, 0.5},
		{"终点", 1.0, 1.0},
		{"四分之一", 0.25, 0.15625}, // 0.0625 * 2.5
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseSmoothstep(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseSmoothstep(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	t.Run("单调递增", func(t *testing.T) {
		prev := EaseSmoothstep(0)
		for p := 0.01; p <= 1.0; p += 0.01 {
			v := EaseSmoothstep(p)
			if v < prev {
				t.Errorf("EaseSmoothstep(%v) = %v 小于前一个值 %v", p, v, prev)
			}
			prev = v
		}
	})
}

// TestLerpAngle 测试角度插值走最短弧
func TestLerpAngle(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		end      float64
		amount   float64
		expected float64
	}{
		{"同角度", 1.0, 1.0, 0.5, 1.0},
		{"完整插值", 0, math.Pi / 2, 1, math.Pi / 2},
		{"半程", 0, math.Pi / 2, 0.5, math.Pi / 4},
		{"跨越 ±π", math.Pi - 0.1, -math.Pi + 0.1, 1, math.Pi + 0.1},
		{"负方向", 0.5, -0.5, 1, -0.5},
		{"零系数", 2.0, -2.0, 0, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := LerpAngle(tt.start, tt.end, tt.amount)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("LerpAngle(%v, %v, %v) = %v, 期望 %v", tt.start, tt.end, tt.amount, result, tt.expected)
			}
		})
	}
}

// TestExpAlpha 测试指数衰减系数
func TestExpAlpha(t *testing.T) {
	if got := ExpAlpha(0, 6); got != 0 {
		t.Errorf("ExpAlpha(0, 6) = %v, 期望 0", got)
	}
	if got := ExpAlpha(1, math.Log(2)); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("ExpAlpha(1, ln2) = %v, 期望 0.5", got)
	}
	if got := ExpAlpha(10, 8); got <= 0.999 || got > 1 {
		t.Errorf("ExpAlpha(10, 8) = %v, 期望接近 1", got)
	}
}

// TestMap01 测试区间映射
func TestMap01(t *testing.T) {
	tests := []struct {
		name     string
		x, a, b  float64
		expected float64
	}{
		{"区间内", 0.36, 0.2, 0.52, 0.5},
		{"低于下界", -1, 0.2, 0.52, 0},
		{"高于上界", 2, 0.2, 0.52, 1},
		{"零宽区间-左", 0.1, 0.5, 0.5, 0},
		{"零宽区间-右", 0.6, 0.5, 0.5, 1},
		{"反向区间", 0.3, 0.5, 0.2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Map01(tt.x, tt.a, tt.b)
			if math.IsNaN(result) || math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Map01(%v, %v, %v) = %v, 期望 %v", tt.x, tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

// TestSnapNear 测试吸附
func TestSnapNear(t *testing.T) {
	if got := SnapNear(0.4995, 0.5, 1e-3); got != 0.5 {
		t.Errorf("SnapNear 应吸附到 0.5, got %v", got)
	}
	if got := SnapNear(0.49, 0.5, 1e-3); got != 0.49 {
		t.Errorf("SnapNear 不应吸附, got %v", got)
	}
}

// TestIsFinite 测试非有限值判断
func TestIsFinite(t *testing.T) {
	if !IsFinite(0.5) {
		t.Error("0.5 应该是有限值")
	}
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if IsFinite(v) {
			t.Errorf("%v 不应是有限值", v)
		}
	}
}

// TestLerpVec3 测试向量插值
func TestLerpVec3(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{2, -4, 6}
	got := LerpVec3(a, b, 0.5)
	if !got.ApproxEqual(mgl64.Vec3{1, -2, 3}) {
		t.Errorf("LerpVec3 = %v, 期望 (1, -2, 3)", got)
	}
}

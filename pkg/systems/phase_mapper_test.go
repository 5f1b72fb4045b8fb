package systems

import (
	"math"
	"testing"

	"github.com/gonewx/scrollscene/pkg/config"
	"github.com/stretchr/testify/assert"
)

// TestMapPhase_Monotonic 测试 t 随偏移单调不减
func TestMapPhase_Monotonic(t *testing.T) {
	cam := config.DefaultSceneConfig().Camera

	prev := MapPhase(0, cam).T
	for i := 1; i <= 1000; i++ {
		offset := float64(i) / 1000
		cur := MapPhase(offset, cam).T
		if cur < prev {
			t.Fatalf("t decreased at offset %.3f: %v -> %v", offset, prev, cur)
		}
		prev = cur
	}
}

// TestMapPhase_Boundaries 测试分段边界上的精确值
func TestMapPhase_Boundaries(t *testing.T) {
	cam := config.DefaultSceneConfig().Camera

	tests := []struct {
		name     string
		offset   float64
		wantT    float64
		wantHold bool
	}{
		{"heroHoldEnd", cam.HeroHoldEnd, 0, false},
		{"heroMoveEnd", cam.HeroMoveEnd, 0.5, false},
		{"servicesStart", cam.ServicesStart, 0.5, true},
		{"end", 1.0, 1.0, false},
		{"About 停留区中部", (cam.HeroMoveEnd + cam.ServicesStart) / 2, 0.5, true},
		{"负偏移等同 0", -0.3, 0, false},
		{"超过 1 等同 1", 1.7, 1.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapPhase(tt.offset, cam)
			assert.InDelta(t, tt.wantT, got.T, 1e-12)
			assert.Equal(t, tt.wantHold, got.HoldAbout)
		})
	}
}

// TestMapPhase_Scenarios 测试首屏停留与过渡中点
func TestMapPhase_Scenarios(t *testing.T) {
	cam := config.DefaultSceneConfig().Camera

	assert.Equal(t, 0.0, MapPhase(0.05, cam).T, "hero hold")
	// 0.36 恰好位于 0.20 和 0.52 中间，smoothstep(0.5) = 0.5
	assert.InDelta(t, 0.25, MapPhase(0.36, cam).T, 1e-9, "mid transition")
}

// TestMapPhase_ZeroWidthRange 测试零宽区间不会产生 NaN
func TestMapPhase_ZeroWidthRange(t *testing.T) {
	cam := config.CameraConfig{HeroHoldEnd: 0.3, HeroMoveEnd: 0.3, ServicesStart: 1}

	for _, offset := range []float64{0, 0.3, 0.3000001, 0.5, 1} {
		got := MapPhase(offset, cam)
		if math.IsNaN(got.T) || math.IsInf(got.T, 0) {
			t.Errorf("MapPhase(%v) = %v, want finite", offset, got.T)
		}
	}
	assert.Equal(t, 1.0, MapPhase(1, cam).T)
}

// TestCurveTarget 测试曲线参数目标按拐点重新分配
func TestCurveTarget(t *testing.T) {
	cam := config.DefaultSceneConfig().Camera
	const split = 0.6

	assert.Equal(t, 0.0, CurveTarget(0.1, split, cam))
	assert.InDelta(t, split/2, CurveTarget(0.36, split, cam), 1e-12, "线性映射，不缓动")
	assert.Equal(t, split, CurveTarget(cam.HeroMoveEnd, split, cam))
	assert.Equal(t, split, CurveTarget(0.6, split, cam))
	assert.InDelta(t, split+(1-split)*0.5, CurveTarget(0.875, split, cam), 1e-12)
	assert.Equal(t, 1.0, CurveTarget(1, split, cam))
}

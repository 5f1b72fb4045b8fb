package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/scrollscene/pkg/components"
	"github.com/gonewx/scrollscene/pkg/config"
	"github.com/stretchr/testify/assert"
)

// TestTextSystem 测试文字层随偏移的变化
func TestTextSystem(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	state := &components.TextComponent{}
	ts := NewTextSystem(cfg, state)

	tests := []struct {
		name        string
		offset      float64
		wantOpacity float64
		wantSlide   float64
	}{
		{"首屏停留", 0.05, 1, 0},
		{"过渡中点", 0.36, 0.5, 1},
		{"过渡结束", 0.52, 0, 2},
		{"Services", 0.9, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.Update(tt.offset)
			for i, h := range state.Headlines {
				base := cfg.Text.HeadlinePositions[i]
				want := base.X - tt.wantSlide
				if i == 1 {
					want = base.X + tt.wantSlide
				}
				assert.InDelta(t, want, h.X, 1e-9, "headline %d x", i)
				assert.Equal(t, base.Y, h.Y)
				assert.InDelta(t, tt.wantOpacity, h.Opacity, 1e-9, "headline %d opacity", i)
			}
			assert.InDelta(t, -4.7+5*tt.offset, state.SubtextY, 1e-9)
			assert.InDelta(t, tt.wantOpacity, state.SubtextOpacity, 1e-9)
		})
	}
}

// TestTextSystem_AboutDriftClamped 测试 About 块位移在 ServicesStart 处停止
func TestTextSystem_AboutDriftClamped(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	state := &components.TextComponent{}
	ts := NewTextSystem(cfg, state)

	ts.Update(0.5)
	assert.InDelta(t, -0.25, state.AboutY, 1e-12)
	ts.Update(0.95)
	assert.InDelta(t, cfg.Camera.ServicesStart*-0.5, state.AboutY, 1e-12)
}

// TestLightingSystem 测试灯光目标混合与阴影视锥节流
func TestLightingSystem(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	anchor := mgl64.Vec3{-6, -18, 0}
	state := &components.LightComponent{}
	ls := NewLightingSystem(&cfg.Light, &cfg.Timing, state, anchor)

	assert.Equal(t, 60.0, state.ShadowHalfExtent)

	// 变化小于阈值：目标更新，视锥不重算
	ls.Update(0.04)
	assertVecNear(t, anchor.Mul(0.04), state.Target, 1e-12)
	assert.Equal(t, 60.0, state.ShadowHalfExtent)
	assert.Equal(t, 0, state.ShadowRevision)

	ls.Update(0.5)
	assert.InDelta(t, 38.0, state.ShadowHalfExtent, 1e-12)
	assert.Equal(t, 1, state.ShadowRevision)
	assert.Equal(t, 0.5, state.PrevBlend)

	ls.Update(0.52)
	assert.Equal(t, 1, state.ShadowRevision, "small change must not recompute")

	ls.Update(1)
	assert.InDelta(t, 16.0, state.ShadowHalfExtent, 1e-12)
	assertVecNear(t, anchor, state.Target, 1e-12)
}

// TestComputeLayout 测试响应式布局
func TestComputeLayout(t *testing.T) {
	cfg := config.DefaultSceneConfig()

	wide := ComputeLayout(Viewport{Width: 16, Height: 9}, 1, cfg)
	assertVecNear(t, mgl64.Vec3{-6, -18, 0}, wide.AboutTextPos, 1e-12)
	assert.InDelta(t, 0.8, wide.ResponsiveScale, 1e-12)
	assert.InDelta(t, 16*0.35, wide.AboutRadiusX, 1e-12)
	assert.False(t, wide.Narrow)
	assert.False(t, wide.LowPerf)
	assert.Equal(t, 1024, wide.ShadowMapSize)
	assert.InDelta(t, 3.52, wide.GutterX, 1e-12)
	assertVecNear(t, mgl64.Vec3{-6 + 5 + 3.52, -21, 0}, wide.AboutSubtextPos, 1e-12)
	assert.Equal(t, -28.0, wide.GroundY)

	narrow := ComputeLayout(Viewport{Width: 6, Height: 10}, 1, cfg)
	assert.True(t, narrow.Narrow)
	assert.True(t, narrow.LowPerf)
	assert.Equal(t, 512, narrow.ShadowMapSize)
	assert.Equal(t, 0.0, narrow.GutterX)
	assert.InDelta(t, 0.4, narrow.ResponsiveScale, 1e-12)
	assertVecNear(t, mgl64.Vec3{-1 + 5, -24, 0}, narrow.AboutSubtextPos, 1e-12)

	retina := ComputeLayout(Viewport{Width: 16, Height: 9}, 2, cfg)
	assert.True(t, retina.LowPerf)
	assert.Equal(t, 32, retina.EnvResolution)
}

// TestViewportAt 测试透视可见尺寸
func TestViewportAt(t *testing.T) {
	vp := ViewportAt(1, 90, 2)
	assert.InDelta(t, 2.0, vp.Height, 1e-12)
	assert.InDelta(t, 4.0, vp.Width, 1e-12)
	assert.InDelta(t, 4.0, WorldWidthAt(1, 90, 2), 1e-12)
}

// TestReveal 测试副文字出现动画
func TestReveal(t *testing.T) {
	half := 0.5
	over := 3.0

	assert.Equal(t, RevealState{Y: 0.3}, Reveal(RevealFadeUp, new(float64), false))
	assert.Equal(t, RevealState{Opacity: 1}, Reveal(RevealFadeUp, &over, false))
	got := Reveal(RevealFadeUp, &half, false)
	assert.InDelta(t, 0.15, got.Y, 1e-12)
	assert.InDelta(t, 0.5, got.Opacity, 1e-12)

	got = Reveal(RevealX, &half, false)
	assert.InDelta(t, -0.25, got.X, 1e-12)

	assert.Equal(t, RevealState{Opacity: 1}, Reveal(RevealX, nil, true))
	assert.Equal(t, RevealState{X: -0.5}, Reveal(RevealX, nil, false))
	assert.Equal(t, RevealState{}, Reveal("", nil, false))
}

package systems

import (
	"math"
	"testing"

	"github.com/gonewx/scrollscene/pkg/components"
	"github.com/gonewx/scrollscene/pkg/config"
	"github.com/stretchr/testify/assert"
)

// TestScrollSystem_Sample 测试速度与历史
func TestScrollSystem_Sample(t *testing.T) {
	cfg := config.DefaultSceneConfig().Scroll
	state := &components.ScrollComponent{}
	ss := NewScrollSystem(state, &cfg)

	ss.Sample(0.1, 0.1)
	assert.InDelta(t, 1.0, state.Velocity, 1e-12)
	ss.Commit()

	ss.Sample(0.1, 0.1)
	assert.Equal(t, 0.0, state.Velocity)
	assert.InDelta(t, 0.5, state.AvgVelocity, 1e-12)
	ss.Commit()

	// NaN 沿用上一帧
	got := ss.Sample(math.NaN(), 0.1)
	assert.Equal(t, 0.1, got)
	assert.Equal(t, 0.0, state.Velocity)
	assert.Equal(t, 3, state.History.Len())
}

// TestScrollSystem_ZeroDt 测试 dt=0 时不产生速度样本
func TestScrollSystem_ZeroDt(t *testing.T) {
	cfg := config.DefaultSceneConfig().Scroll
	state := &components.ScrollComponent{}
	ss := NewScrollSystem(state, &cfg)

	ss.Sample(0.2, 1.0/60)
	ss.Commit()
	before := *state
	ss.Sample(0.2, 0)
	ss.Commit()
	assert.Equal(t, before, *state)
}

// TestScrollDriver 测试滚轮驱动
func TestScrollDriver(t *testing.T) {
	d := NewScrollDriver(2.5, 0.3)

	// 1.5 个视口的可滚动距离
	d.Wheel(540, 720)
	assert.InDelta(t, 0.5, d.Target(), 1e-12)

	d.Wheel(1e6, 720)
	assert.Equal(t, 1.0, d.Target())
	d.Wheel(-1e6, 720)
	assert.Equal(t, 0.0, d.Target())

	d.SetTarget(0.8)
	d.SetTarget(math.NaN())
	assert.Equal(t, 0.8, d.Target())

	first := d.Update(1.0 / 60)
	assert.Greater(t, first, 0.0)
	assert.Less(t, first, 0.8)
	for i := 0; i < 600; i++ {
		d.Update(1.0 / 60)
	}
	assert.InDelta(t, 0.8, d.Offset(), 1e-6)

	instant := NewScrollDriver(2.5, 0)
	instant.SetTarget(0.4)
	assert.Equal(t, 0.4, instant.Update(1.0/60))
}

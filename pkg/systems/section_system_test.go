package systems

import (
	"testing"

	"github.com/gonewx/scrollscene/pkg/components"
	"github.com/gonewx/scrollscene/pkg/config"
	"github.com/stretchr/testify/assert"
)

func hysteresisCamera() config.CameraConfig {
	return config.CameraConfig{HeroHoldEnd: 0.2, HeroMoveEnd: 0.4, ServicesStart: 0.8}
}

// TestClassify 测试分区判定和滞回带
func TestClassify(t *testing.T) {
	cam := config.DefaultSceneConfig().Camera
	const th = 0.1

	tests := []struct {
		name   string
		offset float64
		prev   components.Section
		want   components.Section
	}{
		{"首屏", 0.05, components.SectionAbout, components.SectionHero},
		{"Hero 边界内侧", cam.HeroMoveEnd - th, components.SectionServices, components.SectionHero},
		{"About 区", 0.64, components.SectionHero, components.SectionAbout},
		{"Services 区", 0.9, components.SectionHero, components.SectionServices},
		{"滞回带保持 Hero", 0.5, components.SectionHero, components.SectionHero},
		{"滞回带保持 About", 0.5, components.SectionAbout, components.SectionAbout},
		{"Services 滞回带保持", 0.8, components.SectionServices, components.SectionServices},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.offset, tt.prev, cam, th))
		})
	}
}

// TestClassify_Hysteresis 测试在边界附近振荡
func TestClassify_Hysteresis(t *testing.T) {
	cam := hysteresisCamera()
	const th = 0.1
	boundary := cam.HeroMoveEnd

	for _, start := range []components.Section{components.SectionHero, components.SectionAbout} {
		cur := start
		for i := 0; i < 50; i++ {
			offset := boundary + th/2
			if i%2 == 1 {
				offset = boundary - th/2
			}
			cur = Classify(offset, cur, cam, th)
		}
		assert.Equal(t, start, cur, "±th/2 oscillation must not change section")
	}

	cur := components.SectionHero
	cur = Classify(boundary+1.5*th, cur, cam, th)
	assert.Equal(t, components.SectionAbout, cur)
	cur = Classify(boundary-1.5*th, cur, cam, th)
	assert.Equal(t, components.SectionHero, cur)
}

// TestSectionChange_IsFastReverse 测试只有 Services→About 的快速回滚会触发锁定
func TestSectionChange_IsFastReverse(t *testing.T) {
	tests := []struct {
		name   string
		change SectionChange
		vel    float64
		want   bool
	}{
		{"快速回滚", SectionChange{true, components.SectionServices, components.SectionAbout}, -5, true},
		{"慢速回滚", SectionChange{true, components.SectionServices, components.SectionAbout}, -1, false},
		{"快速前进", SectionChange{true, components.SectionAbout, components.SectionServices}, 5, false},
		{"Hero→Services 不锁定", SectionChange{true, components.SectionHero, components.SectionServices}, 5, false},
		{"未切换", SectionChange{false, components.SectionServices, components.SectionAbout}, -5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.change.IsFastReverse(tt.vel, 2))
		})
	}
}

// TestSectionSystem_Progress 测试切换记录和过渡进度
func TestSectionSystem_Progress(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	state := &components.SectionComponent{}
	ss := NewSectionSystem(state, cfg)

	change := ss.Update(0.64, 2.0)
	assert.True(t, change.Changed)
	assert.Equal(t, components.SectionAbout, ss.Current())
	assert.Equal(t, components.SectionHero, state.Previous)
	assert.Equal(t, 2.0, state.LastChange)
	assert.Equal(t, 0.0, state.TransitionProgress)

	change = ss.Update(0.64, 2.25)
	assert.False(t, change.Changed)
	assert.InDelta(t, 0.5, state.TransitionProgress, 1e-12)

	ss.Update(0.64, 10)
	assert.Equal(t, 1.0, state.TransitionProgress)
}

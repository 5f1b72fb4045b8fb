package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/scrollscene/pkg/components"
	"github.com/gonewx/scrollscene/pkg/config"
	"github.com/gonewx/scrollscene/pkg/utils"
)

// LightingSystem 方向光编排
//
// 光照目标从原点混合到 About 文字锚点。阴影视锥半宽从 ShadowWide 收紧到 ShadowTight，
// 但只有 blend 相对上次重算移动超过 LightUpdateT 时才重算，
// 渲染端根据 ShadowRevision 判断是否需要更新阴影投影。
type LightingSystem struct {
	light  *config.LightConfig
	timing *config.TimingConfig
	state  *components.LightComponent
	anchor mgl64.Vec3
}

// NewLightingSystem 创建灯光编排系统
func NewLightingSystem(light *config.LightConfig, timing *config.TimingConfig, state *components.LightComponent, anchor mgl64.Vec3) *LightingSystem {
	state.ShadowHalfExtent = light.ShadowWide
	state.PrevBlend = 0
	return &LightingSystem{light: light, timing: timing, state: state, anchor: anchor}
}

// SetAnchor 更新 About 锚点（视口变化后）
func (ls *LightingSystem) SetAnchor(anchor mgl64.Vec3) { ls.anchor = anchor }

// Update 根据混合量更新灯光
func (ls *LightingSystem) Update(blend float64) {
	s := ls.state
	s.Target = utils.LerpVec3(mgl64.Vec3{}, ls.anchor, blend)

	if math.Abs(s.PrevBlend-blend) > ls.timing.LightUpdateT {
		s.PrevBlend = blend
		s.ShadowHalfExtent = utils.Lerp(ls.light.ShadowWide, ls.light.ShadowTight, blend)
		s.ShadowRevision++
	}
}

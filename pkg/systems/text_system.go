package systems

import (
	"math"

	"github.com/gonewx/scrollscene/pkg/components"
	"github.com/gonewx/scrollscene/pkg/config"
	"github.com/gonewx/scrollscene/pkg/utils"
)

// TextSystem 文字层编排
//
// 只依赖滚动偏移：
//   - 标题在 Hero→About 移动窗口内水平滑出并淡出（第二行向右，其余向左）
//   - 副标题随偏移线性上移，同窗口淡出
//   - About 文字块随偏移缓慢下移，到 ServicesStart 为止
type TextSystem struct {
	cfg   *config.SceneConfig
	state *components.TextComponent
}

// NewTextSystem 创建文字编排系统
func NewTextSystem(cfg *config.SceneConfig, state *components.TextComponent) *TextSystem {
	ts := &TextSystem{cfg: cfg, state: state}
	ts.Update(0)
	return ts
}

// Update 根据偏移更新文字层
func (ts *TextSystem) Update(offset float64) {
	cam := ts.cfg.Camera
	text := ts.cfg.Text
	s := ts.state

	t := utils.Map01(offset, cam.HeroHoldEnd, cam.HeroMoveEnd)
	for i := range s.Headlines {
		base := text.HeadlinePositions[i]
		slide := -text.HeadlineSlide * t
		if i == 1 {
			slide = text.HeadlineSlide * t
		}
		s.Headlines[i] = components.HeadlineState{
			X:       base.X + slide,
			Y:       base.Y,
			Opacity: 1 - t,
		}
	}

	s.SubtextY = text.SubtextInitialY + offset*text.SubtextRise
	s.SubtextOpacity = 1 - t
	s.AboutY = math.Min(offset, cam.ServicesStart) * text.AboutDrift
}

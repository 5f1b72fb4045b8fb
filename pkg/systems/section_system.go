package systems

import (
	"log"
	"math"

	"github.com/gonewx/scrollscene/pkg/components"
	"github.com/gonewx/scrollscene/pkg/config"
)

// Classify 带滞回的分区判定
//
// 只有偏移越过分区边界再加上 threshold 时才切换分区；
// 落在边界附近的滞回带内时保持 prev 不变，避免在边界来回闪烁。
func Classify(offset float64, prev components.Section, cam config.CameraConfig, threshold float64) components.Section {
	switch {
	case offset <= cam.HeroMoveEnd-threshold:
		return components.SectionHero
	case offset >= cam.ServicesStart+threshold:
		return components.SectionServices
	case offset >= cam.HeroMoveEnd+threshold && offset <= cam.ServicesStart-threshold:
		return components.SectionAbout
	default:
		return prev
	}
}

// SectionChange 一帧内的分区切换结果
type SectionChange struct {
	Changed bool
	From    components.Section
	To      components.Section
}

// IsFastReverse 是否为需要锁定朝向的快速回滚（Services → About）
//
// 只对这一个方向生效，其它方向的快速切换不锁定。
func (c SectionChange) IsFastReverse(avgVelocity, threshold float64) bool {
	return c.Changed &&
		c.From == components.SectionServices &&
		c.To == components.SectionAbout &&
		math.Abs(avgVelocity) > threshold
}

// SectionSystem 分区状态机
type SectionSystem struct {
	state *components.SectionComponent
	cfg   *config.SceneConfig
}

// NewSectionSystem 创建分区状态机
// 初始分区为 Hero，过渡视为已完成
func NewSectionSystem(state *components.SectionComponent, cfg *config.SceneConfig) *SectionSystem {
	state.Current = components.SectionHero
	state.Previous = components.SectionHero
	state.TransitionProgress = 1
	return &SectionSystem{state: state, cfg: cfg}
}

// Update 判定本帧分区并更新过渡进度
//
// 参数:
//   - offset: 本帧滚动偏移
//   - now: 场景时钟（秒）
func (ss *SectionSystem) Update(offset, now float64) SectionChange {
	s := ss.state
	next := Classify(offset, s.Current, ss.cfg.Camera, ss.cfg.Scroll.SectionThreshold)

	change := SectionChange{From: s.Current, To: next}
	if next != s.Current {
		log.Printf("[SectionSystem] %s -> %s at offset %.3f", s.Current, next, offset)
		s.Previous = s.Current
		s.Current = next
		s.LastChange = now
		change.Changed = true
	}

	s.TransitionProgress = math.Min((now-s.LastChange)/ss.cfg.Scroll.TransitionDuration, 1)
	return change
}

// Current 当前分区
func (ss *SectionSystem) Current() components.Section { return ss.state.Current }

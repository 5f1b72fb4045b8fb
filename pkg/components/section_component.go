package components

import "fmt"

// Section 页面分区
type Section int

const (
	// SectionHero 首屏
	SectionHero Section = iota
	// SectionAbout 关于
	SectionAbout
	// SectionServices 服务
	SectionServices
)

// String 返回分区名称
func (s Section) String() string {
	switch s {
	case SectionHero:
		return "hero"
	case SectionAbout:
		return "about"
	case SectionServices:
		return "services"
	default:
		return "unknown"
	}
}

// MarshalText 以名称形式序列化（用于 YAML/JSON 输出）
func (s Section) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText 从名称解析
func (s *Section) UnmarshalText(text []byte) error {
	switch string(text) {
	case "hero":
		*s = SectionHero
	case "about":
		*s = SectionAbout
	case "services":
		*s = SectionServices
	default:
		return fmt.Errorf("unknown section %q", text)
	}
	return nil
}

// SectionComponent 分区状态机的状态
type SectionComponent struct {
	// Current 当前已提交的分区
	Current Section

	// Previous 上一次切换前的分区
	Previous Section

	// LastChange 上一次切换的时间（秒，场景时钟）
	LastChange float64

	// TransitionProgress 切换后的过渡进度 [0,1]
	TransitionProgress float64
}

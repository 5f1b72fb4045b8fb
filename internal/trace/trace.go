// Package trace 回放滚动轨迹，离线生成场景帧
package trace

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/gonewx/scrollscene/pkg/config"
	"github.com/gonewx/scrollscene/pkg/game"
	"github.com/gonewx/scrollscene/pkg/utils"
	"gopkg.in/yaml.v3"
)

// ErrEmptyTrace 轨迹没有关键帧
var ErrEmptyTrace = errors.New("trace has no keyframes")

// Keyframe 滚动轨迹关键帧
type Keyframe struct {
	T      float64 `yaml:"t"`
	Offset float64 `yaml:"offset"`
}

// Trace 按时间排序的关键帧
type Trace []Keyframe

// Load 从 YAML 文件读取轨迹
func Load(path string) (Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace %s: %w", path, err)
	}
	tr, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid trace %s: %w", path, err)
	}
	return tr, nil
}

// Parse 解析 YAML 关键帧列表 [{t, offset}]，结果按时间排序
func Parse(data []byte) (Trace, error) {
	var tr Trace
	if err := yaml.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(tr) == 0 {
		return nil, ErrEmptyTrace
	}
	for i, k := range tr {
		if !utils.IsFinite(k.T) || k.T < 0 {
			return nil, fmt.Errorf("keyframe %d: invalid time %v", i, k.T)
		}
	}
	sort.SliceStable(tr, func(i, j int) bool { return tr[i].T < tr[j].T })
	return tr, nil
}

// Duration 最后一个关键帧的时间
func (tr Trace) Duration() float64 {
	if len(tr) == 0 {
		return 0
	}
	return tr[len(tr)-1].T
}

// OffsetAt 在关键帧之间线性插值；两端之外保持端点值
func (tr Trace) OffsetAt(t float64) float64 {
	if len(tr) == 0 {
		return 0
	}
	if t <= tr[0].T {
		return tr[0].Offset
	}
	i := sort.Search(len(tr), func(i int) bool { return tr[i].T >= t })
	if i == len(tr) {
		return tr[len(tr)-1].Offset
	}
	a, b := tr[i-1], tr[i]
	if b.T-a.T <= 0 {
		return b.Offset
	}
	return a.Offset + (b.Offset-a.Offset)*(t-a.T)/(b.T-a.T)
}

// Options 回放参数
type Options struct {
	// FPS 模拟帧率
	FPS float64
	// Every 每隔多少帧输出一次，<= 1 表示每帧
	Every int
	// Tail 轨迹结束后继续模拟的时间（秒），让阻尼收敛
	Tail float64
}

// Report 回放结果
type Report struct {
	FPS      float64      `yaml:"fps"`
	Duration float64      `yaml:"duration"`
	Frames   []game.Frame `yaml:"frames"`
}

// Replay 以固定帧率把轨迹喂给新的 Experience
func Replay(cfg *config.SceneConfig, tr Trace, opts Options) (*Report, error) {
	if len(tr) == 0 {
		return nil, ErrEmptyTrace
	}
	if !(opts.FPS > 0) {
		return nil, fmt.Errorf("fps must be positive, got %v", opts.FPS)
	}
	every := max(opts.Every, 1)

	exp, err := game.NewExperience(cfg, game.DefaultOptions(cfg))
	if err != nil {
		return nil, err
	}

	dt := 1 / opts.FPS
	total := tr.Duration() + max(opts.Tail, 0)
	steps := int(total*opts.FPS + 0.5)

	report := &Report{FPS: opts.FPS, Duration: total}
	for i := 1; i <= steps; i++ {
		t := float64(i) * dt
		frame := exp.Update(dt, t, tr.OffsetAt(t))
		if i%every == 0 || i == steps {
			report.Frames = append(report.Frames, frame)
		}
	}
	return report, nil
}

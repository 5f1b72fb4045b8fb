package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/scrollscene/pkg/components"
	"github.com/gonewx/scrollscene/pkg/config"
	"github.com/gonewx/scrollscene/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func newTestFish() (*FishSystem, *config.SceneConfig) {
	cfg := config.DefaultSceneConfig()
	layout := ComputeLayout(Viewport{Width: 16, Height: 9}, 1, cfg)
	fs := NewFishSystem(&cfg.Fish, &components.FishComponent{Name: "red"}, &components.FishComponent{Name: "black"}, layout, nil)
	return fs, cfg
}

// TestFollowStep_NoOvershoot 测试指数跟随不会越过目标
func TestFollowStep_NoOvershoot(t *testing.T) {
	target := mgl64.Vec3{10, -4, 3}
	pos := mgl64.Vec3{-2, 5, 0}
	prevDist := target.Sub(pos).Len()

	for _, dt := range []float64{1.0 / 30, 1.0 / 60, 1.0 / 144} {
		p := pos
		prev := prevDist
		for i := 0; i < 500; i++ {
			p = FollowStep(p, target, dt, 6)
			d := target.Sub(p).Len()
			if d > prev {
				t.Fatalf("dt=%v step %d: distance grew %v -> %v", dt, i, prev, d)
			}
			// 沿直线靠近，始终在起点一侧
			if p.Sub(pos).Dot(target.Sub(p)) < -1e-12 {
				t.Fatalf("dt=%v step %d: overshot target", dt, i)
			}
			prev = d
		}
	}
}

// TestFishSystem_Initial 测试初始相位与位置
func TestFishSystem_Initial(t *testing.T) {
	fs, cfg := newTestFish()

	assert.InDelta(t, cfg.Fish.PhaseTarget, fs.Follower().PathAngle-fs.Leader().PathAngle, 1e-12)
	assertVecNear(t, mgl64.Vec3{-0.5, -1, 1}, fs.Leader().Position, 1e-12)
	assertVecNear(t, mgl64.Vec3{0.5, 1, -1}, fs.Follower().Position, 1e-12)
	assert.Equal(t, fs.Leader().Position, fs.Leader().PrevPosition)
	assert.Equal(t, cfg.Fish.FollowerSpeed, fs.Follower().SpeedScale)
}

// TestFishSystem_SeededPhases 测试随机初始相位由种子决定
func TestFishSystem_SeededPhases(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	layout := ComputeLayout(Viewport{Width: 16, Height: 9}, 1, cfg)
	build := func(seed int64) *FishSystem {
		return NewFishSystem(&cfg.Fish, &components.FishComponent{}, &components.FishComponent{}, layout, rand.New(rand.NewSource(seed)))
	}

	a, b, c := build(7), build(7), build(8)
	assert.Equal(t, a.Leader().PathAngle, b.Leader().PathAngle)
	assert.Equal(t, a.Follower().PathAngle, b.Follower().PathAngle)
	assert.NotEqual(t, a.Leader().PathAngle, c.Leader().PathAngle)
	for _, fs := range []*FishSystem{a, c} {
		for _, angle := range []float64{fs.Leader().PathAngle, fs.Follower().PathAngle} {
			assert.GreaterOrEqual(t, angle, 0.0)
			assert.Less(t, angle, 2*math.Pi)
		}
	}
}

// TestFishSystem_SwimsOutToOrbit 测试鱼从出生位置游到 Hero 轨道上
func TestFishSystem_SwimsOutToOrbit(t *testing.T) {
	fs, cfg := newTestFish()
	const dt = 1.0 / 60
	for i := 0; i < 300; i++ {
		fs.AdvancePhases(dt, 0)
		fs.Update(dt, 0)
	}

	for _, f := range []*components.FishComponent{fs.Leader(), fs.Follower()} {
		r := math.Hypot(f.Position.X(), f.Position.Z())
		// 轨道在移动，稳态滞后约 orbitSpeed/followHz
		assert.InDelta(t, cfg.Fish.OrbitRadius, r, 0.2)
		assert.InDelta(t, 0, f.Position.Y(), 1e-3)
	}
}

// TestFishSystem_PhaseCoupling 测试相位耦合随 blend 减弱
func TestFishSystem_PhaseCoupling(t *testing.T) {
	const dt = 1.0 / 60

	// blend=0：黑鱼被拉回到相差 π
	fs, cfg := newTestFish()
	for i := 0; i < 60*60; i++ {
		fs.AdvancePhases(dt, 0)
	}
	diff := utils.LerpAngle(0, fs.Follower().PathAngle-fs.Leader().PathAngle, 1)
	assert.InDelta(t, math.Pi, math.Abs(diff), 0.05)

	// blend=1：没有耦合，相位各自以自己的速度前进
	fs, cfg = newTestFish()
	start := fs.Follower().PathAngle
	for i := 0; i < 600; i++ {
		fs.AdvancePhases(dt, 1)
	}
	assert.InDelta(t, start+cfg.Fish.OrbitSpeed*cfg.Fish.FollowerSpeed*10, fs.Follower().PathAngle, 1e-9)
	assert.InDelta(t, cfg.Fish.OrbitSpeed*10, fs.Leader().PathAngle, 1e-9)
}

// TestFishSystem_Target 测试 Hero 环绕与 About 椭圆的混合
func TestFishSystem_Target(t *testing.T) {
	fs, cfg := newTestFish()
	layout := fs.layout

	hero := fs.Target(0, 0)
	assertVecNear(t, mgl64.Vec3{cfg.Fish.OrbitRadius, 0, 0}, hero, 1e-12)

	about := fs.Target(math.Pi/4, 1)
	want := mgl64.Vec3{
		math.Cos(math.Pi/4) * layout.AboutRadiusX,
		layout.AboutTextPos.Y() + cfg.Fish.AboutWobble,
		math.Sin(math.Pi/4) * layout.AboutRadiusZ,
	}
	assertVecNear(t, want, about, 1e-12)

	mid := fs.Target(math.Pi/4, 0.5)
	assertVecNear(t, fs.Target(math.Pi/4, 0).Add(about).Mul(0.5), mid, 1e-12)
}

// TestFishSystem_HeadingSkippedWhenStill 测试速度接近 0 时不更新朝向
func TestFishSystem_HeadingSkippedWhenStill(t *testing.T) {
	fs, _ := newTestFish()
	leader := fs.Leader()
	leader.Yaw, leader.Pitch = 0.7, 0.1

	// dt=0 时不移动
	fs.Update(0, 0)
	assert.Equal(t, 0.7, leader.Yaw)
	assert.Equal(t, 0.1, leader.Pitch)
	assert.False(t, math.IsNaN(leader.Yaw))
}

// TestFishSystem_HeadingFollowsVelocity 测试朝向跟随运动方向
func TestFishSystem_HeadingFollowsVelocity(t *testing.T) {
	fs, _ := newTestFish()
	const dt = 1.0 / 60
	for i := 0; i < 600; i++ {
		fs.AdvancePhases(dt, 0)
		fs.Update(dt, 0)
	}

	leader := fs.Leader()
	vel := leader.Position.Sub(leader.PrevPosition)
	want := math.Atan2(vel.X(), vel.Z()) - math.Pi/2
	diff := utils.LerpAngle(leader.Yaw, want, 1) - leader.Yaw
	// 跟随存在约 orbitSpeed/turnSpeed 的稳态滞后
	assert.Less(t, math.Abs(diff), 0.2)
}

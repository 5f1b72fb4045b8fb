package systems

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/scrollscene/pkg/components"
	"github.com/gonewx/scrollscene/pkg/config"
	"github.com/gonewx/scrollscene/pkg/utils"
)

// minHeadingSpeedSq 速度平方低于该值时不更新朝向
const minHeadingSpeedSq = 1e-6

// FishSystem 两条鱼的运动
//
// 红鱼（leader）相位匀速前进；黑鱼（follower）的相位以 (1-blend)² 衰减的刚度
// 追赶 leader+PhaseTarget，进入 About 后两条鱼逐渐各游各的。
type FishSystem struct {
	cfg      *config.FishConfig
	leader   *components.FishComponent
	follower *components.FishComponent
	layout   Layout
}

// NewFishSystem 创建鱼运动系统
//
// 两条鱼从各自的出生位置游向 Hero 环绕轨道。
// rng 不为 nil 时两条鱼的初始相位随机；为 nil 时红鱼从 0 开始，黑鱼相差 PhaseTarget。
func NewFishSystem(cfg *config.FishConfig, leader, follower *components.FishComponent, layout Layout, rng *rand.Rand) *FishSystem {
	leader.SpeedScale = 1
	follower.SpeedScale = cfg.FollowerSpeed
	if rng != nil {
		leader.PathAngle = rng.Float64() * 2 * math.Pi
		follower.PathAngle = rng.Float64() * 2 * math.Pi
	} else {
		follower.PathAngle = leader.PathAngle + cfg.PhaseTarget
	}

	leader.Position = cfg.LeaderStart.Vec()
	follower.Position = cfg.FollowerStart.Vec()
	leader.PrevPosition = leader.Position
	follower.PrevPosition = follower.Position
	return &FishSystem{cfg: cfg, leader: leader, follower: follower, layout: layout}
}

// SetLayout 视口变化后更新 About 椭圆
func (fs *FishSystem) SetLayout(layout Layout) { fs.layout = layout }

// AdvancePhases 推进两条鱼的相位角
func (fs *FishSystem) AdvancePhases(dt, blend float64) {
	k := fs.cfg.PhaseStiffness * (1 - blend) * (1 - blend)
	fs.follower.PathAngle = utils.LerpAngle(fs.follower.PathAngle, fs.leader.PathAngle+fs.cfg.PhaseTarget, dt*k)

	fs.leader.PathAngle += fs.cfg.OrbitSpeed * dt * fs.leader.SpeedScale
	fs.follower.PathAngle += fs.cfg.OrbitSpeed * dt * fs.follower.SpeedScale
}

// Update 推进两条鱼的位置和姿态
func (fs *FishSystem) Update(dt, blend float64) {
	fs.updateActor(fs.leader, dt, blend)
	fs.updateActor(fs.follower, dt, blend)
}

func (fs *FishSystem) heroTarget(angle float64) mgl64.Vec3 {
	r := fs.cfg.OrbitRadius
	return mgl64.Vec3{math.Cos(angle) * r, 0, math.Sin(angle) * r}
}

func (fs *FishSystem) aboutTarget(angle float64) mgl64.Vec3 {
	l := fs.layout
	return mgl64.Vec3{
		math.Cos(angle) * l.AboutRadiusX,
		l.AboutTextPos.Y() + math.Sin(angle*2)*fs.cfg.AboutWobble,
		math.Sin(angle) * l.AboutRadiusZ,
	}
}

// Target 鱼在给定相位和混合量下的目标位置
func (fs *FishSystem) Target(angle, blend float64) mgl64.Vec3 {
	return utils.LerpVec3(fs.heroTarget(angle), fs.aboutTarget(angle), blend)
}

func (fs *FishSystem) updateActor(f *components.FishComponent, dt, blend float64) {
	f.PrevPosition = f.Position
	f.Position = FollowStep(f.Position, fs.Target(f.PathAngle, blend), dt, fs.cfg.FollowHz)

	vel := f.Position.Sub(f.PrevPosition)
	if vel.Dot(vel) <= minHeadingSpeedSq {
		return
	}
	yaw := math.Atan2(vel.X(), vel.Z()) - math.Pi/2
	f.Yaw = utils.LerpAngle(f.Yaw, yaw, dt*fs.cfg.TurnSpeed)
	f.Pitch = utils.Lerp(f.Pitch, -vel.Y()*fs.cfg.PitchGain, dt*fs.cfg.PitchHz)
}

// FollowStep 指数衰减跟随一步
// 不是弹簧：位置只会沿直线靠近目标，不会越过
func FollowStep(pos, target mgl64.Vec3, dt, hz float64) mgl64.Vec3 {
	return utils.LerpVec3(pos, target, utils.ExpAlpha(dt, hz))
}

// Leader 红鱼状态
func (fs *FishSystem) Leader() *components.FishComponent { return fs.leader }

// Follower 黑鱼状态
func (fs *FishSystem) Follower() *components.FishComponent { return fs.follower }

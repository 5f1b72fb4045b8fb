package systems

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/scrollscene/pkg/components"
	"github.com/gonewx/scrollscene/pkg/config"
)

// 气泡物理常量
const (
	bubbleBuoyancy     = 0.2
	bubbleDrag         = 0.985
	bubbleWobbleRate   = 2.0
	bubbleWobbleAmp    = 0.003
	bubbleMaxRise      = 6.0
	bubbleIdleSpeed    = 0.2
	bubbleIdleKeepRate = 0.1
	bubbleGrowth       = 0.4
	bubbleFadeIn       = 0.9 // lifeRatio 高于该值时淡入
	bubbleFadeOut      = 0.2 // lifeRatio 低于该值时淡出
)

// BubbleSystem 跟随一条鱼的气泡粒子池
//
// 粒子池大小固定，死亡或升得太高的气泡在鱼的位置重生。
// 鱼几乎静止时大部分重生被跳过，气泡变得稀疏。
// 随机数由调用方注入，便于重放和测试。
type BubbleSystem struct {
	cfg     *config.BubbleConfig
	rng     *rand.Rand
	bubbles []components.BubbleComponent

	prevFish mgl64.Vec3
	primed   bool
	time     float64
}

// NewBubbleSystem 创建气泡系统
// 初始气泡散布在原点附近的立方体内，寿命随机
func NewBubbleSystem(cfg *config.BubbleConfig, rng *rand.Rand) *BubbleSystem {
	bs := &BubbleSystem{
		cfg:     cfg,
		rng:     rng,
		bubbles: make([]components.BubbleComponent, cfg.Count),
	}
	for i := range bs.bubbles {
		b := &bs.bubbles[i]
		b.Position = mgl64.Vec3{bs.signed(2), bs.signed(2), bs.signed(2)}
		b.Velocity = bs.freshVelocity()
		b.BaseSize = cfg.SizeMin + rng.Float64()*(cfg.SizeMax-cfg.SizeMin)
		b.Size = b.BaseSize
		b.Life = rng.Float64() * cfg.Lifespan
		b.MaxLife = cfg.Lifespan
		b.Wobble = rng.Float64() * 2 * math.Pi
		b.Color = [3]float64{0.8 + rng.Float64()*0.2, 0.9 + rng.Float64()*0.1, 1}
	}
	return bs
}

// signed 返回 [-span/2, span/2) 的随机数
func (bs *BubbleSystem) signed(span float64) float64 {
	return (bs.rng.Float64() - 0.5) * span
}

func (bs *BubbleSystem) freshVelocity() mgl64.Vec3 {
	return mgl64.Vec3{bs.signed(0.2), bs.rng.Float64()*0.4 + 0.3, bs.signed(0.2)}
}

// Update 推进气泡一帧
//
// 参数:
//   - dt: 帧间隔（内部再截断到 BubbleConfig.MaxDt）
//   - fish: 鱼的当前位置
func (bs *BubbleSystem) Update(dt float64, fish mgl64.Vec3) {
	dt = math.Min(dt, bs.cfg.MaxDt)
	if !bs.primed {
		bs.prevFish = fish
		bs.primed = true
	}
	bs.time += dt
	fishSpeed := fish.Sub(bs.prevFish).Len()

	for i := range bs.bubbles {
		b := &bs.bubbles[i]
		b.Life -= dt

		if b.Life <= 0 || b.Position.Y() > fish.Y()+bubbleMaxRise {
			bs.respawn(b, fish, fishSpeed)
		}

		if !b.Active() {
			b.Size = 0
			continue
		}

		b.Velocity[1] += dt * bubbleBuoyancy
		b.Velocity = b.Velocity.Mul(bubbleDrag)
		b.Position = b.Position.Add(b.Velocity.Mul(dt))

		b.Wobble += dt * bubbleWobbleRate
		b.Position[0] += math.Sin(b.Wobble) * bubbleWobbleAmp
		b.Position[2] += math.Cos(b.Wobble*0.8) * bubbleWobbleAmp

		b.Size = b.BaseSize * bubbleSizeFactor(b.Life/b.MaxLife)

		fi := float64(i)
		b.Color = [3]float64{
			0.7 + math.Sin(bs.time+fi)*0.3,
			0.8 + math.Sin(bs.time+fi*1.5)*0.2,
			0.9 + math.Sin(bs.time+fi*2)*0.1,
		}
	}

	bs.prevFish = fish
}

func (bs *BubbleSystem) respawn(b *components.BubbleComponent, fish mgl64.Vec3, fishSpeed float64) {
	b.Position = fish.Add(mgl64.Vec3{bs.signed(0.4), bs.signed(0.2), bs.signed(0.4)})
	b.Life = b.MaxLife
	b.Wobble = bs.rng.Float64() * 2 * math.Pi

	// 鱼几乎不动时只保留一小部分气泡
	if fishSpeed < bubbleIdleSpeed && bs.rng.Float64() > bubbleIdleKeepRate {
		b.Life = 0
	}
	b.Velocity = bs.freshVelocity()
}

// bubbleSizeFactor 由剩余寿命比例求尺寸系数：随年龄长大，出生时淡入，临死时淡出
func bubbleSizeFactor(lifeRatio float64) float64 {
	f := 1 + (1-lifeRatio)*bubbleGrowth
	switch {
	case lifeRatio > bubbleFadeIn:
		f *= (1 - lifeRatio) * 10
	case lifeRatio < bubbleFadeOut:
		f *= lifeRatio * 5
	}
	return f
}

// Bubbles 只读访问粒子池
func (bs *BubbleSystem) Bubbles() []components.BubbleComponent { return bs.bubbles }

// ActiveCount 存活气泡数
func (bs *BubbleSystem) ActiveCount() int {
	n := 0
	for i := range bs.bubbles {
		if bs.bubbles[i].Active() {
			n++
		}
	}
	return n
}

package entity

// Engine sound thresholds, in units per second and seconds.
const (
	StartSpeed   = 35.0
	StopSpeed    = 25.0
	LoopInterval = 1.0
)

// Playfield limits enforced by Move.
const (
	BoundsMinX = 50
	BoundsMaxX = 730
	BoundsMinY = 70
	BoundsMaxY = 500

	// PlayfieldTop is the y coordinate above which a bullet has left the screen.
	PlayfieldTop = 0
)

const (
	Nudge = 0.1

	BulletSpeed   = 1000
	BulletWidth   = 20
	BulletOffsetX = 20
	BulletOffsetY = 30

	PlayerExplosionFrames = 4
	CrateExplosionFrames  = 15
	ExplosionFrameSize    = 128
	ExplosionFrameDelay   = 1.0 / 15

	CrateDriftSpeed   = 300
	CrateWrapDistance = 2000
)

// SoundThresholds drive the engine sound state machine. Stop must be lower
// than Start so the band between them absorbs speed jitter.
type SoundThresholds struct {
	Start        float64 `toml:"start"`
	Stop         float64 `toml:"stop"`
	LoopInterval float64 `toml:"loop_interval"`
}

// Bounds is the rectangle Move keeps an entity inside.
type Bounds struct {
	MinX float64 `toml:"min_x"`
	MaxX float64 `toml:"max_x"`
	MinY float64 `toml:"min_y"`
	MaxY float64 `toml:"max_y"`
}

// SpawnY maps f in [0, 1) onto the upper half of the vertical range.
func (b Bounds) SpawnY(f float64) float64 {
	return b.MinY + f*(b.MaxY-b.MinY)/2
}

// Cues maps entity events to sound asset paths. Empty entries are skipped.
type Cues struct {
	Start     string `toml:"start"`
	Stop      string `toml:"stop"`
	Loop      string `toml:"loop"`
	Explosion string `toml:"explosion"`
}

// FacingAssets holds the sprite of each facing direction.
type FacingAssets struct {
	Forward  AssetPair `toml:"forward"`
	Right    AssetPair `toml:"right"`
	Backward AssetPair `toml:"backward"`
	Left     AssetPair `toml:"left"`
}

// Pair returns the assets for d.
func (f FacingAssets) Pair(d Direction) AssetPair {
	switch d {
	case Right:
		return f.Right
	case Backward:
		return f.Backward
	case Left:
		return f.Left
	default:
		return f.Forward
	}
}

// Tuning is the per entity type gameplay policy.
type Tuning struct {
	Sound  SoundThresholds `toml:"sound"`
	Bounds Bounds          `toml:"bounds"`
	Nudge  float64         `toml:"nudge"`
	Cues   Cues            `toml:"cues"`

	Explosion           AnimationAssets `toml:"explosion"`
	ExplosionFrameDelay float64         `toml:"explosion_frame_delay"`

	// Player only.
	Facing      FacingAssets `toml:"facing"`
	Bullet      AssetPair    `toml:"bullet"`
	BulletSpeed float64      `toml:"bullet_speed"`

	// Crate only.
	Body         AssetPair `toml:"body"`
	DriftSpeed   float64   `toml:"drift_speed"`
	WrapDistance float64   `toml:"wrap_distance"`
}

var jetCues = Cues{
	Start:     "data/jet-start.wav",
	Stop:      "data/jet-stop.wav",
	Loop:      "data/jet-cabin.wav",
	Explosion: "data/explosion.wav",
}

func explosionAssets(frames int) AnimationAssets {
	return AnimationAssets{
		Image:       "data/explosion.bmp",
		Mask:        "data/explosionmask.bmp",
		FrameWidth:  ExplosionFrameSize,
		FrameHeight: ExplosionFrameSize,
		Frames:      frames,
	}
}

func baseTuning() Tuning {
	return Tuning{
		Sound:  SoundThresholds{Start: StartSpeed, Stop: StopSpeed, LoopInterval: LoopInterval},
		Bounds: Bounds{MinX: BoundsMinX, MaxX: BoundsMaxX, MinY: BoundsMinY, MaxY: BoundsMaxY},
		Nudge:  Nudge,
		Cues:   jetCues,

		ExplosionFrameDelay: ExplosionFrameDelay,
	}
}

// DefaultPlayerTuning returns the aircraft's tuning.
func DefaultPlayerTuning() Tuning {
	t := baseTuning()
	t.Explosion = explosionAssets(PlayerExplosionFrames)
	t.Facing = FacingAssets{
		Forward:  AssetPair{Image: "data/upPlaneImg.bmp", Mask: "data/upPlaneMask.bmp"},
		Right:    AssetPair{Image: "data/rightPlaneImg.bmp", Mask: "data/rightPlaneMask.bmp"},
		Backward: AssetPair{Image: "data/downPlaneImg.bmp", Mask: "data/downPlaneMask.bmp"},
		Left:     AssetPair{Image: "data/leftPlaneImg.bmp", Mask: "data/leftPlaneMask.bmp"},
	}
	t.Bullet = AssetPair{Image: "data/bullet.bmp", Mask: "data/bullet_mask.bmp"}
	t.BulletSpeed = BulletSpeed
	return t
}

// DefaultCrateTuning returns the crate's tuning.
func DefaultCrateTuning() Tuning {
	t := baseTuning()
	t.Explosion = explosionAssets(CrateExplosionFrames)
	t.Body = AssetPair{Image: "data/crate.bmp", Mask: "data/crate_mask.bmp"}
	t.DriftSpeed = CrateDriftSpeed
	t.WrapDistance = CrateWrapDistance
	return t
}

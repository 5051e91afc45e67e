package config

import (
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render/update layer every entity lives on.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values.
// Speeds are world units per second, with y growing downward.
type PlayerConfig struct {
	// Movement
	MaxSpeed     float64 `yaml:"maxSpeed"`
	Acceleration float64 `yaml:"acceleration"` // velocity change per tick, also used for damping
	JumpSpeed    float64 `yaml:"jumpSpeed"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // units per second squared

	// Contact normal classification. A normal whose Y is at most -Ground
	// is a floor, at least Ceiling is a ceiling, and |X| above Wall is a wall.
	GroundNormal  float64 `yaml:"groundNormal"`
	CeilingNormal float64 `yaml:"ceilingNormal"`
	WallNormal    float64 `yaml:"wallNormal"`

	// Extra distance probed below a resting actor so it keeps its floor contact.
	GroundProbe float64 `yaml:"groundProbe"`
}

// CombatConfig contains attack hitbox configuration values
type CombatConfig struct {
	AttackCooldown time.Duration `yaml:"attackCooldown"`
	HitboxLifetime time.Duration `yaml:"hitboxLifetime"`

	// Hitbox half extents
	HitboxHalfWidth  float64 `yaml:"hitboxHalfWidth"`
	HitboxHalfHeight float64 `yaml:"hitboxHalfHeight"`

	// Offsets from the actor center. X follows facing; Y applies to the
	// low (down) and high (up) stances.
	HitboxOffsetX float64 `yaml:"hitboxOffsetX"`
	HitboxOffsetY float64 `yaml:"hitboxOffsetY"`

	Damage int `yaml:"damage"`
}

// LevelConfig contains level loading configuration values
type LevelConfig struct {
	SpaceCellSize int // resolv broadphase cell size
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowOffsetX float64       // horizontal offset from the player, like a look-ahead
	PanDuration   time.Duration // ease time when the active region changes
}

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	TickRate int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Combat CombatConfig
var Level LevelConfig
var Camera CameraConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawColliders bool
	WatchLevels   bool
}

func init() {
	C = &Config{
		Width:    640,
		Height:   360,
		TickRate: 60,
	}

	Player = PlayerConfig{
		MaxSpeed:        100.0,
		Acceleration:    10.0,
		JumpSpeed:       360.0,
		CollisionWidth:  28,
		CollisionHeight: 40,
	}

	Physics = PhysicsConfig{
		Gravity:       980.0,
		GroundNormal:  0.7,
		CeilingNormal: 0.7,
		WallNormal:    0.7,
		GroundProbe:   1.0,
	}

	Combat = CombatConfig{
		AttackCooldown:   500 * time.Millisecond,
		HitboxLifetime:   200 * time.Millisecond,
		HitboxHalfWidth:  30,
		HitboxHalfHeight: 20,
		HitboxOffsetX:    60,
		HitboxOffsetY:    30,
		Damage:           10,
	}

	Level = LevelConfig{
		SpaceCellSize: 16,
	}

	Camera = CameraConfig{
		FollowOffsetX: 0,
		PanDuration:   600 * time.Millisecond,
	}
}

package config

import (
	"time"

	"github.com/pkg/errors"
)

// ArenaConfig describes the playfield and its collision grid.
type ArenaConfig struct {
	Width    float64
	Height   float64
	CellSize int // resolv space cell size
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Width        float64
	Height       float64
	Speed        float64 // pixels per tick
	BottomOffset float64 // gap between the player's bottom edge and the arena floor
	MaxLives     int

	// Shrink
	ShrinkScale     float64
	ShrinkMinWidth  float64
	ShrinkMinHeight float64
}

// SpawnConfig controls the obstacle, electric wall and item spawners.
// Intervals are counted in ticks.
type SpawnConfig struct {
	BaseSpawnRate       int
	MinSpawnInterval    int
	SpawnRateStep       int // ticks removed per difficulty level
	BaseSpeed           float64
	DifficultySpeedStep float64 // fractional speed gain per difficulty level

	ObstacleWidth         float64
	ObstacleHeight        float64
	BombSize              float64
	SpeedJitter           float64 // random extra fall speed for Normal and Explosive
	SlowSpeedJitter       float64 // random extra fall speed for Moving and Bomb
	MovingHorizontalSpeed float64

	// Kind roll thresholds, cumulative
	NormalChance    float64
	MovingChance    float64
	ExplosiveChance float64
	BombChance      float64

	// Minimum difficulty for each special kind
	MovingMinDifficulty    int
	ExplosiveMinDifficulty int
	BombMinDifficulty      int

	ElectricInterval      int
	ElectricChance        float64
	ElectricThickness     float64
	ElectricBaseSpeed     float64
	ElectricSpeedJitter   float64
	ElectricGapMargin     float64 // added to the base player width
	ElectricGapSeparation float64

	ItemInterval    int
	ItemChance      float64
	ItemSize        float64
	ItemBaseSpeed   float64
	ItemSpeedJitter float64
	// Cumulative roll thresholds in the order Invincible, Shrink, Heart, SlowMotion.
	// Anything above the last threshold is AttackPower.
	ItemWeights [4]float64
}

// UpgradeRule derives a skill's current duration or cooldown from its base
// value and the number of times it has been used.
type UpgradeRule struct {
	Every int     // uses per step, 0 disables the rule
	Step  float64 // fraction gained per step
	Cap   float64 // maximum total fraction
	Floor float64 // minimum fraction of base (cooldown reductions only)
}

// SkillConfig contains the base timing for a single skill.
type SkillConfig struct {
	Duration        time.Duration
	Cooldown        time.Duration
	DurationUpgrade UpgradeRule
	CooldownUpgrade UpgradeRule
}

// EffectsConfig contains the timed-effect registry configuration.
type EffectsConfig struct {
	Hide       SkillConfig
	Invincible SkillConfig
	Shrink     SkillConfig
	SlowMotion SkillConfig
	SlowFactor float64

	ItemComboWindow  time.Duration
	ItemComboCap     int
	ItemComboBonus   int     // score per combo level
	ItemComboBoost   float64 // duration multiplier for the next activation
	ItemComboBoostAt int
}

type FeverConfig struct {
	ComboThreshold  int
	Duration        time.Duration
	SpeedMultiplier float64
}

// CombatConfig contains damage and projectile configuration values
type CombatConfig struct {
	DamageCooldown      time.Duration
	ExplosiveDamage     int
	StartingAttackPower int

	ProjectileCooldown time.Duration
	ProjectileSpeed    float64 // negative moves up
	ProjectileWidth    float64
	ProjectileHeight   float64

	ExplosionRadius     float64
	ExplosionBossDamage int
	ExplosionScore      int
}

type ScoreConfig struct {
	DodgeScore     int
	ComboWindow    time.Duration
	ComboBonusStep float64
	Multiplier     float64
	WaveBonus      int // multiplied by the new wave number
}

type ProgressionConfig struct {
	DifficultyInterval time.Duration
	WaveInterval       time.Duration
}

// BossConfig contains boss encounter configuration
type BossConfig struct {
	FirstSpawnAt  time.Duration
	SpawnInterval time.Duration
	Width         float64
	Height        float64
	Speed         float64
	ScoreBonus    int
	BaseHP        int
	HPPerWave     int
	TierSpan      int // spawns per tier before the next tier applies

	FastSpeedMultiplier float64
	FastHPMultiplier    float64
	LargeSizeMultiplier float64
	LargeHPMultiplier   float64

	FragmentScale           float64
	FragmentSpeedMultiplier float64
	FragmentOffset          float64

	// BreachLethal ends the game when a boss reaches the player's line.
	BreachLethal bool
}

type ParticleConfig struct {
	PickupCount  int
	PickupLife   int
	PickupSpread float64
	BombCount    int
	BombLife     int
	BombSpread   float64
}

type NotificationConfig struct {
	Wave      time.Duration
	Boss      time.Duration
	Fever     time.Duration
	ItemCombo time.Duration
}

// Config holds every tunable of a simulation instance.
type Config struct {
	Arena         ArenaConfig
	Player        PlayerConfig
	Spawn         SpawnConfig
	Effects       EffectsConfig
	Fever         FeverConfig
	Combat        CombatConfig
	Score         ScoreConfig
	Progression   ProgressionConfig
	Boss          BossConfig
	Particles     ParticleConfig
	Notifications NotificationConfig

	// GameSpeed scales every fall speed. The menu offers 0.75, 1.0 and 1.5.
	GameSpeed float64
}

// Default returns the stock tuning.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Width:    480,
			Height:   640,
			CellSize: 16,
		},
		Player: PlayerConfig{
			Width:           40,
			Height:          20,
			Speed:           5,
			BottomOffset:    50,
			MaxLives:        3,
			ShrinkScale:     0.5,
			ShrinkMinWidth:  14,
			ShrinkMinHeight: 8,
		},
		Spawn: SpawnConfig{
			BaseSpawnRate:       30,
			MinSpawnInterval:    15,
			SpawnRateStep:       2,
			BaseSpeed:           2,
			DifficultySpeedStep: 0.2,

			ObstacleWidth:         40,
			ObstacleHeight:        20,
			BombSize:              40,
			SpeedJitter:           2,
			SlowSpeedJitter:       1.5,
			MovingHorizontalSpeed: 1.5,

			NormalChance:    0.70,
			MovingChance:    0.85,
			ExplosiveChance: 0.92,
			BombChance:      1.0,

			MovingMinDifficulty:    2,
			ExplosiveMinDifficulty: 3,
			BombMinDifficulty:      2,

			ElectricInterval:      180,
			ElectricChance:        0.35,
			ElectricThickness:     8,
			ElectricBaseSpeed:     2.5,
			ElectricSpeedJitter:   1.5,
			ElectricGapMargin:     40,
			ElectricGapSeparation: 40,

			ItemInterval:    120,
			ItemChance:      0.1,
			ItemSize:        22,
			ItemBaseSpeed:   2,
			ItemSpeedJitter: 1.5,
			ItemWeights:     [4]float64{0.40, 0.80, 0.85, 0.95},
		},
		Effects: EffectsConfig{
			Hide: SkillConfig{
				Duration:        1000 * time.Millisecond,
				Cooldown:        15000 * time.Millisecond,
				CooldownUpgrade: UpgradeRule{Every: 10, Step: 0.02, Cap: 0.20, Floor: 0.3},
			},
			Invincible: SkillConfig{
				Duration:        5000 * time.Millisecond,
				Cooldown:        60000 * time.Millisecond,
				DurationUpgrade: UpgradeRule{Every: 5, Step: 0.03, Cap: 0.30},
			},
			Shrink: SkillConfig{
				Duration:        10000 * time.Millisecond,
				Cooldown:        45000 * time.Millisecond,
				DurationUpgrade: UpgradeRule{Every: 7, Step: 0.04, Cap: 0.28},
			},
			SlowMotion: SkillConfig{
				Duration:        5000 * time.Millisecond,
				Cooldown:        30000 * time.Millisecond,
				DurationUpgrade: UpgradeRule{Every: 8, Step: 0.05, Cap: 0.25},
			},
			SlowFactor: 0.5,

			ItemComboWindow:  3000 * time.Millisecond,
			ItemComboCap:     5,
			ItemComboBonus:   50,
			ItemComboBoost:   1.5,
			ItemComboBoostAt: 3,
		},
		Fever: FeverConfig{
			ComboThreshold:  100,
			Duration:        10 * time.Second,
			SpeedMultiplier: 1.75,
		},
		Combat: CombatConfig{
			DamageCooldown:      1000 * time.Millisecond,
			ExplosiveDamage:     2,
			StartingAttackPower: 1,

			ProjectileCooldown: 300 * time.Millisecond,
			ProjectileSpeed:    -8,
			ProjectileWidth:    6,
			ProjectileHeight:   12,

			ExplosionRadius:     80,
			ExplosionBossDamage: 5,
			ExplosionScore:      10,
		},
		Score: ScoreConfig{
			DodgeScore:     10,
			ComboWindow:    3 * time.Second,
			ComboBonusStep: 0.1,
			Multiplier:     1,
			WaveBonus:      100,
		},
		Progression: ProgressionConfig{
			DifficultyInterval: 20 * time.Second,
			WaveInterval:       30 * time.Second,
		},
		Boss: BossConfig{
			FirstSpawnAt:  15 * time.Second,
			SpawnInterval: 45 * time.Second,
			Width:         80,
			Height:        40,
			Speed:         0.4,
			ScoreBonus:    500,
			BaseHP:        3,
			HPPerWave:     2,
			TierSpan:      2,

			FastSpeedMultiplier: 1.5,
			FastHPMultiplier:    0.7,
			LargeSizeMultiplier: 1.5,
			LargeHPMultiplier:   1.5,

			FragmentScale:           0.6,
			FragmentSpeedMultiplier: 1.2,
			FragmentOffset:          15,

			BreachLethal: true,
		},
		Particles: ParticleConfig{
			PickupCount:  8,
			PickupLife:   30,
			PickupSpread: 4,
			BombCount:    20,
			BombLife:     40,
			BombSpread:   8,
		},
		Notifications: NotificationConfig{
			Wave:      2 * time.Second,
			Boss:      3 * time.Second,
			Fever:     2 * time.Second,
			ItemCombo: 1500 * time.Millisecond,
		},
		GameSpeed: 1.0,
	}
}

// Validate rejects values that would stall the simulation or divide by zero.
func (c *Config) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return errors.Errorf("arena size must be positive, got %vx%v", c.Arena.Width, c.Arena.Height)
	}
	if c.Arena.CellSize <= 0 {
		return errors.Errorf("arena cell size must be positive, got %d", c.Arena.CellSize)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return errors.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	}
	if c.Player.Width > c.Arena.Width {
		return errors.Errorf("player width %v exceeds arena width %v", c.Player.Width, c.Arena.Width)
	}
	if c.Player.Speed <= 0 {
		return errors.New("player speed must be positive")
	}
	if c.Player.MaxLives <= 0 {
		return errors.Errorf("max lives must be positive, got %d", c.Player.MaxLives)
	}
	if c.Player.ShrinkScale <= 0 || c.Player.ShrinkScale > 1 {
		return errors.Errorf("shrink scale must be in (0, 1], got %v", c.Player.ShrinkScale)
	}
	if c.Spawn.BaseSpawnRate <= 0 || c.Spawn.MinSpawnInterval <= 0 {
		return errors.New("obstacle spawn intervals must be positive")
	}
	if c.Spawn.ElectricInterval <= 0 || c.Spawn.ItemInterval <= 0 {
		return errors.New("electric and item spawn intervals must be positive")
	}
	if c.Spawn.BaseSpeed <= 0 {
		return errors.New("base fall speed must be positive")
	}
	if c.Spawn.ObstacleWidth <= 0 || c.Spawn.ObstacleHeight <= 0 || c.Spawn.BombSize <= 0 || c.Spawn.ItemSize <= 0 {
		return errors.New("spawned entity sizes must be positive")
	}

	skills := map[string]SkillConfig{
		"hide":        c.Effects.Hide,
		"invincible":  c.Effects.Invincible,
		"shrink":      c.Effects.Shrink,
		"slow motion": c.Effects.SlowMotion,
	}
	for name, s := range skills {
		if err := s.validate(); err != nil {
			return errors.Wrapf(err, "skill %s", name)
		}
	}
	if c.Effects.SlowFactor <= 0 {
		return errors.New("slow factor must be positive")
	}
	if c.Effects.ItemComboWindow <= 0 || c.Effects.ItemComboCap <= 0 {
		return errors.New("item combo window and cap must be positive")
	}
	if c.Fever.Duration <= 0 || c.Fever.SpeedMultiplier <= 0 {
		return errors.New("fever duration and multiplier must be positive")
	}
	if c.Combat.DamageCooldown <= 0 || c.Combat.ProjectileCooldown <= 0 {
		return errors.New("damage and projectile cooldowns must be positive")
	}
	if c.Combat.ExplosionRadius <= 0 {
		return errors.Errorf("explosion radius must be positive, got %v", c.Combat.ExplosionRadius)
	}
	if c.Score.ComboWindow <= 0 || c.Score.Multiplier <= 0 {
		return errors.New("combo window and score multiplier must be positive")
	}
	if c.Progression.DifficultyInterval <= 0 || c.Progression.WaveInterval <= 0 {
		return errors.New("difficulty and wave intervals must be positive")
	}
	if c.Boss.SpawnInterval <= 0 || c.Boss.Width <= 0 || c.Boss.Height <= 0 || c.Boss.BaseHP <= 0 {
		return errors.New("boss interval, size and hp must be positive")
	}
	if c.Boss.TierSpan <= 0 {
		return errors.New("boss tier span must be positive")
	}
	if c.GameSpeed <= 0 {
		return errors.Errorf("game speed must be positive, got %v", c.GameSpeed)
	}
	return nil
}

func (s SkillConfig) validate() error {
	if s.Duration <= 0 {
		return errors.Errorf("duration must be positive, got %s", s.Duration)
	}
	if s.Cooldown <= 0 {
		return errors.Errorf("cooldown must be positive, got %s", s.Cooldown)
	}
	for _, r := range []UpgradeRule{s.DurationUpgrade, s.CooldownUpgrade} {
		if r.Every < 0 || r.Step < 0 || r.Cap < 0 || r.Floor < 0 || r.Floor > 1 {
			return errors.New("upgrade rule values out of range")
		}
	}
	return nil
}

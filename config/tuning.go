package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the YAML shape of a tuning file. Any field left out keeps its
// current value.
type Tuning struct {
	Player  PlayerConfig  `yaml:"player"`
	Physics PhysicsConfig `yaml:"physics"`
	Combat  CombatConfig  `yaml:"combat"`
}

// LoadTuning overlays the YAML file at path on the current configuration.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := ApplyTuning(data); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// ApplyTuning overlays YAML data on the current configuration. Nothing is
// changed when the data fails to parse or validate.
func ApplyTuning(data []byte) error {
	t := Tuning{Player: Player, Physics: Physics, Combat: Combat}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return err
	}
	Player, Physics, Combat = t.Player, t.Physics, t.Combat
	return nil
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.Player.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player.maxSpeed must be positive, got %v", t.Player.MaxSpeed))
	}
	if t.Player.Acceleration <= 0 {
		errs = append(errs, fmt.Errorf("player.acceleration must be positive, got %v", t.Player.Acceleration))
	}
	if t.Player.CollisionWidth <= 0 || t.Player.CollisionHeight <= 0 {
		errs = append(errs, errors.New("player collision size must be positive"))
	}
	if t.Combat.AttackCooldown < 0 {
		errs = append(errs, fmt.Errorf("combat.attackCooldown must not be negative, got %v", t.Combat.AttackCooldown))
	}
	if t.Combat.HitboxLifetime <= 0 {
		errs = append(errs, fmt.Errorf("combat.hitboxLifetime must be positive, got %v", t.Combat.HitboxLifetime))
	}
	return errors.Join(errs...)
}

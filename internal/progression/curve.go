// Package progression tracks the player's level, experience, coins and gear across battles.
package progression

import "fmt"

// Curve defines how level maps to base stats and to the experience needed for the next level.
type Curve struct {
	HealthPerLevel int `yaml:"healthPerLevel" json:"healthPerLevel"`
	HealthBase     int `yaml:"healthBase" json:"healthBase"`
	DamagePerLevel int `yaml:"damagePerLevel" json:"damagePerLevel"`
	DamageBase     int `yaml:"damageBase" json:"damageBase"`
	XPPerLevelSq   int `yaml:"xpPerLevelSquared" json:"xpPerLevelSquared"`
	XPBase         int `yaml:"xpBase" json:"xpBase"`
}

// DefaultCurve returns the standard curve:
// health = level*30+100, damage = level*2+10, needed xp = level²*40+60.
func DefaultCurve() Curve {
	return Curve{
		HealthPerLevel: 30,
		HealthBase:     100,
		DamagePerLevel: 2,
		DamageBase:     10,
		XPPerLevelSq:   40,
		XPBase:         60,
	}
}

// Validate checks the curve is monotonic and always requires positive experience.
func (c Curve) Validate() error {
	switch {
	case c.HealthPerLevel < 0 || c.HealthBase < 0:
		return fmt.Errorf("health curve must be non-negative")
	case c.DamagePerLevel < 0 || c.DamageBase < 0:
		return fmt.Errorf("damage curve must be non-negative")
	case c.XPPerLevelSq < 0:
		return fmt.Errorf("xp curve must be non-decreasing")
	case c.XPBase <= 0:
		return fmt.Errorf("xp base must be positive, got %d", c.XPBase)
	}
	return nil
}

// NeededXP returns the experience required to leave the given level.
func (c Curve) NeededXP(level int) int {
	return level*level*c.XPPerLevelSq + c.XPBase
}

// Stats returns base health and damage for a level.
func (c Curve) Stats(level int) (health, damage int) {
	return level*c.HealthPerLevel + c.HealthBase, level*c.DamagePerLevel + c.DamageBase
}

package entity

// Participant is one side of a battle: a named health and damage pool.
// It is a snapshot taken when the battle starts and is discarded with it.
type Participant struct {
	Name       string
	Health     int
	BaseDamage int
	Equipment  Equipment
}

// NewParticipant creates a participant, cloning the given equipment.
func NewParticipant(name string, health, baseDamage int, equipment Equipment) *Participant {
	if health < 0 {
		health = 0
	}
	if baseDamage < 0 {
		baseDamage = 0
	}
	return &Participant{
		Name:       name,
		Health:     health,
		BaseDamage: baseDamage,
		Equipment:  equipment.Clone(),
	}
}

// IsAlive returns true if the participant has health remaining.
func (p *Participant) IsAlive() bool { return p.Health > 0 }

// RawDamage is base damage plus the weapon bonus.
func (p *Participant) RawDamage() int {
	return p.BaseDamage + p.Equipment.DamageBonus()
}

// Defence is the shield bonus.
func (p *Participant) Defence() int {
	return p.Equipment.DefenceBonus()
}

// TakeDamage reduces health and returns the actual damage taken.
// Health never drops below zero.
func (p *Participant) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > p.Health {
		actual = p.Health
	}
	p.Health -= actual
	return actual
}

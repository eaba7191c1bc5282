package gamedata

import (
	"math/rand"
	"testing"

	"github.com/samdwyer/termquest/internal/entity"
	"github.com/samdwyer/termquest/internal/progression"
)

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	if catalog.Curve != progression.DefaultCurve() {
		t.Errorf("Curve = %+v, want default curve", catalog.Curve)
	}
	if catalog.DefeatReward.XP != 50 || catalog.DefeatReward.Coins != 0 {
		t.Errorf("DefeatReward = %+v, want 50 xp 0 coins", catalog.DefeatReward)
	}

	expectedIDs := map[string]bool{"bebra": false, "goblin": false, "skeleton": false}
	for _, e := range catalog.Enemies {
		if _, ok := expectedIDs[e.ID]; ok {
			expectedIDs[e.ID] = true
		}
	}
	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected enemy %q not found", id)
		}
	}
}

func TestEnemyRegistry(t *testing.T) {
	_, registry := MustLoadCatalog().Registries()

	if registry.Count() != 3 {
		t.Errorf("Expected 3 enemy types, got %d", registry.Count())
	}

	bebra := enemyByID(registry, "bebra")
	if bebra == nil {
		t.Fatal("Bebra not found by ID")
	}
	if bebra.Health != 100 || bebra.Damage != 30 {
		t.Errorf("Bebra stats = %d/%d, want 100/30", bebra.Health, bebra.Damage)
	}
	if bebra.Reward.XP != 120 || bebra.Reward.Coins != 15 {
		t.Errorf("Bebra reward = %+v, want 120 xp 15 coins", bebra.Reward)
	}

	// Weighted spawning is deterministic with same seed
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 10; i++ {
		a, b := registry.SpawnRandom(rng1).ID, registry.SpawnRandom(rng2).ID
		if a != b {
			t.Errorf("Spawn %d mismatch: %s != %s", i, a, b)
		}
	}
}

func TestEnemyEquipment(t *testing.T) {
	_, registry := MustLoadCatalog().Registries()

	eq := registry.Equipment(enemyByID(registry, "goblin"))
	if eq.Weapon == nil || eq.Weapon.Name != "Rusty Dagger" {
		t.Errorf("Goblin weapon = %v, want Rusty Dagger", eq.Weapon)
	}
	if eq.Shield != nil {
		t.Errorf("Goblin shield = %v, want none", eq.Shield)
	}

	eq = registry.Equipment(enemyByID(registry, "bebra"))
	if eq.Weapon != nil || eq.Shield != nil {
		t.Error("Bebra should be unequipped")
	}
}

func TestShopStock(t *testing.T) {
	items, _ := MustLoadCatalog().Registries()

	stock := items.Stock()
	if len(stock) != 4 {
		t.Fatalf("Stock() has %d items, want 4", len(stock))
	}
	sword := stock[0]
	if sword.Name != "Sword" || sword.Slot != entity.SlotWeapon || sword.Cost != 10 || sword.DamageBonus != 10 {
		t.Errorf("first stock item = %+v, want Sword 10c +10", sword)
	}
	shield := stock[1]
	if shield.Slot != entity.SlotShield || shield.DefenceBonus != 26 {
		t.Errorf("second stock item = %+v, want Shield +26", shield)
	}
}

func TestCatalogValidate(t *testing.T) {
	base := func() *Catalog {
		return &Catalog{
			Curve:   progression.DefaultCurve(),
			Items:   []ItemDef{{ID: "stick", Name: "Stick", Slot: "weapon", Cost: 1, DamageBonus: 1}},
			Shop:    []string{"stick"},
			Enemies: []EnemyDef{{ID: "rat", Name: "Rat", Health: 5, Damage: 1, Weapon: "stick"}},
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("valid catalog rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(c *Catalog)
	}{
		{"unknown shop item", func(c *Catalog) { c.Shop = append(c.Shop, "axe") }},
		{"bad slot", func(c *Catalog) { c.Items[0].Slot = "helmet" }},
		{"no enemies", func(c *Catalog) { c.Enemies = nil }},
		{"dead enemy", func(c *Catalog) { c.Enemies[0].Health = 0 }},
		{"weapon used as shield", func(c *Catalog) { c.Enemies[0].Weapon, c.Enemies[0].Shield = "", "stick" }},
		{"bad curve", func(c *Catalog) { c.Curve.XPBase = 0 }},
		{"bad color", func(c *Catalog) { c.Enemies[0].Color = "red" }},
	}

	for _, tt := range tests {
		c := base()
		tt.mutate(c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#FFFFFF", true},
		{"#F55", true},
		{"invalid", false},
		{"#GG0000", false},
		{"#FFFF", false},
		{"", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestParseHexColorShorthand(t *testing.T) {
	short, err := ParseHexColor("#F55")
	if err != nil {
		t.Fatal(err)
	}
	long, err := ParseHexColor("#FF5555")
	if err != nil {
		t.Fatal(err)
	}
	if short != long {
		t.Errorf("#F55 = %v, want %v", short, long)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load[Catalog]("missing.yaml"); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}

func enemyByID(r *EnemyRegistry, id string) *EnemyDef {
	for i := range r.enemies {
		if r.enemies[i].ID == id {
			return &r.enemies[i]
		}
	}
	return nil
}

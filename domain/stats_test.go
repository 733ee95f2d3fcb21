package domain

import "testing"

func TestStatsFromStringsCurMax(t *testing.T) {
	s := StatsFromStrings([]string{
		"Health: 365.0 / 404.0",
		"Stamina: 420.0 / 420.0",
		"Melee Damage: 369.6 %",
	})
	if s.Health != 365.0 || s.MaxHealth != 404.0 {
		t.Fatalf("Health = %v/%v, want 365/404", s.Health, s.MaxHealth)
	}
	if s.Stamina != 420.0 || s.MaxStamina != 420.0 {
		t.Fatalf("Stamina = %v/%v, want 420/420", s.Stamina, s.MaxStamina)
	}
	if s.MeleeDamage != 369.6 {
		t.Fatalf("MeleeDamage = %v, want 369.6", s.MeleeDamage)
	}
}

func TestStatsFromStringsDefaultsPercents(t *testing.T) {
	s := StatsFromStrings(nil)
	if s.MeleeDamage != 100 || s.MovementSpeed != 100 || s.CraftingSkill != 100 {
		t.Fatalf("expected default 100%% percent stats, got %+v", s)
	}
}

func TestStatsToMap(t *testing.T) {
	s := Stats{Health: 1, MaxHealth: 2}
	m := s.ToMap()
	if m["health"] != 1 || m["max_health"] != 2 {
		t.Fatalf("ToMap = %+v, want health=1,max_health=2", m)
	}
}

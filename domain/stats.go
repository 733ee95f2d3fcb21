// Package domain provides typed, ARK-savvy views over the generic
// property trees arkparser decodes, mirroring original_source's
// data_models.py dataclasses. These types are the "external collaborator"
// layer spec.md describes as consuming, not implementing, the core
// decode: nothing here reads bytes, it only interprets already-decoded
// Property/PropertyValue trees.
package domain

import (
	"strconv"
	"strings"
)

// Stats is a creature's named stat values, grounded on data_models.py's
// DinoStats.
type Stats struct {
	Health        float64
	MaxHealth     float64
	Stamina       float64
	MaxStamina    float64
	Torpidity     float64
	MaxTorpidity  float64
	Oxygen        float64
	MaxOxygen     float64
	Food          float64
	MaxFood       float64
	Water         float64
	MaxWater      float64
	Weight        float64
	MaxWeight     float64
	MeleeDamage   float64
	MovementSpeed float64
	CraftingSkill float64
}

// StatsFromStrings parses the "DinoStats" string-array representation
// used by cloud-inventory uploaded creatures, e.g. "Health: 365.0 / 404.0"
// or "Melee Damage: 369.6 %", per DinoStats.from_stat_strings.
func StatsFromStrings(lines []string) Stats {
	s := Stats{MeleeDamage: 100, MovementSpeed: 100, CraftingSkill: 100}
	for _, line := range lines {
		name, valuePart, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.ReplaceAll(name, " ", "_"))

		if cur, max, ok := strings.Cut(valuePart, " / "); ok {
			curV, err1 := strconv.ParseFloat(cur, 64)
			maxV, err2 := strconv.ParseFloat(max, 64)
			if err1 != nil || err2 != nil {
				continue
			}
			switch name {
			case "health":
				s.Health, s.MaxHealth = curV, maxV
			case "stamina":
				s.Stamina, s.MaxStamina = curV, maxV
			case "torpidity":
				s.Torpidity, s.MaxTorpidity = curV, maxV
			case "oxygen":
				s.Oxygen, s.MaxOxygen = curV, maxV
			case "food":
				s.Food, s.MaxFood = curV, maxV
			case "water":
				s.Water, s.MaxWater = curV, maxV
			case "weight":
				s.Weight, s.MaxWeight = curV, maxV
			}
			continue
		}

		if strings.HasSuffix(valuePart, " %") {
			pct, err := strconv.ParseFloat(strings.TrimSuffix(valuePart, " %"), 64)
			if err != nil {
				continue
			}
			switch name {
			case "melee_damage":
				s.MeleeDamage = pct
			case "movement_speed":
				s.MovementSpeed = pct
			case "crafting_skill":
				s.CraftingSkill = pct
			}
		}
	}
	return s
}

// ToMap renders the stats as a plain map, used by the export package to
// emit a fixed-key JSON block.
func (s Stats) ToMap() map[string]float64 {
	return map[string]float64{
		"health": s.Health, "max_health": s.MaxHealth,
		"stamina": s.Stamina, "max_stamina": s.MaxStamina,
		"torpidity": s.Torpidity, "max_torpidity": s.MaxTorpidity,
		"oxygen": s.Oxygen, "max_oxygen": s.MaxOxygen,
		"food": s.Food, "max_food": s.MaxFood,
		"water": s.Water, "max_water": s.MaxWater,
		"weight": s.Weight, "max_weight": s.MaxWeight,
		"melee_damage": s.MeleeDamage, "movement_speed": s.MovementSpeed,
		"crafting_skill": s.CraftingSkill,
	}
}

// statNames is the fixed order the status-component indexed properties
// (CurrentStatusValues_N, MaxStatusValues_N, ...) follow on both ASE and
// ASA, per data_models.py's stat_names list used in from_cryopod_bytes.
var statNames = []string{
	"Health", "Stamina", "Torpidity", "Oxygen", "Food", "Water",
	"Temperature", "Weight", "MeleeDamage", "MovementSpeed", "Fortitude",
	"CraftingSkill",
}

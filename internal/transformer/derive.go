package transformer

import "github.com/beyondvtt/vtt-importer/internal/entities/beyond"

// AbilityModifier computes the modifier for an ability score:
// floor((score-10)/2). Scores below 10 produce negative modifiers.
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 {
		// Go integer division truncates toward zero; odd negative
		// differences need one more step down to floor.
		return -((-diff + 1) / 2)
	}
	return diff / 2
}

// ProficiencyBonus computes the proficiency bonus for a total character
// level: max(2, ceil(level/4)+1).
func ProficiencyBonus(totalLevel int) int {
	if totalLevel <= 0 {
		return 2
	}
	bonus := (totalLevel+3)/4 + 1
	if bonus < 2 {
		return 2
	}
	return bonus
}

// TotalLevel sums class levels. A character with no classes is treated
// as level 1.
func TotalLevel(classes []beyond.Class) int {
	if len(classes) == 0 {
		return 1
	}
	total := 0
	for _, c := range classes {
		total += c.Level
	}
	if total < 1 {
		return 1
	}
	return total
}

// MaxHitPoints computes maximum hit points. An explicitly set override
// wins over the computed value, including an override of zero; a nil
// override means absent.
func MaxHitPoints(base, conModifier, totalLevel, bonus int, override *int) int {
	if override != nil {
		return *override
	}
	return base + conModifier*totalLevel + bonus
}

// CurrentHitPoints computes current hit points from the maximum and the
// source's removed-hit-points counter, floored at zero.
func CurrentHitPoints(maxHP, removed int) int {
	current := maxHP - removed
	if current < 0 {
		return 0
	}
	return current
}

// SpellSaveDC computes the spell save DC: 8 + proficiency bonus +
// spellcasting ability modifier.
func SpellSaveDC(proficiencyBonus, castingModifier int) int {
	return 8 + proficiencyBonus + castingModifier
}

// EncumbranceCapacity computes carrying capacity from the Strength
// score.
func EncumbranceCapacity(strengthScore int) int {
	return strengthScore * 15
}

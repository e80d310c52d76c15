package transformer

import (
	"fmt"
	"strings"

	"github.com/beyondvtt/vtt-importer/internal/entities/beyond"
	"github.com/beyondvtt/vtt-importer/internal/entities/foundry"
)

// Spell component codes.
const (
	componentVerbal   = 1
	componentSomatic  = 2
	componentMaterial = 3
)

// spellModifier types carrying an effect roll.
const (
	spellModifierDamage  = "damage"
	spellModifierHealing = "restore-hp"
)

// TransformSpell maps one spell entry to a target spell item. It is
// total: a missing definition yields a sentinel "unknown spell" document
// so a single bad entry never fails the batch.
func TransformSpell(spell *beyond.Spell, mode PreparationMode, opts Options) *foundry.Item {
	prepared := false
	if spell != nil {
		prepared = spell.Prepared
	}
	preparation := &foundry.Preparation{Mode: string(mode), Prepared: prepared}

	if spell == nil || spell.Definition == nil {
		return &foundry.Item{
			Name: "Unknown Spell",
			Type: foundry.ItemTypeSpell,
			System: foundry.ItemSystem{
				School:      SchoolName(""),
				Components:  &foundry.Components{},
				Preparation: preparation,
				Scaling:     &foundry.Scaling{Mode: foundry.ScalingModeNone},
				Duration:    foundry.DurationInfo{Units: DurationUnit("")},
				Target:      foundry.TargetInfo{Value: 1, Type: TargetType("")},
				Range:       foundry.RangeInfo{Units: RangeUnit("")},
				Activation:  foundry.ActivationInfo{Type: ActivationAction, Cost: 1},
				Damage:      foundry.DamageInfo{Parts: []foundry.DamagePart{}},
			},
		}
	}
	def := spell.Definition

	item := &foundry.Item{
		Name: def.Name,
		Type: foundry.ItemTypeSpell,
		System: foundry.ItemSystem{
			Description: foundry.Description{Value: def.Description},
			Level:       def.Level,
			School:      SchoolName(def.School),
			Components:  spellComponents(def),
			Materials: &foundry.Materials{
				Value: def.ComponentsDescription,
				Cost:  ExtractMaterialCost(def.ComponentsDescription),
			},
			Preparation: preparation,
			Scaling:     spellScaling(def),
			Activation:  spellActivation(def.Activation, opts),
			Duration:    spellDuration(def.Duration),
			Target:      spellTarget(def.Range),
			Range:       spellRange(def.Range),
			Save:        spellSave(def),
			Damage:      foundry.DamageInfo{Parts: []foundry.DamagePart{}},
		},
		Flags: provenance(def.ID, def.IsHomebrew),
	}

	damage, healing := spellEffects(def.Modifiers)
	item.System.Damage.Parts = damage
	item.System.Formula = healing

	return item
}

func spellComponents(def *beyond.SpellDefinition) *foundry.Components {
	components := &foundry.Components{
		Ritual:        def.Ritual,
		Concentration: def.Concentration,
	}
	for _, code := range def.Components {
		switch code {
		case componentVerbal:
			components.Vocal = true
		case componentSomatic:
			components.Somatic = true
		case componentMaterial:
			components.Material = true
		}
	}
	return components
}

func spellActivation(activation *beyond.Activation, opts Options) foundry.ActivationInfo {
	if activation == nil {
		return foundry.ActivationInfo{Type: ActivationAction, Cost: 1}
	}
	cost := activation.ActivationTime
	if cost < 1 {
		cost = 1
	}
	return foundry.ActivationInfo{
		Type: opts.activationFor(activation.ActivationType),
		Cost: cost,
	}
}

func spellDuration(duration *beyond.Duration) foundry.DurationInfo {
	if duration == nil {
		return foundry.DurationInfo{Units: DurationUnit("")}
	}

	// "Time" and "Concentration" duration types carry their actual
	// scale in the unit field; a concentration spell may run for hours.
	units := DurationUnit(duration.DurationType)
	if units == "minute" {
		if unit, ok := durationUnits[strings.ToLower(strings.TrimSpace(duration.DurationUnit))]; ok {
			units = unit
		}
	}

	return foundry.DurationInfo{
		Value: duration.DurationInterval,
		Units: units,
	}
}

func spellRange(rng *beyond.Range) foundry.RangeInfo {
	if rng == nil {
		return foundry.RangeInfo{Units: RangeUnit("")}
	}
	info := foundry.RangeInfo{Units: RangeUnit(rng.Origin)}
	if info.Units == "ft" {
		info.Value = rng.RangeValue
	}
	return info
}

func spellTarget(rng *beyond.Range) foundry.TargetInfo {
	if rng == nil || rng.AoeType == "" {
		// Untyped effects target one creature.
		return foundry.TargetInfo{Value: 1, Type: TargetType("")}
	}
	return foundry.TargetInfo{
		Value: rng.AoeValue,
		Units: "ft",
		Type:  TargetType(rng.AoeType),
	}
}

func spellSave(def *beyond.SpellDefinition) foundry.SaveInfo {
	if !def.RequiresSavingThrow || def.SaveDcAbilityID == nil {
		return foundry.SaveInfo{}
	}
	return foundry.SaveInfo{
		Ability: SaveAbilityKey(*def.SaveDcAbilityID),
		Scaling: "spell",
	}
}

// spellEffects builds the (formula, damage type) pairs from the
// definition's parallel damage entries, and a bare healing formula from
// the first healing entry.
func spellEffects(modifiers []beyond.SpellModifier) ([]foundry.DamagePart, string) {
	parts := []foundry.DamagePart{}
	healing := ""

	for _, mod := range modifiers {
		if mod.Die == nil {
			continue
		}
		switch mod.Type {
		case spellModifierDamage:
			damageType := DamageTypeToken(mod.SubType)
			if mod.DamageTypeID != nil {
				damageType = DamageTypeName(*mod.DamageTypeID)
			}
			formula := diceFormula(mod.Die)
			if formula != "" {
				parts = append(parts, foundry.DamagePart{Formula: formula, Type: damageType})
			}
		case spellModifierHealing:
			// Healing uses the first dice entry only.
			if healing == "" {
				healing = diceFormula(mod.Die)
			}
		}
	}

	return parts, healing
}

func spellScaling(def *beyond.SpellDefinition) *foundry.Scaling {
	formula, ok := ExtractScalingFormula(def.AtHigherLevels)
	if !ok {
		return &foundry.Scaling{Mode: foundry.ScalingModeNone}
	}
	mode := foundry.ScalingModeLevel
	if def.Level == 0 {
		mode = foundry.ScalingModeCantrip
	}
	return &foundry.Scaling{Mode: mode, Formula: formula}
}

// diceFormula renders a structured dice expression as {count}d{value},
// optionally suffixed with a signed fixed modifier. A die with no count
// renders the fixed value alone; an empty die renders "".
func diceFormula(die *beyond.Die) string {
	if die == nil {
		return ""
	}

	fixed := 0
	if die.FixedValue != nil {
		fixed = *die.FixedValue
	}

	if die.DiceCount <= 0 || die.DiceValue <= 0 {
		if fixed == 0 {
			return ""
		}
		return fmt.Sprintf("%d", fixed)
	}

	formula := fmt.Sprintf("%dd%d", die.DiceCount, die.DiceValue)
	if fixed > 0 {
		formula += fmt.Sprintf(" + %d", fixed)
	} else if fixed < 0 {
		formula += fmt.Sprintf(" - %d", -fixed)
	}
	return formula
}

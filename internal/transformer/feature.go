package transformer

import (
	"fmt"

	"github.com/beyondvtt/vtt-importer/internal/entities/beyond"
	"github.com/beyondvtt/vtt-importer/internal/entities/foundry"
)

// FeatureOrigin labels where a feature was granted from.
type FeatureOrigin string

// Feature origin categories.
const (
	FeatureOriginClass      FeatureOrigin = "class"
	FeatureOriginRace       FeatureOrigin = "race"
	FeatureOriginFeat       FeatureOrigin = "feat"
	FeatureOriginBackground FeatureOrigin = "background"
)

// featureIcons is the fixed category-to-icon lookup.
var featureIcons = map[FeatureOrigin]string{
	FeatureOriginClass:      "icons/skills/melee/hand-grip-sword-red.webp",
	FeatureOriginRace:       "icons/environment/people/group.webp",
	FeatureOriginFeat:       "icons/skills/trades/academics-study-reading-book.webp",
	FeatureOriginBackground: "icons/environment/people/commoner.webp",
}

const defaultFeatureIcon = "icons/sundries/books/book-red-exclamation.webp"

// featureIcon returns the icon for an origin category, with one shared
// fallback.
func featureIcon(origin FeatureOrigin) string {
	if icon, ok := featureIcons[origin]; ok {
		return icon
	}
	return defaultFeatureIcon
}

// TransformFeature maps one feature definition to a target feat item.
// The same shape is applied across all origin categories. It returns
// nil when the definition is absent; the caller drops the entry and
// records a warning.
func TransformFeature(def *beyond.FeatureDefinition, origin FeatureOrigin, opts Options) *foundry.Item {
	if def == nil {
		return nil
	}

	description := def.Description
	if description == "" {
		description = def.Snippet
	}

	item := &foundry.Item{
		Name: def.Name,
		Type: foundry.ItemTypeFeat,
		Img:  featureIcon(origin),
		System: foundry.ItemSystem{
			Description: foundry.Description{Value: description},
			Type:        &foundry.FeatureType{Value: "feat", Subtype: featureSubtype(def, origin)},
			Activation:  featureActivation(def.Activation, opts),
			Duration:    spellDuration(def.Duration),
			Target:      spellTarget(def.Range),
			Range:       spellRange(def.Range),
			Uses:        featureUses(def.LimitedUse),
			Save:        featureSave(def),
			Damage:      featureDamage(def),
		},
		Flags: provenance(def.ID, def.IsHomebrew),
	}

	return item
}

// featureSubtype derives the subtype tag: class features carry their
// class ID, every other category carries its category name.
func featureSubtype(def *beyond.FeatureDefinition, origin FeatureOrigin) string {
	if origin == FeatureOriginClass && def.ClassID > 0 {
		return fmt.Sprintf("class-%d", def.ClassID)
	}
	return string(origin)
}

// featureActivation resolves a feature's activation. Features without
// one are passive and carry an empty activation type.
func featureActivation(activation *beyond.Activation, opts Options) foundry.ActivationInfo {
	if activation == nil || activation.ActivationType == 0 {
		return foundry.ActivationInfo{}
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

// featureUses maps a limited-use block. Absence yields an explicit
// zero-use structure rather than an omitted field.
func featureUses(limited *beyond.LimitedUse) foundry.Uses {
	if limited == nil || limited.MaxUses <= 0 {
		return foundry.Uses{}
	}
	remaining := limited.MaxUses - limited.NumberUsed
	if remaining < 0 {
		remaining = 0
	}
	return foundry.Uses{
		Value: remaining,
		Max:   limited.MaxUses,
		Per:   RecoveryToken(limited.ResetType),
	}
}

func featureSave(def *beyond.FeatureDefinition) foundry.SaveInfo {
	if def.SaveStatID == nil {
		return foundry.SaveInfo{}
	}
	return foundry.SaveInfo{
		Ability: SaveAbilityKey(*def.SaveStatID),
		Scaling: "spell",
	}
}

func featureDamage(def *beyond.FeatureDefinition) foundry.DamageInfo {
	parts := []foundry.DamagePart{}
	if def.Dice != nil {
		formula := diceFormula(def.Dice)
		if formula != "" {
			damageType := "bludgeoning"
			if def.DamageTypeID != nil {
				damageType = DamageTypeName(*def.DamageTypeID)
			}
			parts = append(parts, foundry.DamagePart{Formula: formula, Type: damageType})
		}
	}
	return foundry.DamageInfo{Parts: parts}
}

package transformer

import (
	"strings"

	"github.com/beyondvtt/vtt-importer/internal/entities/beyond"
	"github.com/beyondvtt/vtt-importer/internal/entities/foundry"
)

// TransformItem maps one inventory entry to a target item document. It
// returns nil when the entry lacks a definition; the caller drops the
// entry and records a warning.
func TransformItem(item *beyond.Item) *foundry.Item {
	if item == nil || item.Definition == nil {
		return nil
	}
	def := item.Definition

	quantity := item.Quantity
	if quantity < 1 {
		quantity = 1
	}

	multiplier := 1.0
	if def.WeightMultiplier != nil {
		multiplier = *def.WeightMultiplier
	}

	var price *foundry.Price
	if def.Cost != nil {
		price = &foundry.Price{Value: *def.Cost, Denomination: "gp"}
	}

	rarity := strings.ToLower(strings.TrimSpace(def.Rarity))
	if rarity == "" {
		rarity = "common"
	}

	out := &foundry.Item{
		Name: def.Name,
		Type: ItemType(def.FilterType),
		System: foundry.ItemSystem{
			Description: foundry.Description{Value: def.Description},
			Quantity:    quantity,
			Weight:      def.Weight * multiplier,
			Price:       price,
			Rarity:      rarity,
			Equipped:    item.Equipped,
			Attunement:  attunementState(def.CanAttune, item.IsAttuned),
		},
		Flags: provenance(item.ID, def.IsHomebrew),
	}

	if def.ArmorClass != nil {
		out.System.Armor = &foundry.Armor{Value: *def.ArmorClass}
	}

	if out.Type == foundry.ItemTypeWeapon && def.Damage != nil {
		formula := diceFormula(def.Damage)
		if formula != "" {
			out.System.Damage.Parts = []foundry.DamagePart{
				{Formula: formula, Type: DamageTypeToken(def.DamageType)},
			}
			out.System.Activation = foundry.ActivationInfo{Type: ActivationAction, Cost: 1}
		}
	}

	return out
}

// Attunement states: 0 none, 1 required, 2 attuned.
func attunementState(canAttune, isAttuned bool) int {
	switch {
	case isAttuned:
		return 2
	case canAttune:
		return 1
	default:
		return 0
	}
}

// provenance builds the provenance flag block for one source entity.
func provenance(sourceID int, homebrew bool) foundry.Flags {
	return foundry.Flags{
		Importer: &foundry.Provenance{SourceID: sourceID, Homebrew: homebrew},
	}
}

package transformer

import (
	"sort"
	"strings"

	"github.com/beyondvtt/vtt-importer/internal/entities/beyond"
)

// Proficiency ranks.
const (
	RankNone       = 0
	RankProficient = 1
	RankExpertise  = 2
)

// Proficiencies is the aggregate of the source's modifier side channel.
// All slices are sorted and deduplicated so aggregation is independent
// of modifier iteration order.
type Proficiencies struct {
	// Saves holds ability keys the character is save-proficient in.
	Saves map[string]bool

	// SkillRanks maps skill keys to ranks. Expertise always dominates
	// proficiency regardless of entry order.
	SkillRanks map[string]int

	Weapons   []string
	Armor     []string
	Tools     []string
	Languages []string
}

// AggregateModifiers scans the character's modifier collection and
// produces the proficiency aggregate. Languages are supplemented from
// racial-trait and background free text when no structured language
// modifier exists, and the class-granted secret language is added for
// druids.
func AggregateModifiers(char *beyond.Character) *Proficiencies {
	p := &Proficiencies{
		Saves:      make(map[string]bool),
		SkillRanks: make(map[string]int),
	}
	if char == nil {
		return p
	}

	weapons := make(map[string]bool)
	armor := make(map[string]bool)
	tools := make(map[string]bool)
	languages := make(map[string]bool)

	// Category iteration order is irrelevant: ranks are merged with
	// max, list buckets are sets.
	for _, modifiers := range char.Modifiers {
		for _, mod := range modifiers {
			switch mod.Type {
			case beyond.ModifierTypeProficiency:
				applyProficiency(p, mod, weapons, armor, tools)
			case beyond.ModifierTypeExpertise:
				if key, ok := SkillKey(mod.SubType); ok {
					p.SkillRanks[key] = RankExpertise
				}
			case beyond.ModifierTypeLanguage:
				languages[modifierLabel(mod)] = true
			case beyond.ModifierTypeBonus:
				// Numeric bonuses are already reflected in the
				// service's computed stat fields; applying them again
				// would double-count.
			}
		}
	}

	if len(languages) == 0 {
		for _, lang := range scanCharacterLanguages(char) {
			languages[lang] = true
		}
	}

	// Any class literally named Druid grants its secret language.
	for _, class := range char.Classes {
		if class.Definition != nil && NormalizeClassName(class.Definition.Name) == "druid" {
			languages["Druidic"] = true
		}
	}

	p.Weapons = sortedKeys(weapons)
	p.Armor = sortedKeys(armor)
	p.Tools = sortedKeys(tools)
	p.Languages = sortedKeys(languages)
	return p
}

// applyProficiency classifies one proficiency modifier. Saving throws
// and skills are recognized by subtype; of the rest, armor and tooling
// have recognizable suffixes and anything left is treated as a weapon
// proficiency.
func applyProficiency(p *Proficiencies, mod beyond.Modifier, weapons, armor, tools map[string]bool) {
	subType := strings.ToLower(strings.TrimSpace(mod.SubType))

	if ability, ok := strings.CutSuffix(subType, "-saving-throws"); ok {
		if key, known := abilityKeyFromName(ability); known {
			p.Saves[key] = true
		}
		return
	}

	if key, ok := SkillKey(subType); ok {
		if p.SkillRanks[key] < RankProficient {
			p.SkillRanks[key] = RankProficient
		}
		return
	}

	switch {
	case strings.HasSuffix(subType, "-armor") || subType == "shields":
		armor[modifierLabel(mod)] = true
	case strings.Contains(subType, "tool") || strings.HasSuffix(subType, "-kit") ||
		strings.HasSuffix(subType, "-supplies") || strings.HasSuffix(subType, "-utensils"):
		tools[modifierLabel(mod)] = true
	default:
		weapons[modifierLabel(mod)] = true
	}
}

// modifierLabel returns the human-readable label for a modifier, or the
// raw subtype code when no label is present.
func modifierLabel(mod beyond.Modifier) string {
	if mod.FriendlySubtypeName != "" {
		return mod.FriendlySubtypeName
	}
	return mod.SubType
}

// scanCharacterLanguages runs the free-text language scan over racial
// traits and the background.
func scanCharacterLanguages(char *beyond.Character) []string {
	var found []string

	if char.Race != nil {
		for _, trait := range char.Race.RacialTraits {
			if trait.Definition == nil {
				continue
			}
			found = append(found, ScanLanguages(trait.Definition.Description)...)
		}
	}

	if char.Background != nil {
		if char.Background.Definition != nil {
			found = append(found, ScanLanguages(char.Background.Definition.Description)...)
			found = append(found, ScanLanguages(char.Background.Definition.LanguagesDescription)...)
		}
		if char.Background.CustomBackground != nil {
			found = append(found, ScanLanguages(char.Background.CustomBackground.LanguagesBackground)...)
		}
	}

	return found
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

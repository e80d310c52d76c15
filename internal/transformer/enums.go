// Package transformer converts source character-service records into
// target actor and item documents.
//
// Every function in this package is pure and total: unknown enum codes
// resolve to a documented per-category default, missing numeric fields
// coalesce to zero, and missing definitions are skipped with a warning
// rather than failing a whole transformation.
package transformer

import "strings"

// The source reuses the same numeric codes in unrelated collections
// (ability IDs reappear as save-type and spellcasting-ability codes).
// Each semantic domain gets its own table so a change to one can never
// silently leak into another.

// abilityKeys maps ability codes 1-6 to ability keys.
var abilityKeys = map[int]string{
	1: "str",
	2: "dex",
	3: "con",
	4: "int",
	5: "wis",
	6: "cha",
}

// saveAbilityKeys maps saving-throw ability codes to ability keys.
var saveAbilityKeys = map[int]string{
	1: "str",
	2: "dex",
	3: "con",
	4: "int",
	5: "wis",
	6: "cha",
}

// castingAbilityKeys maps spellcasting-ability codes to ability keys.
var castingAbilityKeys = map[int]string{
	1: "str",
	2: "dex",
	3: "con",
	4: "int",
	5: "wis",
	6: "cha",
}

// AbilityKey resolves an ability score code. Unknown codes default to
// "str".
func AbilityKey(id int) string {
	if key, ok := abilityKeys[id]; ok {
		return key
	}
	return "str"
}

// SaveAbilityKey resolves a saving-throw ability code. Unknown codes
// default to "str".
func SaveAbilityKey(id int) string {
	if key, ok := saveAbilityKeys[id]; ok {
		return key
	}
	return "str"
}

// CastingAbilityKey resolves a spellcasting ability code. Unknown codes
// default to "wis", the most common casting ability among the classes
// that omit the field.
func CastingAbilityKey(id int) string {
	if key, ok := castingAbilityKeys[id]; ok {
		return key
	}
	return "wis"
}

// alignmentCodes maps alignment codes 1-9 to two-letter tokens, reading
// order across the classic alignment grid.
var alignmentCodes = map[int]string{
	1: "lg",
	2: "ng",
	3: "cg",
	4: "ln",
	5: "tn",
	6: "cn",
	7: "le",
	8: "ne",
	9: "ce",
}

// AlignmentCode resolves an alignment code. Unknown codes default to
// "tn".
func AlignmentCode(id int) string {
	if code, ok := alignmentCodes[id]; ok {
		return code
	}
	return "tn"
}

// sizeTokens maps free-text size categories to size tokens.
var sizeTokens = map[string]string{
	"tiny":       "tiny",
	"small":      "sm",
	"medium":     "med",
	"large":      "lg",
	"huge":       "huge",
	"gargantuan": "grg",
}

// SizeToken resolves a free-text size category. Unknown sizes default to
// "med".
func SizeToken(size string) string {
	if token, ok := sizeTokens[strings.ToLower(strings.TrimSpace(size))]; ok {
		return token
	}
	return "med"
}

// damageTypeNames maps damage type codes to damage type tokens.
var damageTypeNames = map[int]string{
	1:  "bludgeoning",
	2:  "piercing",
	3:  "slashing",
	4:  "acid",
	5:  "cold",
	6:  "fire",
	7:  "force",
	8:  "lightning",
	9:  "necrotic",
	10: "poison",
	11: "psychic",
	12: "radiant",
	13: "thunder",
}

// damageTypeTokens is the set of valid damage type tokens, for
// normalizing free-text damage subtypes.
var damageTypeTokens = func() map[string]bool {
	set := make(map[string]bool, len(damageTypeNames))
	for _, name := range damageTypeNames {
		set[name] = true
	}
	return set
}()

// DamageTypeName resolves a damage type code. Unknown codes default to
// "bludgeoning".
func DamageTypeName(id int) string {
	if name, ok := damageTypeNames[id]; ok {
		return name
	}
	return "bludgeoning"
}

// DamageTypeToken normalizes a free-text damage type. Unknown types
// default to "bludgeoning".
func DamageTypeToken(s string) string {
	token := strings.ToLower(strings.TrimSpace(s))
	if damageTypeTokens[token] {
		return token
	}
	return "bludgeoning"
}

// schoolNames maps lower-cased school names to school tokens.
var schoolNames = map[string]string{
	"abjuration":    "abjuration",
	"conjuration":   "conjuration",
	"divination":    "divination",
	"enchantment":   "enchantment",
	"evocation":     "evocation",
	"illusion":      "illusion",
	"necromancy":    "necromancy",
	"transmutation": "transmutation",
}

// SchoolName resolves a free-text spell school, case-insensitively.
// Unknown schools default to "evocation".
func SchoolName(school string) string {
	if name, ok := schoolNames[strings.ToLower(strings.TrimSpace(school))]; ok {
		return name
	}
	return "evocation"
}

// Activation tokens.
const (
	ActivationAction   = "action"
	ActivationBonus    = "bonus"
	ActivationReaction = "reaction"
	ActivationMinute   = "minute"
	ActivationHour     = "hour"
	ActivationDay      = "day"
)

// ActivationSpecialCode is the source code for non-standard casting
// times. Its mapping is a policy, not a table entry; see
// Options.SpecialActivation.
const ActivationSpecialCode = 6

// activationTokens maps activation type codes to activation tokens.
// Code 6 ("Special") is deliberately folded into "minute" to represent
// longer, non-standard casting times; callers may substitute another
// token through Options.SpecialActivation. No source code maps to
// "day": the service has no day-scale activation category, so
// ActivationDay is reachable only as a substituted special token.
var activationTokens = map[int]string{
	1: ActivationAction,
	2: ActivationAction,
	3: ActivationBonus,
	4: ActivationReaction,
	5: ActivationMinute,
	6: ActivationMinute,
	7: ActivationHour,
}

// ActivationToken resolves an activation type code. Unknown codes
// default to "action".
func ActivationToken(code int) string {
	if token, ok := activationTokens[code]; ok {
		return token
	}
	return ActivationAction
}

// durationUnits collapses the source's duration type spellings into
// duration tokens. "Time" and "Concentration" are both minute-based in
// the source material.
var durationUnits = map[string]string{
	"instantaneous":                "instantaneous",
	"round":                        "round",
	"minute":                       "minute",
	"time":                         "minute",
	"concentration":                "minute",
	"hour":                         "hour",
	"day":                          "day",
	"special":                      "special",
	"until dispelled":              "special",
	"until dispelled or triggered": "special",
	"permanent":                    "permanent",
}

// DurationUnit resolves a free-text duration type via the synonym
// table. Unknown types default to "instantaneous".
func DurationUnit(durationType string) string {
	if unit, ok := durationUnits[strings.ToLower(strings.TrimSpace(durationType))]; ok {
		return unit
	}
	return "instantaneous"
}

// rangeUnits maps free-text range origins to range unit tokens.
var rangeUnits = map[string]string{
	"self":      "self",
	"touch":     "touch",
	"ranged":    "ft",
	"weapon":    "ft",
	"sight":     "special",
	"special":   "special",
	"unlimited": "any",
}

// RangeUnit resolves a free-text range origin. Unknown origins default
// to "ft".
func RangeUnit(origin string) string {
	if unit, ok := rangeUnits[strings.ToLower(strings.TrimSpace(origin))]; ok {
		return unit
	}
	return "ft"
}

// targetTypes maps area-of-effect types to target shape tokens.
var targetTypes = map[string]string{
	"sphere":   "sphere",
	"cube":     "cube",
	"cone":     "cone",
	"line":     "line",
	"cylinder": "cylinder",
	"square":   "square",
}

// TargetType resolves an area-of-effect type. Untyped and unknown areas
// default to "creature".
func TargetType(aoeType string) string {
	if shape, ok := targetTypes[strings.ToLower(strings.TrimSpace(aoeType))]; ok {
		return shape
	}
	return "creature"
}

// Recovery tokens.
const (
	RecoveryShortRest = "sr"
	RecoveryLongRest  = "lr"
	RecoveryDay       = "day"
	RecoveryCharges   = "charges"
)

// recoveryTokens maps reset type codes to recovery tokens.
var recoveryTokens = map[int]string{
	1: RecoveryShortRest,
	2: RecoveryLongRest,
	3: RecoveryDay,
	4: RecoveryCharges,
}

// RecoveryToken resolves a limited-use reset type code. Unknown codes
// default to long rest.
func RecoveryToken(resetType int) string {
	if token, ok := recoveryTokens[resetType]; ok {
		return token
	}
	return RecoveryLongRest
}

// itemTypes maps the source's inventory filter types to item types.
var itemTypes = map[string]string{
	"weapon":     "weapon",
	"armor":      "equipment",
	"shield":     "equipment",
	"gear":       "loot",
	"other gear": "loot",
	"tool":       "tool",
	"potion":     "consumable",
}

// ItemType resolves an inventory filter type. Unknown types default to
// "loot".
func ItemType(filterType string) string {
	if itemType, ok := itemTypes[strings.ToLower(strings.TrimSpace(filterType))]; ok {
		return itemType
	}
	return "loot"
}

// skillKeys maps source skill subtypes to skill keys.
var skillKeys = map[string]string{
	"acrobatics":      "acr",
	"animal-handling": "ani",
	"arcana":          "arc",
	"athletics":       "ath",
	"deception":       "dec",
	"history":         "his",
	"insight":         "ins",
	"intimidation":    "itm",
	"investigation":   "inv",
	"medicine":        "med",
	"nature":          "nat",
	"perception":      "prc",
	"performance":     "prf",
	"persuasion":      "per",
	"religion":        "rel",
	"sleight-of-hand": "slt",
	"stealth":         "ste",
	"survival":        "sur",
}

// SkillKey resolves a source skill subtype to a skill key. The second
// return is false when the subtype is not a skill.
func SkillKey(subType string) (string, bool) {
	key, ok := skillKeys[strings.ToLower(strings.TrimSpace(subType))]
	return key, ok
}

// SkillAbilities is the fixed skill-to-ability mapping. Every target
// document carries all of these keys.
var SkillAbilities = map[string]string{
	"acr": "dex",
	"ani": "wis",
	"arc": "int",
	"ath": "str",
	"dec": "cha",
	"his": "int",
	"ins": "wis",
	"itm": "cha",
	"inv": "int",
	"med": "wis",
	"nat": "int",
	"prc": "wis",
	"prf": "cha",
	"per": "cha",
	"rel": "int",
	"slt": "dex",
	"ste": "dex",
	"sur": "wis",
}

// abilityNames maps long ability names (as they appear in saving-throw
// modifier subtypes) to ability keys.
var abilityNames = map[string]string{
	"strength":     "str",
	"dexterity":    "dex",
	"constitution": "con",
	"intelligence": "int",
	"wisdom":       "wis",
	"charisma":     "cha",
}

// abilityKeyFromName resolves a long ability name. The second return is
// false when the name is unknown.
func abilityKeyFromName(name string) (string, bool) {
	key, ok := abilityNames[strings.ToLower(strings.TrimSpace(name))]
	return key, ok
}

// NormalizeClassName lower-cases and trims a class name for table
// lookups.
func NormalizeClassName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

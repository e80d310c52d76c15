package transformer

import (
	"fmt"

	"github.com/beyondvtt/vtt-importer/internal/entities/beyond"
	"github.com/beyondvtt/vtt-importer/internal/entities/foundry"
	"github.com/beyondvtt/vtt-importer/internal/errors"
)

// Assemble builds one target actor document from a source character
// record. It is deterministic, performs no I/O, and never fails on a
// malformed entry: individual entries that cannot be transformed are
// dropped with a warning, and absent collections degrade to documented
// defaults. The only error condition is a nil character.
func Assemble(char *beyond.Character, opts Options) (*Result, error) {
	if char == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	a := &assembly{char: char, opts: opts}

	// Order matters only where noted: abilities feed derived attributes
	// and proficiencies.
	abilities := a.buildAbilities()
	totalLevel := TotalLevel(char.Classes)
	profBonus := ProficiencyBonus(totalLevel)
	proficiencies := AggregateModifiers(char)

	for key := range proficiencies.Saves {
		entry := abilities[key]
		entry.Proficient = 1
		abilities[key] = entry
	}

	actor := &foundry.Actor{
		Name: char.Name,
		Type: foundry.ActorTypeCharacter,
		System: foundry.ActorSystem{
			Abilities:  abilities,
			Attributes: a.buildAttributes(abilities, totalLevel, profBonus),
			Details:    a.buildDetails(totalLevel),
			Traits:     a.buildTraits(proficiencies),
			Currency:   a.buildCurrency(),
			Skills:     buildSkills(proficiencies),
			Spells:     a.buildSpellSlots(),
			Resources:  a.buildResources(),
		},
		Flags: foundry.Flags{
			Importer: &foundry.Provenance{SourceID: char.ID},
		},
	}

	items := make([]foundry.Item, 0)
	if opts.ImportEquipment {
		items = append(items, a.transformInventory()...)
	}
	if opts.ImportSpells {
		items = append(items, a.transformSpells()...)
	}
	items = append(items, a.transformFeatures()...)
	actor.Items = items

	return &Result{Actor: actor, Warnings: a.warnings}, nil
}

// TransformInventory maps a character's inventory to standalone item
// documents, for callers that want equipment independently of a full
// actor.
func TransformInventory(char *beyond.Character, opts Options) ([]foundry.Item, []Warning) {
	if char == nil {
		return []foundry.Item{}, nil
	}
	a := &assembly{char: char, opts: opts}
	return a.transformInventory(), a.warnings
}

// TransformSpells maps a character's spell collections to standalone
// spell items.
func TransformSpells(char *beyond.Character, opts Options) ([]foundry.Item, []Warning) {
	if char == nil {
		return []foundry.Item{}, nil
	}
	a := &assembly{char: char, opts: opts}
	return a.transformSpells(), a.warnings
}

// TransformFeatures maps a character's features across all origin
// categories to standalone feat items.
func TransformFeatures(char *beyond.Character, opts Options) ([]foundry.Item, []Warning) {
	if char == nil {
		return []foundry.Item{}, nil
	}
	a := &assembly{char: char, opts: opts}
	return a.transformFeatures(), a.warnings
}

// assembly carries per-call state: the source record, options, and
// accumulated warnings.
type assembly struct {
	char     *beyond.Character
	opts     Options
	warnings []Warning
}

func (a *assembly) warnf(section, entry, format string, args ...interface{}) {
	a.warnings = append(a.warnings, Warning{
		Section: section,
		Entry:   entry,
		Message: fmt.Sprintf(format, args...),
	})
}

// buildAbilities produces all six ability entries. Absent scores
// default to 10; override entries with a set value replace the
// base+bonus total outright.
func (a *assembly) buildAbilities() map[string]foundry.Ability {
	base := statValues(a.char.Stats)
	bonus := statValues(a.char.BonusStats)
	override := statValues(a.char.OverrideStats)

	abilities := make(map[string]foundry.Ability, 6)
	for id := 1; id <= 6; id++ {
		value := 10
		if v, ok := base[id]; ok {
			value = v
		}
		value += bonus[id]
		if v, ok := override[id]; ok {
			value = v
		}
		abilities[AbilityKey(id)] = foundry.Ability{
			Value: value,
			Mod:   AbilityModifier(value),
		}
	}
	return abilities
}

// statValues indexes a stat array by ability code, skipping unset
// entries.
func statValues(stats []beyond.StatEntry) map[int]int {
	values := make(map[int]int, len(stats))
	for _, stat := range stats {
		if stat.Value != nil {
			values[stat.ID] = *stat.Value
		}
	}
	return values
}

func (a *assembly) buildAttributes(abilities map[string]foundry.Ability, totalLevel, profBonus int) foundry.Attributes {
	char := a.char
	conMod := abilities["con"].Mod

	maxHP := MaxHitPoints(char.BaseHitPoints, conMod, totalLevel, char.BonusHitPoints, char.OverrideHitPoints)

	attrs := foundry.Attributes{
		HP: foundry.HitPoints{
			Value: CurrentHitPoints(maxHP, char.RemovedHitPoints),
			Max:   maxHP,
			Temp:  char.TemporaryHitPoints,
		},
		AC:          foundry.ArmorClass{Calc: "default"},
		Init:        abilities["dex"].Mod,
		Movement:    a.buildMovement(),
		Senses:      foundry.Senses{Units: "ft"},
		Prof:        profBonus,
		Encumbrance: foundry.Encumbrance{Max: EncumbranceCapacity(abilities["str"].Value)},
	}

	if castingClass := spellcastingClass(char.Classes); castingClass != nil {
		key := CastingAbilityKey(*castingClass.Definition.SpellCastingAbilityID)
		attrs.Spellcasting = key
		attrs.SpellDC = SpellSaveDC(profBonus, abilities[key].Mod)
	}

	return attrs
}

// spellcastingClass picks the class that determines the actor's
// spellcasting ability: the starting class when it casts, otherwise the
// first caster in list order.
func spellcastingClass(classes []beyond.Class) *beyond.Class {
	var first *beyond.Class
	for i := range classes {
		class := &classes[i]
		if class.Definition == nil || !class.Definition.CanCastSpells ||
			class.Definition.SpellCastingAbilityID == nil {
			continue
		}
		if class.IsStartingClass {
			return class
		}
		if first == nil {
			first = class
		}
	}
	return first
}

func (a *assembly) buildMovement() foundry.Movement {
	movement := foundry.Movement{Units: "ft"}
	race := a.char.Race
	if race == nil || race.WeightSpeeds == nil || race.WeightSpeeds.Normal == nil {
		// No race data: the standard walking speed.
		movement.Walk = 30
		return movement
	}
	speeds := race.WeightSpeeds.Normal
	movement.Walk = speeds.Walk
	movement.Fly = speeds.Fly
	movement.Swim = speeds.Swim
	movement.Climb = speeds.Climb
	movement.Burrow = speeds.Burrow
	return movement
}

func (a *assembly) buildDetails(totalLevel int) foundry.Details {
	char := a.char

	details := foundry.Details{
		Alignment: AlignmentCode(char.AlignmentID),
		Classes:   make(map[string]int),
		Level:     totalLevel,
	}

	if char.Race != nil {
		details.Race = char.Race.FullName
	}
	if char.Background != nil {
		switch {
		case char.Background.Definition != nil:
			details.Background = char.Background.Definition.Name
		case char.Background.CustomBackground != nil:
			details.Background = char.Background.CustomBackground.Name
		}
	}
	for _, class := range char.Classes {
		if class.Definition == nil {
			continue
		}
		details.Classes[class.Definition.Name] = class.Level
	}
	if char.Notes != nil {
		details.Biography = foundry.Biography{Value: char.Notes.Backstory}
	}
	if char.Traits != nil {
		details.Trait = char.Traits.PersonalityTraits
		details.Ideal = char.Traits.Ideals
		details.Bond = char.Traits.Bonds
		details.Flaw = char.Traits.Flaws
		details.Appearance = char.Traits.Appearance
	}

	return details
}

func (a *assembly) buildTraits(p *Proficiencies) foundry.Traits {
	size := ""
	if a.char.Race != nil {
		size = a.char.Race.Size
	}
	return foundry.Traits{
		Size:                SizeToken(size),
		Languages:           foundry.StringSet{Value: stringSetValue(p.Languages)},
		DamageResistances:   foundry.StringSet{Value: []string{}},
		DamageImmunities:    foundry.StringSet{Value: []string{}},
		ConditionImmunities: foundry.StringSet{Value: []string{}},
		WeaponProf:          foundry.StringSet{Value: stringSetValue(p.Weapons)},
		ArmorProf:           foundry.StringSet{Value: stringSetValue(p.Armor)},
		ToolProf:            foundry.StringSet{Value: stringSetValue(p.Tools)},
	}
}

func stringSetValue(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// buildCurrency clamps every denomination at zero.
func (a *assembly) buildCurrency() foundry.Currency {
	if a.char.Currencies == nil {
		return foundry.Currency{}
	}
	c := a.char.Currencies
	return foundry.Currency{
		PP: clampNonNegative(c.PP),
		GP: clampNonNegative(c.GP),
		EP: clampNonNegative(c.EP),
		SP: clampNonNegative(c.SP),
		CP: clampNonNegative(c.CP),
	}
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// buildSkills produces all eighteen skill entries with their fixed
// ability mapping.
func buildSkills(p *Proficiencies) map[string]foundry.Skill {
	skills := make(map[string]foundry.Skill, len(SkillAbilities))
	for key, ability := range SkillAbilities {
		skills[key] = foundry.Skill{
			Value:   p.SkillRanks[key],
			Ability: ability,
		}
	}
	return skills
}

// buildSpellSlots sums every class's slot contribution. Pact slots come
// from the pact caster alone. Multiclass combination uses per-class
// tables; the combined-caster-level rule is host policy.
func (a *assembly) buildSpellSlots() foundry.SpellSlots {
	totals := make(map[int]int)
	pactCount, pactLevel := 0, 0

	for _, class := range a.char.Classes {
		if class.Definition == nil {
			continue
		}
		name := slotClassName(class)
		for level, count := range SlotsForClass(name, class.Level) {
			totals[level] += count
		}
		if count, slotLevel := PactSlotsForClass(name, class.Level); count > 0 {
			pactCount, pactLevel = count, slotLevel
		}
	}

	slot := func(level int) foundry.SlotInfo {
		return foundry.SlotInfo{Value: totals[level], Max: totals[level]}
	}

	return foundry.SpellSlots{
		Spell1: slot(1),
		Spell2: slot(2),
		Spell3: slot(3),
		Spell4: slot(4),
		Spell5: slot(5),
		Spell6: slot(6),
		Spell7: slot(7),
		Spell8: slot(8),
		Spell9: slot(9),
		Pact:   foundry.PactSlots{Value: pactCount, Max: pactCount, Level: pactLevel},
	}
}

// slotClassName picks the progression table name: gish subclasses make
// their base class a third caster.
func slotClassName(class beyond.Class) string {
	if class.SubclassDefinition != nil {
		sub := NormalizeClassName(class.SubclassDefinition.Name)
		if sub == "eldritch knight" || sub == "arcane trickster" {
			return sub
		}
	}
	return class.Definition.Name
}

// buildResources tracks the first limited-use class feature as the
// primary resource.
func (a *assembly) buildResources() foundry.Resources {
	for _, class := range a.char.Classes {
		for _, feature := range class.ClassFeatures {
			def := feature.Definition
			if def == nil || def.LimitedUse == nil || def.LimitedUse.MaxUses <= 0 {
				continue
			}
			uses := featureUses(def.LimitedUse)
			return foundry.Resources{
				Primary: foundry.Resource{
					Value: uses.Value,
					Max:   uses.Max,
					SR:    uses.Per == RecoveryShortRest,
					LR:    uses.Per == RecoveryLongRest,
					Label: def.Name,
				},
			}
		}
	}
	return foundry.Resources{}
}

// transformInventory maps every inventory entry, dropping entries
// without definitions. A panic inside one entry's transform skips that
// entry only.
func (a *assembly) transformInventory() []foundry.Item {
	items := make([]foundry.Item, 0, len(a.char.Inventory))
	for i := range a.char.Inventory {
		entry := &a.char.Inventory[i]
		item, err := a.safeItem(func() *foundry.Item { return TransformItem(entry) })
		if err != nil {
			a.warnf("equipment", itemEntryName(entry), "transform failed: %v", err)
			continue
		}
		if item == nil {
			a.warnf("equipment", itemEntryName(entry), "missing definition, entry dropped")
			continue
		}
		items = append(items, *item)
	}
	return items
}

func itemEntryName(item *beyond.Item) string {
	if item.Definition != nil && item.Definition.Name != "" {
		return item.Definition.Name
	}
	return fmt.Sprintf("inventory entry %d", item.ID)
}

// transformSpells maps every spell collection. Class spells carry the
// caller's preparation mode (pact for warlocks); race, item, and feat
// spells are innate.
func (a *assembly) transformSpells() []foundry.Item {
	items := make([]foundry.Item, 0)

	for _, group := range a.char.ClassSpells {
		mode := a.opts.PreparationMode
		if class := a.classByID(group.CharacterClassID); class != nil &&
			NormalizeClassName(class.Definition.Name) == "warlock" {
			mode = PreparationModePact
		}
		items = append(items, a.transformSpellList(group.Spells, mode)...)
	}

	items = append(items, a.transformSpellList(a.char.Spells.Race, PreparationModeInnate)...)
	items = append(items, a.transformSpellList(a.char.Spells.Item, PreparationModeInnate)...)
	items = append(items, a.transformSpellList(a.char.Spells.Feat, PreparationModeInnate)...)

	return items
}

func (a *assembly) transformSpellList(spells []beyond.Spell, mode PreparationMode) []foundry.Item {
	items := make([]foundry.Item, 0, len(spells))
	for i := range spells {
		spell := &spells[i]
		item, err := a.safeItem(func() *foundry.Item {
			return TransformSpell(spell, mode, a.opts)
		})
		if err != nil {
			a.warnf("spells", spellEntryName(spell), "transform failed: %v", err)
			continue
		}
		if spell.Definition == nil {
			a.warnf("spells", spellEntryName(spell), "missing definition, imported as unknown spell")
		}
		items = append(items, *item)
	}
	return items
}

func spellEntryName(spell *beyond.Spell) string {
	if spell.Definition != nil && spell.Definition.Name != "" {
		return spell.Definition.Name
	}
	return "unknown spell"
}

func (a *assembly) classByID(classID int) *beyond.Class {
	for i := range a.char.Classes {
		class := &a.char.Classes[i]
		if class.Definition != nil && class.Definition.ID == classID {
			return class
		}
	}
	return nil
}

// transformFeatures maps class features (subclass features arrive
// folded into their class entry), optional class features, racial
// traits, the background feature, and feats into feat items.
func (a *assembly) transformFeatures() []foundry.Item {
	items := make([]foundry.Item, 0)

	for _, class := range a.char.Classes {
		for _, feature := range class.ClassFeatures {
			a.appendFeature(&items, feature.Definition, FeatureOriginClass)
		}
	}

	for _, feature := range a.char.OptionalClassFeatures {
		a.appendFeature(&items, feature.Definition, FeatureOriginClass)
	}

	if a.char.Race != nil {
		for _, trait := range a.char.Race.RacialTraits {
			a.appendFeature(&items, trait.Definition, FeatureOriginRace)
		}
	}

	if def := a.backgroundFeature(); def != nil {
		a.appendFeature(&items, def, FeatureOriginBackground)
	}

	for _, feat := range a.char.Feats {
		a.appendFeature(&items, feat.Definition, FeatureOriginFeat)
	}

	return items
}

// backgroundFeature synthesizes a feature definition from the
// background's feature fields, when present.
func (a *assembly) backgroundFeature() *beyond.FeatureDefinition {
	bg := a.char.Background
	if bg == nil {
		return nil
	}
	if bg.Definition != nil && bg.Definition.FeatureName != "" {
		return &beyond.FeatureDefinition{
			ID:          bg.Definition.ID,
			Name:        bg.Definition.FeatureName,
			Description: bg.Definition.FeatureDescription,
		}
	}
	if bg.CustomBackground != nil && bg.CustomBackground.FeaturesBackground != "" {
		return &beyond.FeatureDefinition{
			Name:        bg.CustomBackground.Name,
			Description: bg.CustomBackground.FeaturesBackground,
		}
	}
	return nil
}

func (a *assembly) appendFeature(items *[]foundry.Item, def *beyond.FeatureDefinition, origin FeatureOrigin) {
	item, err := a.safeItem(func() *foundry.Item {
		return TransformFeature(def, origin, a.opts)
	})
	if err != nil {
		a.warnf("features", featureEntryName(def), "transform failed: %v", err)
		return
	}
	if item == nil {
		a.warnf("features", featureEntryName(def), "missing definition, entry dropped")
		return
	}
	*items = append(*items, *item)
}

func featureEntryName(def *beyond.FeatureDefinition) string {
	if def != nil && def.Name != "" {
		return def.Name
	}
	return "unknown feature"
}

// safeItem contains a panic inside a single entry's transform so one
// malformed entry cannot abort the whole assembly.
func (a *assembly) safeItem(transform func() *foundry.Item) (item *foundry.Item, err error) {
	defer func() {
		if r := recover(); r != nil {
			item = nil
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return transform(), nil
}

package transformer_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/beyondvtt/vtt-importer/internal/entities/beyond"
	"github.com/beyondvtt/vtt-importer/internal/entities/foundry"
	"github.com/beyondvtt/vtt-importer/internal/transformer"
)

type AssemblerTestSuite struct {
	suite.Suite
	opts transformer.Options
}

func TestAssemblerSuite(t *testing.T) {
	suite.Run(t, new(AssemblerTestSuite))
}

func (s *AssemblerTestSuite) SetupTest() {
	s.opts = transformer.DefaultOptions()
}

// levelFiveCleric is the reference import scenario: one caster class,
// a race, a background, equipment, spells, and modifiers all present.
func levelFiveCleric() *beyond.Character {
	return &beyond.Character{
		ID:          7001,
		Name:        "Sister Annika",
		AlignmentID: 2,

		BaseHitPoints:      27,
		RemovedHitPoints:   4,
		TemporaryHitPoints: 3,

		Stats: []beyond.StatEntry{
			{ID: 1, Value: intPtr(14)},
			{ID: 2, Value: intPtr(10)},
			{ID: 3, Value: intPtr(14)},
			{ID: 4, Value: intPtr(8)},
			{ID: 5, Value: intPtr(16)},
			{ID: 6, Value: intPtr(12)},
		},

		Classes: []beyond.Class{
			{
				Level:           5,
				IsStartingClass: true,
				Definition: &beyond.ClassDefinition{
					ID:                    5,
					Name:                  "Cleric",
					HitDice:               8,
					CanCastSpells:         true,
					SpellCastingAbilityID: intPtr(5),
				},
				ClassFeatures: []beyond.ClassFeature{
					{Definition: &beyond.FeatureDefinition{
						ID:          3001,
						Name:        "Channel Divinity",
						Description: "You can channel divine energy.",
						ClassID:     5,
						LimitedUse:  &beyond.LimitedUse{MaxUses: 1, ResetType: 1},
					}},
					{Definition: &beyond.FeatureDefinition{
						ID:          3002,
						Name:        "Divine Domain",
						Description: "Choose one domain related to your deity.",
						ClassID:     5,
					}},
				},
			},
		},

		Race: &beyond.Race{
			FullName: "Hill Dwarf",
			Size:     "Medium",
			WeightSpeeds: &beyond.WeightSpeeds{
				Normal: &beyond.SpeedSet{Walk: 25},
			},
			RacialTraits: []beyond.RacialTrait{
				{Definition: &beyond.FeatureDefinition{
					ID:          4001,
					Name:        "Dwarven Resilience",
					Description: "You have advantage on saving throws against poison.",
				}},
			},
		},

		Background: &beyond.Background{
			Definition: &beyond.BackgroundDefinition{
				ID:                 9001,
				Name:               "Acolyte",
				FeatureName:        "Shelter of the Faithful",
				FeatureDescription: "You command the respect of those who share your faith.",
			},
		},

		Inventory: []beyond.Item{
			{
				ID:       101,
				Equipped: true,
				Quantity: 1,
				Definition: &beyond.ItemDefinition{
					Name:       "Mace",
					FilterType: "Weapon",
					Weight:     4,
					Damage:     &beyond.Die{DiceCount: 1, DiceValue: 6},
					DamageType: "Bludgeoning",
				},
			},
			{
				ID:       102,
				Equipped: true,
				Quantity: 1,
				Definition: &beyond.ItemDefinition{
					Name:       "Chain Mail",
					FilterType: "Armor",
					Weight:     55,
				},
			},
		},

		ClassSpells: []beyond.ClassSpells{
			{
				CharacterClassID: 5,
				Spells: []beyond.Spell{
					{
						Prepared: true,
						Definition: &beyond.SpellDefinition{
							ID:     2001,
							Name:   "Cure Wounds",
							Level:  1,
							School: "Evocation",
						},
					},
					{
						Prepared: true,
						Definition: &beyond.SpellDefinition{
							ID:     2002,
							Name:   "Spiritual Weapon",
							Level:  2,
							School: "Evocation",
						},
					},
				},
			},
		},

		Modifiers: map[string][]beyond.Modifier{
			"class": {
				{Type: beyond.ModifierTypeProficiency, SubType: "wisdom-saving-throws"},
				{Type: beyond.ModifierTypeProficiency, SubType: "charisma-saving-throws"},
				{Type: beyond.ModifierTypeProficiency, SubType: "medicine", FriendlySubtypeName: "Medicine"},
				{Type: beyond.ModifierTypeProficiency, SubType: "heavy-armor", FriendlySubtypeName: "Heavy Armor"},
			},
			"race": {
				{Type: beyond.ModifierTypeLanguage, SubType: "common", FriendlySubtypeName: "Common"},
				{Type: beyond.ModifierTypeLanguage, SubType: "dwarvish", FriendlySubtypeName: "Dwarvish"},
			},
		},

		Currencies: &beyond.Currencies{GP: 15, SP: 30},
		Notes:      &beyond.Notes{Backstory: "Raised in a mountain temple."},
		Traits:     &beyond.PersonalityTraits{Ideals: "Tradition."},
	}
}

func (s *AssemblerTestSuite) TestAssemble_LevelFiveCleric() {
	result, err := transformer.Assemble(levelFiveCleric(), s.opts)
	s.Require().NoError(err)
	s.Require().NotNil(result.Actor)
	s.Empty(result.Warnings)

	actor := result.Actor
	s.Equal("Sister Annika", actor.Name)
	s.Equal(foundry.ActorTypeCharacter, actor.Type)

	system := actor.System
	s.Len(system.Abilities, 6)
	s.Equal(16, system.Abilities["wis"].Value)
	s.Equal(3, system.Abilities["wis"].Mod)
	s.Equal(1, system.Abilities["wis"].Proficient)
	s.Equal(1, system.Abilities["cha"].Proficient)
	s.Equal(0, system.Abilities["str"].Proficient)

	// 27 base + con 2 * level 5
	s.Equal(37, system.Attributes.HP.Max)
	s.Equal(33, system.Attributes.HP.Value)
	s.Equal(3, system.Attributes.HP.Temp)

	s.Equal(3, system.Attributes.Prof)
	s.Equal("wis", system.Attributes.Spellcasting)
	s.Equal(14, system.Attributes.SpellDC)
	s.Equal(25, system.Attributes.Movement.Walk)
	s.Equal(14*15, system.Attributes.Encumbrance.Max)

	s.Equal("Hill Dwarf", system.Details.Race)
	s.Equal("Acolyte", system.Details.Background)
	s.Equal("ng", system.Details.Alignment)
	s.Equal(map[string]int{"Cleric": 5}, system.Details.Classes)
	s.Equal(5, system.Details.Level)
	s.Equal("Raised in a mountain temple.", system.Details.Biography.Value)
	s.Equal("Tradition.", system.Details.Ideal)

	s.Equal("med", system.Traits.Size)
	s.Equal([]string{"Common", "Dwarvish"}, system.Traits.Languages.Value)
	s.Equal([]string{"Heavy Armor"}, system.Traits.ArmorProf.Value)

	s.Len(system.Skills, 18)
	s.Equal(transformer.RankProficient, system.Skills["med"].Value)
	s.Equal("wis", system.Skills["med"].Ability)
	s.Equal(transformer.RankNone, system.Skills["ath"].Value)

	s.Equal(15, system.Currency.GP)
	s.Equal(30, system.Currency.SP)

	s.Equal(4, system.Spells.Spell1.Max)
	s.Equal(3, system.Spells.Spell2.Max)
	s.Equal(2, system.Spells.Spell3.Max)
	s.Zero(system.Spells.Spell4.Max)
	s.Zero(system.Spells.Pact.Max)

	s.Equal("Channel Divinity", system.Resources.Primary.Label)
	s.True(system.Resources.Primary.SR)

	s.Require().NotNil(actor.Flags.Importer)
	s.Equal(7001, actor.Flags.Importer.SourceID)

	var equipment, spells, features int
	for _, item := range actor.Items {
		switch item.Type {
		case foundry.ItemTypeSpell:
			spells++
		case foundry.ItemTypeFeat:
			features++
		default:
			equipment++
		}
	}
	s.Equal(2, equipment)
	s.Equal(2, spells)
	s.Equal(4, features, "two class features, one racial trait, one background feature")
}

func (s *AssemblerTestSuite) TestAssemble_NilCharacter() {
	result, err := transformer.Assemble(nil, s.opts)
	s.Error(err)
	s.Nil(result)
}

func (s *AssemblerTestSuite) TestAssemble_EmptyCharacter() {
	result, err := transformer.Assemble(&beyond.Character{Name: "Blank"}, s.opts)
	s.Require().NoError(err)

	system := result.Actor.System
	s.Len(system.Abilities, 6)
	s.Equal(10, system.Abilities["str"].Value, "absent scores default to ten")
	s.Len(system.Skills, 18)
	s.Equal(1, system.Details.Level)
	s.Equal("tn", system.Details.Alignment)
	s.Equal(30, system.Attributes.Movement.Walk, "no race data falls back to the standard speed")
	s.NotNil(system.Traits.Languages.Value)
	s.NotNil(result.Actor.Items)
}

func (s *AssemblerTestSuite) TestAssemble_OverridesWin() {
	char := levelFiveCleric()
	char.OverrideHitPoints = intPtr(0)
	char.OverrideStats = []beyond.StatEntry{{ID: 5, Value: intPtr(20)}}

	result, err := transformer.Assemble(char, s.opts)
	s.Require().NoError(err)

	s.Equal(0, result.Actor.System.Attributes.HP.Max, "explicit zero override wins")
	s.Equal(20, result.Actor.System.Abilities["wis"].Value)
}

func (s *AssemblerTestSuite) TestAssemble_MissingDefinitionsWarn() {
	char := levelFiveCleric()
	char.Inventory = append(char.Inventory, beyond.Item{ID: 999})
	char.ClassSpells[0].Spells = append(char.ClassSpells[0].Spells, beyond.Spell{})

	result, err := transformer.Assemble(char, s.opts)
	s.Require().NoError(err)
	s.Len(result.Warnings, 2)

	var sections []string
	for _, w := range result.Warnings {
		sections = append(sections, w.Section)
	}
	s.Contains(sections, "equipment")
	s.Contains(sections, "spells")

	// The bad spell still lands as a sentinel; the bad item is dropped.
	var unknown bool
	for _, item := range result.Actor.Items {
		if item.Name == "Unknown Spell" {
			unknown = true
		}
	}
	s.True(unknown)
}

func (s *AssemblerTestSuite) TestAssemble_GatesCategories() {
	opts := s.opts
	opts.ImportEquipment = false
	opts.ImportSpells = false

	result, err := transformer.Assemble(levelFiveCleric(), opts)
	s.Require().NoError(err)

	for _, item := range result.Actor.Items {
		s.Equal(foundry.ItemTypeFeat, item.Type)
	}
}

func (s *AssemblerTestSuite) TestAssemble_WarlockPactSpells() {
	char := &beyond.Character{
		ID:   7002,
		Name: "Morthos",
		Classes: []beyond.Class{
			{
				Level:           5,
				IsStartingClass: true,
				Definition: &beyond.ClassDefinition{
					ID:                    14,
					Name:                  "Warlock",
					CanCastSpells:         true,
					SpellCastingAbilityID: intPtr(6),
				},
			},
		},
		ClassSpells: []beyond.ClassSpells{
			{
				CharacterClassID: 14,
				Spells: []beyond.Spell{
					{Definition: &beyond.SpellDefinition{ID: 2100, Name: "Hex", Level: 1, School: "Enchantment"}},
				},
			},
		},
	}

	result, err := transformer.Assemble(char, s.opts)
	s.Require().NoError(err)

	s.Equal(2, result.Actor.System.Spells.Pact.Max)
	s.Equal(3, result.Actor.System.Spells.Pact.Level)
	s.Zero(result.Actor.System.Spells.Spell1.Max)

	var hex *foundry.Item
	for i := range result.Actor.Items {
		if result.Actor.Items[i].Name == "Hex" {
			hex = &result.Actor.Items[i]
		}
	}
	s.Require().NotNil(hex)
	s.Equal("pact", hex.System.Preparation.Mode)
}

func (s *AssemblerTestSuite) TestAssemble_MulticlassSlotsAndLevels() {
	char := &beyond.Character{
		ID:   7003,
		Name: "Twofold",
		Classes: []beyond.Class{
			{
				Level:           3,
				IsStartingClass: true,
				Definition: &beyond.ClassDefinition{
					ID: 5, Name: "Cleric", CanCastSpells: true, SpellCastingAbilityID: intPtr(5),
				},
			},
			{
				Level: 2,
				Definition: &beyond.ClassDefinition{
					ID: 7, Name: "Paladin", CanCastSpells: true, SpellCastingAbilityID: intPtr(6),
				},
			},
		},
	}

	result, err := transformer.Assemble(char, s.opts)
	s.Require().NoError(err)

	s.Equal(5, result.Actor.System.Details.Level)
	s.Equal(3, result.Actor.System.Attributes.Prof)
	// cleric 3 (4/2) + paladin 2 (2)
	s.Equal(6, result.Actor.System.Spells.Spell1.Max)
	s.Equal(2, result.Actor.System.Spells.Spell2.Max)
	s.Equal("wis", result.Actor.System.Attributes.Spellcasting,
		"starting class determines the casting ability")
}

func (s *AssemblerTestSuite) TestAssemble_NegativeCurrencyClamped() {
	char := &beyond.Character{
		Name:       "Debtor",
		Currencies: &beyond.Currencies{GP: -5, SP: 12},
	}

	result, err := transformer.Assemble(char, s.opts)
	s.Require().NoError(err)
	s.Zero(result.Actor.System.Currency.GP)
	s.Equal(12, result.Actor.System.Currency.SP)
}

func (s *AssemblerTestSuite) TestAssemble_GishSubclassSlots() {
	char := &beyond.Character{
		Name: "Vance",
		Classes: []beyond.Class{
			{
				Level:              7,
				IsStartingClass:    true,
				Definition:         &beyond.ClassDefinition{ID: 6, Name: "Fighter"},
				SubclassDefinition: &beyond.ClassDefinition{ID: 60, Name: "Eldritch Knight"},
			},
		},
	}

	result, err := transformer.Assemble(char, s.opts)
	s.Require().NoError(err)
	s.Equal(4, result.Actor.System.Spells.Spell1.Max)
	s.Equal(2, result.Actor.System.Spells.Spell2.Max)
}

func (s *AssemblerTestSuite) TestAssemble_OptionalAndSubclassFeatures() {
	char := &beyond.Character{
		ID: 7005,
		Classes: []beyond.Class{
			{
				Level:              6,
				IsStartingClass:    true,
				Definition:         &beyond.ClassDefinition{ID: 12, Name: "Cleric"},
				SubclassDefinition: &beyond.ClassDefinition{ID: 31, Name: "Life Domain"},
				ClassFeatures: []beyond.ClassFeature{
					{Definition: &beyond.FeatureDefinition{ID: 401, Name: "Channel Divinity", ClassID: 12}},
					// Subclass feature folded into the class entry,
					// tagged with the subclass ID.
					{Definition: &beyond.FeatureDefinition{ID: 402, Name: "Preserve Life", ClassID: 31}},
				},
			},
		},
		OptionalClassFeatures: []beyond.ClassFeature{
			{Definition: &beyond.FeatureDefinition{ID: 403, Name: "Blessed Strikes", ClassID: 12}},
		},
	}

	result, err := transformer.Assemble(char, s.opts)
	s.Require().NoError(err)

	byName := make(map[string]foundry.Item)
	for _, item := range result.Actor.Items {
		byName[item.Name] = item
	}

	blessed, ok := byName["Blessed Strikes"]
	s.Require().True(ok, "optional class features become feat items")
	s.Equal(foundry.ItemTypeFeat, blessed.Type)
	s.Equal("class-12", blessed.System.Type.Subtype)

	preserve, ok := byName["Preserve Life"]
	s.Require().True(ok)
	s.Equal("class-31", preserve.System.Type.Subtype)

	_, ok = byName["Channel Divinity"]
	s.True(ok)
}

// TestAssemble_Properties exercises the engine across generated
// characters: it must never error, and repeated runs over the same
// input must produce identical documents.
func TestAssemble_Properties(t *testing.T) {
	classNames := []string{"Cleric", "Wizard", "Paladin", "Warlock", "Fighter", "Rogue"}

	rapid.Check(t, func(t *rapid.T) {
		char := &beyond.Character{
			ID:   rapid.IntRange(1, 1<<30).Draw(t, "id"),
			Name: rapid.StringMatching(`[A-Za-z ]{1,24}`).Draw(t, "name"),

			AlignmentID:       rapid.IntRange(0, 12).Draw(t, "alignment"),
			BaseHitPoints:     rapid.IntRange(0, 200).Draw(t, "baseHP"),
			RemovedHitPoints:  rapid.IntRange(0, 250).Draw(t, "removedHP"),
			BonusHitPoints:    rapid.IntRange(0, 40).Draw(t, "bonusHP"),
			OverrideHitPoints: nil,
		}

		for id := 1; id <= 6; id++ {
			if rapid.Bool().Draw(t, "hasStat") {
				value := rapid.IntRange(1, 30).Draw(t, "stat")
				char.Stats = append(char.Stats, beyond.StatEntry{ID: id, Value: &value})
			}
		}

		classCount := rapid.IntRange(0, 3).Draw(t, "classCount")
		for i := 0; i < classCount; i++ {
			name := rapid.SampledFrom(classNames).Draw(t, "className")
			char.Classes = append(char.Classes, beyond.Class{
				Level:           rapid.IntRange(1, 20).Draw(t, "classLevel"),
				IsStartingClass: i == 0,
				Definition: &beyond.ClassDefinition{
					ID:                    i + 1,
					Name:                  name,
					CanCastSpells:         rapid.Bool().Draw(t, "casts"),
					SpellCastingAbilityID: intPtr(rapid.IntRange(1, 6).Draw(t, "castingAbility")),
				},
			})
		}

		opts := transformer.DefaultOptions()

		first, err := transformer.Assemble(char, opts)
		if err != nil {
			t.Fatalf("assemble failed: %v", err)
		}

		if len(first.Actor.System.Abilities) != 6 {
			t.Fatalf("expected 6 abilities, got %d", len(first.Actor.System.Abilities))
		}
		if len(first.Actor.System.Skills) != 18 {
			t.Fatalf("expected 18 skills, got %d", len(first.Actor.System.Skills))
		}
		if first.Actor.System.Attributes.HP.Value < 0 {
			t.Fatalf("current HP went negative: %d", first.Actor.System.Attributes.HP.Value)
		}

		second, err := transformer.Assemble(char, opts)
		if err != nil {
			t.Fatalf("assemble failed on second run: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatal("repeated assembly of the same character diverged")
		}
	})
}

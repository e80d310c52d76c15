package transformer_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/beyondvtt/vtt-importer/internal/entities/beyond"
	"github.com/beyondvtt/vtt-importer/internal/entities/foundry"
	"github.com/beyondvtt/vtt-importer/internal/transformer"
)

type EquipmentTestSuite struct {
	suite.Suite
}

func TestEquipmentSuite(t *testing.T) {
	suite.Run(t, new(EquipmentTestSuite))
}

func (s *EquipmentTestSuite) TestTransformItem_Weapon() {
	cost := 15.0
	item := &beyond.Item{
		ID:       101,
		Equipped: true,
		Quantity: 1,
		Definition: &beyond.ItemDefinition{
			Name:        "Longsword",
			FilterType:  "Weapon",
			Weight:      3,
			Cost:        &cost,
			Rarity:      "Common",
			Description: "A versatile blade.",
			Damage:      &beyond.Die{DiceCount: 1, DiceValue: 8},
			DamageType:  "Slashing",
		},
	}

	result := transformer.TransformItem(item)
	s.Require().NotNil(result)

	s.Equal("Longsword", result.Name)
	s.Equal(foundry.ItemTypeWeapon, result.Type)
	s.Equal(1, result.System.Quantity)
	s.Equal(3.0, result.System.Weight)
	s.Require().NotNil(result.System.Price)
	s.Equal(15.0, result.System.Price.Value)
	s.Equal("gp", result.System.Price.Denomination)
	s.Equal("common", result.System.Rarity)
	s.True(result.System.Equipped)

	s.Require().Len(result.System.Damage.Parts, 1)
	s.Equal("1d8", result.System.Damage.Parts[0].Formula)
	s.Equal("slashing", result.System.Damage.Parts[0].Type)
	s.Equal("action", result.System.Activation.Type)

	s.Require().NotNil(result.Flags.Importer)
	s.Equal(101, result.Flags.Importer.SourceID)
}

func (s *EquipmentTestSuite) TestTransformItem_Armor() {
	ac := 16
	item := &beyond.Item{
		ID:       102,
		Equipped: true,
		Quantity: 1,
		Definition: &beyond.ItemDefinition{
			Name:       "Chain Mail",
			FilterType: "Armor",
			Weight:     55,
			ArmorClass: &ac,
		},
	}

	result := transformer.TransformItem(item)
	s.Require().NotNil(result)
	s.Equal(foundry.ItemTypeEquipment, result.Type)
	s.Require().NotNil(result.System.Armor)
	s.Equal(16, result.System.Armor.Value)

	s.Run("no armor block without an armor class", func() {
		item.Definition.ArmorClass = nil
		result := transformer.TransformItem(item)
		s.Require().NotNil(result)
		s.Nil(result.System.Armor)
	})
}

func (s *EquipmentTestSuite) TestTransformItem_MissingDefinition() {
	s.Nil(transformer.TransformItem(&beyond.Item{ID: 7}))
	s.Nil(transformer.TransformItem(nil))
}

func (s *EquipmentTestSuite) TestTransformItem_Defaults() {
	item := &beyond.Item{
		Definition: &beyond.ItemDefinition{Name: "Mystery Object"},
	}

	result := transformer.TransformItem(item)
	s.Require().NotNil(result)

	s.Equal(foundry.ItemTypeLoot, result.Type)
	s.Equal(1, result.System.Quantity, "zero quantity floors at one")
	s.Equal("common", result.System.Rarity)
	s.Nil(result.System.Price)
	s.Empty(result.System.Damage.Parts)
}

func (s *EquipmentTestSuite) TestTransformItem_WeightMultiplier() {
	multiplier := 0.25
	item := &beyond.Item{
		Quantity: 20,
		Definition: &beyond.ItemDefinition{
			Name:             "Arrow",
			FilterType:       "Gear",
			Weight:           4,
			WeightMultiplier: &multiplier,
		},
	}

	result := transformer.TransformItem(item)
	s.Require().NotNil(result)
	s.Equal(1.0, result.System.Weight)
	s.Equal(20, result.System.Quantity)
}

func (s *EquipmentTestSuite) TestTransformItem_Attunement() {
	testCases := []struct {
		name      string
		canAttune bool
		isAttuned bool
		expected  int
	}{
		{name: "plain item", expected: 0},
		{name: "attunable but not attuned", canAttune: true, expected: 1},
		{name: "attuned", canAttune: true, isAttuned: true, expected: 2},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			item := &beyond.Item{
				IsAttuned: tc.isAttuned,
				Definition: &beyond.ItemDefinition{
					Name:      "Ring",
					CanAttune: tc.canAttune,
				},
			}
			result := transformer.TransformItem(item)
			s.Require().NotNil(result)
			s.Equal(tc.expected, result.System.Attunement)
		})
	}
}

func (s *EquipmentTestSuite) TestTransformItem_HomebrewProvenance() {
	item := &beyond.Item{
		ID: 55,
		Definition: &beyond.ItemDefinition{
			Name:       "Peculiar Gadget",
			IsHomebrew: true,
		},
	}

	result := transformer.TransformItem(item)
	s.Require().NotNil(result)
	s.Require().NotNil(result.Flags.Importer)
	s.True(result.Flags.Importer.Homebrew)
	s.Equal(55, result.Flags.Importer.SourceID)
}

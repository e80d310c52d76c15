package transformer_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/beyondvtt/vtt-importer/internal/entities/beyond"
	"github.com/beyondvtt/vtt-importer/internal/entities/foundry"
	"github.com/beyondvtt/vtt-importer/internal/transformer"
)

type SpellTestSuite struct {
	suite.Suite
	opts transformer.Options
}

func TestSpellSuite(t *testing.T) {
	suite.Run(t, new(SpellTestSuite))
}

func (s *SpellTestSuite) SetupTest() {
	s.opts = transformer.DefaultOptions()
}

func intPtr(n int) *int { return &n }

func fireball() *beyond.Spell {
	return &beyond.Spell{
		Prepared: true,
		Definition: &beyond.SpellDefinition{
			ID:                    2000,
			Name:                  "Fireball",
			Level:                 3,
			School:                "Evocation",
			Components:            []int{1, 2, 3},
			ComponentsDescription: "a tiny ball of bat guano and sulfur",
			Description:           "A bright streak flashes to a point you choose.",
			AtHigherLevels:        "the damage increases by 1d6 for each slot level above 3rd",
			RequiresSavingThrow:   true,
			SaveDcAbilityID:       intPtr(2),
			Duration:              &beyond.Duration{DurationType: "Instantaneous"},
			Range: &beyond.Range{
				Origin:     "Ranged",
				RangeValue: 150,
				AoeType:    "Sphere",
				AoeValue:   20,
			},
			Activation: &beyond.Activation{ActivationType: 1, ActivationTime: 1},
			Modifiers: []beyond.SpellModifier{
				{
					Type:         "damage",
					SubType:      "fire",
					DamageTypeID: intPtr(6),
					Die:          &beyond.Die{DiceCount: 8, DiceValue: 6},
				},
			},
		},
	}
}

func (s *SpellTestSuite) TestTransformSpell_Fireball() {
	item := transformer.TransformSpell(fireball(), transformer.PreparationModePrepared, s.opts)
	s.Require().NotNil(item)

	s.Equal("Fireball", item.Name)
	s.Equal(foundry.ItemTypeSpell, item.Type)
	s.Equal(3, item.System.Level)
	s.Equal("evocation", item.System.School)

	s.Require().NotNil(item.System.Components)
	s.True(item.System.Components.Vocal)
	s.True(item.System.Components.Somatic)
	s.True(item.System.Components.Material)
	s.False(item.System.Components.Ritual)
	s.False(item.System.Components.Concentration)

	s.Require().NotNil(item.System.Preparation)
	s.Equal("prepared", item.System.Preparation.Mode)
	s.True(item.System.Preparation.Prepared)

	s.Equal("action", item.System.Activation.Type)
	s.Equal(1, item.System.Activation.Cost)
	s.Equal("instantaneous", item.System.Duration.Units)
	s.Equal(150, item.System.Range.Value)
	s.Equal("ft", item.System.Range.Units)
	s.Equal(20, item.System.Target.Value)
	s.Equal("sphere", item.System.Target.Type)

	s.Equal("dex", item.System.Save.Ability)
	s.Equal("spell", item.System.Save.Scaling)

	s.Require().Len(item.System.Damage.Parts, 1)
	s.Equal("8d6", item.System.Damage.Parts[0].Formula)
	s.Equal("fire", item.System.Damage.Parts[0].Type)

	s.Require().NotNil(item.System.Scaling)
	s.Equal(foundry.ScalingModeLevel, item.System.Scaling.Mode)
	s.Equal("1d6", item.System.Scaling.Formula)

	s.Require().NotNil(item.Flags.Importer)
	s.Equal(2000, item.Flags.Importer.SourceID)
}

func (s *SpellTestSuite) TestTransformSpell_MissingDefinitionSentinel() {
	item := transformer.TransformSpell(&beyond.Spell{}, transformer.PreparationModeInnate, s.opts)
	s.Require().NotNil(item)

	s.Equal("Unknown Spell", item.Name)
	s.Equal(foundry.ItemTypeSpell, item.Type)
	s.Equal("evocation", item.System.School)
	s.Equal("innate", item.System.Preparation.Mode)
	s.Equal("instantaneous", item.System.Duration.Units)
	s.Equal(1, item.System.Target.Value)
	s.Equal("creature", item.System.Target.Type)
	s.NotNil(item.System.Damage.Parts)
}

func (s *SpellTestSuite) TestTransformSpell_NilSpellSentinel() {
	item := transformer.TransformSpell(nil, transformer.PreparationModePrepared, s.opts)
	s.Require().NotNil(item)
	s.Equal("Unknown Spell", item.Name)
	s.False(item.System.Preparation.Prepared)
}

func (s *SpellTestSuite) TestTransformSpell_SpecialActivationPolicy() {
	spell := fireball()
	spell.Definition.Activation = &beyond.Activation{ActivationType: 6, ActivationTime: 10}

	s.Run("default folds special to minute", func() {
		item := transformer.TransformSpell(spell, transformer.PreparationModePrepared, s.opts)
		s.Equal("minute", item.System.Activation.Type)
		s.Equal(10, item.System.Activation.Cost)
	})

	s.Run("substituted token", func() {
		opts := s.opts
		opts.SpecialActivation = transformer.ActivationHour
		item := transformer.TransformSpell(spell, transformer.PreparationModePrepared, opts)
		s.Equal("hour", item.System.Activation.Type)
	})

	s.Run("day is reachable only by substitution", func() {
		opts := s.opts
		opts.SpecialActivation = transformer.ActivationDay
		item := transformer.TransformSpell(spell, transformer.PreparationModePrepared, opts)
		s.Equal("day", item.System.Activation.Type)

		for code := 1; code <= 7; code++ {
			s.NotEqual("day", transformer.ActivationToken(code))
		}
	})
}

func (s *SpellTestSuite) TestTransformSpell_DurationScale() {
	tests := []struct {
		name     string
		duration *beyond.Duration
		want     string
	}{
		{
			name:     "concentration in minutes",
			duration: &beyond.Duration{DurationInterval: 10, DurationType: "Concentration", DurationUnit: "Minute"},
			want:     "minute",
		},
		{
			name:     "concentration in hours",
			duration: &beyond.Duration{DurationInterval: 1, DurationType: "Concentration", DurationUnit: "Hour"},
			want:     "hour",
		},
		{
			name:     "timed in days",
			duration: &beyond.Duration{DurationInterval: 7, DurationType: "Time", DurationUnit: "Day"},
			want:     "day",
		},
		{
			name:     "missing unit keeps the type mapping",
			duration: &beyond.Duration{DurationInterval: 1, DurationType: "Concentration"},
			want:     "minute",
		},
		{
			name:     "unrecognized unit keeps the type mapping",
			duration: &beyond.Duration{DurationInterval: 1, DurationType: "Time", DurationUnit: "Fortnight"},
			want:     "minute",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			spell := fireball()
			spell.Definition.Duration = tt.duration

			item := transformer.TransformSpell(spell, transformer.PreparationModePrepared, s.opts)
			s.Require().NotNil(item)
			s.Equal(tt.want, item.System.Duration.Units)
			s.Equal(tt.duration.DurationInterval, item.System.Duration.Value)
		})
	}
}

func (s *SpellTestSuite) TestTransformSpell_Healing() {
	spell := &beyond.Spell{
		Definition: &beyond.SpellDefinition{
			Name:   "Cure Wounds",
			Level:  1,
			School: "Evocation",
			Modifiers: []beyond.SpellModifier{
				{
					Type: "restore-hp",
					Die:  &beyond.Die{DiceCount: 1, DiceValue: 8},
				},
			},
		},
	}

	item := transformer.TransformSpell(spell, transformer.PreparationModePrepared, s.opts)
	s.Require().NotNil(item)
	s.Empty(item.System.Damage.Parts)
	s.Equal("1d8", item.System.Formula)
}

func (s *SpellTestSuite) TestTransformSpell_CantripScaling() {
	spell := &beyond.Spell{
		Definition: &beyond.SpellDefinition{
			Name:           "Fire Bolt",
			Level:          0,
			School:         "Evocation",
			AtHigherLevels: "the damage increases by 1d10 at 5th level",
		},
	}

	item := transformer.TransformSpell(spell, transformer.PreparationModePrepared, s.opts)
	s.Require().NotNil(item.System.Scaling)
	s.Equal(foundry.ScalingModeCantrip, item.System.Scaling.Mode)
	s.Equal("1d10", item.System.Scaling.Formula)
}

func (s *SpellTestSuite) TestTransformSpell_MaterialCost() {
	spell := fireball()
	spell.Definition.ComponentsDescription = "a diamond worth at least 300 gp"

	item := transformer.TransformSpell(spell, transformer.PreparationModePrepared, s.opts)
	s.Require().NotNil(item.System.Materials)
	s.Equal(300, item.System.Materials.Cost)
}

func (s *SpellTestSuite) TestTransformSpell_SelfRangeHasNoDistance() {
	spell := fireball()
	spell.Definition.Range = &beyond.Range{Origin: "Self", RangeValue: 30}

	item := transformer.TransformSpell(spell, transformer.PreparationModePrepared, s.opts)
	s.Equal("self", item.System.Range.Units)
	s.Zero(item.System.Range.Value)
}

func (s *SpellTestSuite) TestTransformSpell_FixedDamageModifier() {
	spell := &beyond.Spell{
		Definition: &beyond.SpellDefinition{
			Name:   "Magic Missile",
			Level:  1,
			School: "Evocation",
			Modifiers: []beyond.SpellModifier{
				{
					Type:         "damage",
					SubType:      "force",
					DamageTypeID: intPtr(7),
					Die:          &beyond.Die{DiceCount: 1, DiceValue: 4, FixedValue: intPtr(1)},
				},
			},
		},
	}

	item := transformer.TransformSpell(spell, transformer.PreparationModePrepared, s.opts)
	s.Require().Len(item.System.Damage.Parts, 1)
	s.Equal("1d4 + 1", item.System.Damage.Parts[0].Formula)
	s.Equal("force", item.System.Damage.Parts[0].Type)
}

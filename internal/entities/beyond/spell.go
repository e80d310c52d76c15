package beyond

// ClassSpells groups the spells granted through one class.
type ClassSpells struct {
	CharacterClassID int     `json:"characterClassId"`
	Spells           []Spell `json:"spells"`
}

// SpellSources groups spells granted by non-class origins.
type SpellSources struct {
	Race []Spell `json:"race"`
	Item []Spell `json:"item"`
	Feat []Spell `json:"feat"`
}

// Spell is one spell entry. Definition may be absent for entries the
// service failed to resolve.
type Spell struct {
	Prepared           bool             `json:"prepared"`
	AlwaysPrepared     bool             `json:"alwaysPrepared"`
	CountsAsKnownSpell bool             `json:"countsAsKnownSpell"`
	UsesSpellSlot      bool             `json:"usesSpellSlot"`
	Definition         *SpellDefinition `json:"definition"`
}

// SpellDefinition carries the canonical mechanics of a spell.
type SpellDefinition struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Level  int    `json:"level"`
	School string `json:"school"`

	Duration   *Duration   `json:"duration"`
	Range      *Range      `json:"range"`
	Activation *Activation `json:"activation"`

	// Components is a set of small integer codes: 1 verbal, 2 somatic,
	// 3 material.
	Components            []int  `json:"components"`
	ComponentsDescription string `json:"componentsDescription"`

	Ritual        bool `json:"ritual"`
	Concentration bool `json:"concentration"`

	RequiresSavingThrow bool `json:"requiresSavingThrow"`
	SaveDcAbilityID     *int `json:"saveDcAbilityId"`

	Modifiers []SpellModifier `json:"modifiers"`

	AtHigherLevels string `json:"atHigherLevels"`
	Description    string `json:"description"`
	IsHomebrew     bool   `json:"isHomebrew"`
}

// Duration is a spell or feature duration.
type Duration struct {
	DurationInterval int    `json:"durationInterval"`
	DurationUnit     string `json:"durationUnit"`
	DurationType     string `json:"durationType"`
}

// Range is a spell or feature range block.
type Range struct {
	Origin     string `json:"origin"`
	RangeValue int    `json:"rangeValue"`
	AoeType    string `json:"aoeType"`
	AoeValue   int    `json:"aoeValue"`
}

// Activation describes how an action is activated. ActivationType is a
// category-scoped numeric code.
type Activation struct {
	ActivationType int `json:"activationType"`
	ActivationTime int `json:"activationTime"`
}

// SpellModifier is one effect entry on a spell definition. Damage
// entries carry a damage type (numeric code when present, free-text
// subtype otherwise) parallel to their dice entry.
type SpellModifier struct {
	Type         string `json:"type"`
	SubType      string `json:"subType"`
	DamageTypeID *int   `json:"damageTypeId"`
	Die          *Die   `json:"die"`
}

// Die is a dice expression in structured form.
type Die struct {
	DiceCount  int    `json:"diceCount"`
	DiceValue  int    `json:"diceValue"`
	FixedValue *int   `json:"fixedValue"`
	DiceString string `json:"diceString"`
}

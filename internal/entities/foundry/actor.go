// Package foundry defines the target actor and item document types
// consumed by the tabletop engine.
//
// The assembler guarantees that a marshaled Actor is structurally
// complete: all six ability keys, all eighteen skill keys, and all five
// currency denominations are always present.
package foundry

// ActorTypeCharacter is the only actor type the importer produces.
const ActorTypeCharacter = "character"

// Actor is the root target document.
type Actor struct {
	Name   string      `json:"name"`
	Type   string      `json:"type"`
	System ActorSystem `json:"system"`
	Items  []Item      `json:"items"`
	Flags  Flags       `json:"flags"`
}

// Flags carries provenance metadata linking a document back to its
// source record.
type Flags struct {
	Importer *Provenance `json:"vtt-importer,omitempty"`
}

// Provenance identifies the source entity a document was built from.
type Provenance struct {
	SourceID int  `json:"sourceId,omitempty"`
	Homebrew bool `json:"homebrew,omitempty"`
}

// ActorSystem is the actor's system data block.
type ActorSystem struct {
	Abilities  map[string]Ability `json:"abilities"`
	Attributes Attributes         `json:"attributes"`
	Details    Details            `json:"details"`
	Traits     Traits             `json:"traits"`
	Currency   Currency           `json:"currency"`
	Skills     map[string]Skill   `json:"skills"`
	Spells     SpellSlots         `json:"spells"`
	Resources  Resources          `json:"resources"`
}

// Ability is one ability score entry. Proficient is 1 when the actor is
// proficient in the ability's saving throw.
type Ability struct {
	Value      int `json:"value"`
	Mod        int `json:"mod"`
	Proficient int `json:"proficient"`
}

// Attributes holds the derived attribute block.
type Attributes struct {
	HP           HitPoints   `json:"hp"`
	AC           ArmorClass  `json:"ac"`
	Init         int         `json:"init"`
	Movement     Movement    `json:"movement"`
	Senses       Senses      `json:"senses"`
	Prof         int         `json:"prof"`
	Spellcasting string      `json:"spellcasting"`
	SpellDC      int         `json:"spelldc"`
	Encumbrance  Encumbrance `json:"encumbrance"`
}

// HitPoints is the hit point block. Value is clamped at zero but never
// at Max; temporary hit points pass through raw.
type HitPoints struct {
	Value int `json:"value"`
	Max   int `json:"max"`
	Temp  int `json:"temp"`
}

// ArmorClass is a placeholder; the host computes AC from equipped items.
type ArmorClass struct {
	Calc string `json:"calc"`
}

// Movement holds movement speeds in feet.
type Movement struct {
	Walk   int    `json:"walk"`
	Fly    int    `json:"fly"`
	Swim   int    `json:"swim"`
	Climb  int    `json:"climb"`
	Burrow int    `json:"burrow"`
	Units  string `json:"units"`
}

// Senses holds special senses in feet.
type Senses struct {
	Darkvision int    `json:"darkvision"`
	Units      string `json:"units"`
}

// Encumbrance holds carrying capacity.
type Encumbrance struct {
	Value float64 `json:"value"`
	Max   int     `json:"max"`
}

// Details holds descriptive character information.
type Details struct {
	Race       string         `json:"race"`
	Background string         `json:"background"`
	Alignment  string         `json:"alignment"`
	Classes    map[string]int `json:"classes"`
	Level      int            `json:"level"`
	Biography  Biography      `json:"biography"`
	Trait      string         `json:"trait"`
	Ideal      string         `json:"ideal"`
	Bond       string         `json:"bond"`
	Flaw       string         `json:"flaw"`
	Appearance string         `json:"appearance"`
}

// Biography is the free-text biography block.
type Biography struct {
	Value string `json:"value"`
}

// Traits holds proficiency lists and resistance placeholders.
type Traits struct {
	Size                string    `json:"size"`
	Languages           StringSet `json:"languages"`
	DamageResistances   StringSet `json:"dr"`
	DamageImmunities    StringSet `json:"di"`
	ConditionImmunities StringSet `json:"ci"`
	WeaponProf          StringSet `json:"weaponProf"`
	ArmorProf           StringSet `json:"armorProf"`
	ToolProf            StringSet `json:"toolProf"`
}

// StringSet is a list-valued trait entry.
type StringSet struct {
	Value  []string `json:"value"`
	Custom string   `json:"custom,omitempty"`
}

// Currency holds coin totals. All values are non-negative.
type Currency struct {
	PP int `json:"pp"`
	GP int `json:"gp"`
	EP int `json:"ep"`
	SP int `json:"sp"`
	CP int `json:"cp"`
}

// Skill is one skill entry. Value is the proficiency rank: 0 none, 1
// proficient, 2 expertise.
type Skill struct {
	Value   int    `json:"value"`
	Ability string `json:"ability"`
}

// SpellSlots is the spell-slot block: nine spell levels plus pact slots.
type SpellSlots struct {
	Spell1 SlotInfo  `json:"spell1"`
	Spell2 SlotInfo  `json:"spell2"`
	Spell3 SlotInfo  `json:"spell3"`
	Spell4 SlotInfo  `json:"spell4"`
	Spell5 SlotInfo  `json:"spell5"`
	Spell6 SlotInfo  `json:"spell6"`
	Spell7 SlotInfo  `json:"spell7"`
	Spell8 SlotInfo  `json:"spell8"`
	Spell9 SlotInfo  `json:"spell9"`
	Pact   PactSlots `json:"pact"`
}

// SlotInfo is one spell level's slot count.
type SlotInfo struct {
	Value int `json:"value"`
	Max   int `json:"max"`
}

// PactSlots is the pact magic block.
type PactSlots struct {
	Value int `json:"value"`
	Max   int `json:"max"`
	Level int `json:"level"`
}

// Resources holds up to three tracked resources.
type Resources struct {
	Primary   Resource `json:"primary"`
	Secondary Resource `json:"secondary"`
	Tertiary  Resource `json:"tertiary"`
}

// Resource is one tracked resource.
type Resource struct {
	Value int    `json:"value"`
	Max   int    `json:"max"`
	SR    bool   `json:"sr"`
	LR    bool   `json:"lr"`
	Label string `json:"label"`
}

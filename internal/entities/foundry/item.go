package foundry

// Item types produced by the importer.
const (
	ItemTypeWeapon     = "weapon"
	ItemTypeEquipment  = "equipment"
	ItemTypeLoot       = "loot"
	ItemTypeTool       = "tool"
	ItemTypeConsumable = "consumable"
	ItemTypeSpell      = "spell"
	ItemTypeFeat       = "feat"
)

// Item is a heterogeneous embedded document: equipment, spell, or
// feature. Which sub-structures are populated depends on Type.
type Item struct {
	Name   string     `json:"name"`
	Type   string     `json:"type"`
	Img    string     `json:"img,omitempty"`
	System ItemSystem `json:"system"`
	Flags  Flags      `json:"flags"`
}

// ItemSystem is the item's system data block. Activation, duration,
// target, range, uses, save, and damage share one shape across spells
// and features so downstream consumers never branch on item type to
// read them.
type ItemSystem struct {
	Description Description `json:"description"`

	// Physical item fields
	Quantity   int     `json:"quantity,omitempty"`
	Weight     float64 `json:"weight,omitempty"`
	Price      *Price  `json:"price,omitempty"`
	Rarity     string  `json:"rarity,omitempty"`
	Equipped   bool    `json:"equipped,omitempty"`
	Attunement int     `json:"attunement,omitempty"`
	Armor      *Armor  `json:"armor,omitempty"`

	// Spell fields
	Level       int          `json:"level,omitempty"`
	School      string       `json:"school,omitempty"`
	Components  *Components  `json:"components,omitempty"`
	Materials   *Materials   `json:"materials,omitempty"`
	Preparation *Preparation `json:"preparation,omitempty"`
	Scaling     *Scaling     `json:"scaling,omitempty"`

	// Feature fields
	Type *FeatureType `json:"type,omitempty"`

	// Shared action sub-structures
	Activation ActivationInfo `json:"activation"`
	Duration   DurationInfo   `json:"duration"`
	Target     TargetInfo     `json:"target"`
	Range      RangeInfo      `json:"range"`
	Uses       Uses           `json:"uses"`
	Save       SaveInfo       `json:"save"`
	Damage     DamageInfo     `json:"damage"`

	// Formula is a bare healing or utility roll with no damage type.
	Formula string `json:"formula,omitempty"`
}

// Description is the item's rich-text description.
type Description struct {
	Value string `json:"value"`
}

// Price is a coin cost.
type Price struct {
	Value        float64 `json:"value"`
	Denomination string  `json:"denomination"`
}

// Armor is the armor-class block on wearable equipment.
type Armor struct {
	Value int `json:"value"`
}

// Components are the spell component flags.
type Components struct {
	Vocal         bool `json:"vocal"`
	Somatic       bool `json:"somatic"`
	Material      bool `json:"material"`
	Ritual        bool `json:"ritual"`
	Concentration bool `json:"concentration"`
}

// Materials describes material components and their extracted cost.
type Materials struct {
	Value string `json:"value"`
	Cost  int    `json:"cost"`
}

// Preparation carries the spell preparation mode and prepared state.
type Preparation struct {
	Mode     string `json:"mode"`
	Prepared bool   `json:"prepared"`
}

// Scaling mode tokens.
const (
	ScalingModeNone    = "none"
	ScalingModeCantrip = "cantrip"
	ScalingModeLevel   = "level"
)

// Scaling describes how an effect grows when cast at higher levels.
type Scaling struct {
	Mode    string `json:"mode"`
	Formula string `json:"formula,omitempty"`
}

// FeatureType tags a feat item with its origin category.
type FeatureType struct {
	Value   string `json:"value"`
	Subtype string `json:"subtype,omitempty"`
}

// ActivationInfo describes how the item is activated. Type is empty for
// passive items.
type ActivationInfo struct {
	Type      string `json:"type"`
	Cost      int    `json:"cost"`
	Condition string `json:"condition,omitempty"`
}

// DurationInfo is the effect duration.
type DurationInfo struct {
	Value int    `json:"value"`
	Units string `json:"units"`
}

// TargetInfo is the effect target shape.
type TargetInfo struct {
	Value int    `json:"value"`
	Units string `json:"units,omitempty"`
	Type  string `json:"type"`
}

// RangeInfo is the effect range.
type RangeInfo struct {
	Value int    `json:"value"`
	Long  int    `json:"long,omitempty"`
	Units string `json:"units"`
}

// Uses is a limited-use resource block. A zero Uses with empty Per means
// the item has no limited uses; the field is always present so consumers
// never branch on absence.
type Uses struct {
	Value int    `json:"value"`
	Max   int    `json:"max"`
	Per   string `json:"per"`
}

// SaveInfo is the saving throw block. Ability is empty when the item
// forces no save.
type SaveInfo struct {
	Ability string `json:"ability"`
	DC      *int   `json:"dc,omitempty"`
	Scaling string `json:"scaling,omitempty"`
}

// DamageInfo holds formula/damage-type pairs.
type DamageInfo struct {
	Parts []DamagePart `json:"parts"`
}

// DamagePart is one formula/damage-type pair.
type DamagePart struct {
	Formula string `json:"formula"`
	Type    string `json:"type"`
}

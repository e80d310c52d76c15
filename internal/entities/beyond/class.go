package beyond

// Class is one entry of the character's class list.
type Class struct {
	Level              int              `json:"level"`
	IsStartingClass    bool             `json:"isStartingClass"`
	Definition         *ClassDefinition `json:"definition"`
	SubclassDefinition *ClassDefinition `json:"subclassDefinition"`

	// ClassFeatures includes subclass features: the service folds them
	// into the parent class entry, with the feature's ClassID pointing
	// at the subclass definition.
	ClassFeatures []ClassFeature `json:"classFeatures"`
}

// ClassDefinition describes a class or subclass.
type ClassDefinition struct {
	ID                    int    `json:"id"`
	Name                  string `json:"name"`
	HitDice               int    `json:"hitDice"`
	CanCastSpells         bool   `json:"canCastSpells"`
	SpellCastingAbilityID *int   `json:"spellCastingAbilityId"`
	IsHomebrew            bool   `json:"isHomebrew"`
}

// ClassFeature is a class feature entry wrapping its definition.
type ClassFeature struct {
	Definition *FeatureDefinition `json:"definition"`
}

// Feat is a feat entry wrapping its definition.
type Feat struct {
	Definition *FeatureDefinition `json:"definition"`
}

// FeatureDefinition is the shared definition shape for class features,
// racial traits, feats, and optional class features.
type FeatureDefinition struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Snippet       string `json:"snippet"`
	ClassID       int    `json:"classId"`
	RequiredLevel int    `json:"requiredLevel"`
	IsHomebrew    bool   `json:"isHomebrew"`

	Activation   *Activation `json:"activation"`
	Duration     *Duration   `json:"duration"`
	Range        *Range      `json:"range"`
	LimitedUse   *LimitedUse `json:"limitedUse"`
	SaveStatID   *int        `json:"saveStatId"`
	Dice         *Die        `json:"dice"`
	DamageTypeID *int        `json:"damageTypeId"`
}

// LimitedUse describes a limited-use resource on a feature.
type LimitedUse struct {
	MaxUses    int `json:"maxUses"`
	NumberUsed int `json:"numberUsed"`
	ResetType  int `json:"resetType"`
}

// Package beyond defines the source character-service document types.
//
// The schema is externally controlled and partially populated; every
// nested object is optional and numeric enum codes are scoped to the
// collection they appear in. Fields where an explicit zero is meaningful
// and must be distinguished from absence are pointers.
package beyond

// Character is the root source record as returned by the character
// service.
type Character struct {
	ID   int    `json:"id"`
	Name string `json:"name"`

	AlignmentID int `json:"alignmentId"`

	BaseHitPoints      int  `json:"baseHitPoints"`
	BonusHitPoints     int  `json:"bonusHitPoints"`
	OverrideHitPoints  *int `json:"overrideHitPoints"`
	RemovedHitPoints   int  `json:"removedHitPoints"`
	TemporaryHitPoints int  `json:"temporaryHitPoints"`

	Stats         []StatEntry `json:"stats"`
	BonusStats    []StatEntry `json:"bonusStats"`
	OverrideStats []StatEntry `json:"overrideStats"`

	Classes []Class `json:"classes"`

	// OptionalClassFeatures holds variant features the player swapped
	// in for (or added alongside) a class's baseline features. They
	// live on the root record, not inside the class entry.
	OptionalClassFeatures []ClassFeature `json:"optionalClassFeatures"`

	Race       *Race       `json:"race"`
	Background *Background `json:"background"`
	Feats      []Feat      `json:"feats"`

	Inventory   []Item        `json:"inventory"`
	ClassSpells []ClassSpells `json:"classSpells"`
	Spells      SpellSources  `json:"spells"`

	// Modifiers is the flat-by-category proficiency/bonus side channel.
	// Keys are grant origins ("race", "class", "background", "item",
	// "feat"); the engine never interprets the key, only the entries.
	Modifiers map[string][]Modifier `json:"modifiers"`

	Currencies *Currencies        `json:"currencies"`
	Notes      *Notes             `json:"notes"`
	Traits     *PersonalityTraits `json:"traits"`
}

// StatEntry is one ability score slot. ID is an ability code (1-6).
// Value is nil when the slot is unset, which is distinct from zero for
// the override array.
type StatEntry struct {
	ID    int  `json:"id"`
	Value *int `json:"value"`
}

// Race describes the character's race, including its nested trait list.
type Race struct {
	FullName     string        `json:"fullName"`
	BaseName     string        `json:"baseName"`
	Size         string        `json:"size"`
	IsHomebrew   bool          `json:"isHomebrew"`
	WeightSpeeds *WeightSpeeds `json:"weightSpeeds"`
	RacialTraits []RacialTrait `json:"racialTraits"`
}

// WeightSpeeds carries the race's movement block.
type WeightSpeeds struct {
	Normal *SpeedSet `json:"normal"`
}

// SpeedSet is a set of movement speeds in feet.
type SpeedSet struct {
	Walk   int `json:"walk"`
	Fly    int `json:"fly"`
	Swim   int `json:"swim"`
	Climb  int `json:"climb"`
	Burrow int `json:"burrow"`
}

// RacialTrait is a racial trait entry wrapping its definition.
type RacialTrait struct {
	Definition *FeatureDefinition `json:"definition"`
}

// Background describes the character's background, which may be a
// published definition or a free-form custom one.
type Background struct {
	HasCustomBackground bool                  `json:"hasCustomBackground"`
	Definition          *BackgroundDefinition `json:"definition"`
	CustomBackground    *CustomBackground     `json:"customBackground"`
}

// BackgroundDefinition is the published background definition.
type BackgroundDefinition struct {
	ID                   int    `json:"id"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	FeatureName          string `json:"featureName"`
	FeatureDescription   string `json:"featureDescription"`
	LanguagesDescription string `json:"languagesDescription"`
}

// CustomBackground is a user-authored background.
type CustomBackground struct {
	Name                string `json:"name"`
	Description         string `json:"description"`
	FeaturesBackground  string `json:"featuresBackground"`
	LanguagesBackground string `json:"languagesBackground"`
}

// Currencies holds coin totals by denomination.
type Currencies struct {
	CP int `json:"cp"`
	SP int `json:"sp"`
	EP int `json:"ep"`
	GP int `json:"gp"`
	PP int `json:"pp"`
}

// Notes holds the character's free-text note fields.
type Notes struct {
	Backstory     string `json:"backstory"`
	Organizations string `json:"organizations"`
	Allies        string `json:"allies"`
	Enemies       string `json:"enemies"`
	OtherNotes    string `json:"otherNotes"`
}

// PersonalityTraits holds the roleplay text fields.
type PersonalityTraits struct {
	PersonalityTraits string `json:"personalityTraits"`
	Ideals            string `json:"ideals"`
	Bonds             string `json:"bonds"`
	Flaws             string `json:"flaws"`
	Appearance        string `json:"appearance"`
}

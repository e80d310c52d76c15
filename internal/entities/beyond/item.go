package beyond

// Item is one inventory entry. Definition may be absent.
type Item struct {
	ID         int             `json:"id"`
	Equipped   bool            `json:"equipped"`
	IsAttuned  bool            `json:"isAttuned"`
	Quantity   int             `json:"quantity"`
	Definition *ItemDefinition `json:"definition"`
}

// ItemDefinition carries the canonical mechanics of an inventory item.
type ItemDefinition struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	FilterType       string   `json:"filterType"`
	Weight           float64  `json:"weight"`
	WeightMultiplier *float64 `json:"weightMultiplier"`
	Cost             *float64 `json:"cost"`
	Rarity           string   `json:"rarity"`
	Description      string   `json:"description"`
	CanAttune        bool     `json:"canAttune"`
	IsHomebrew       bool     `json:"isHomebrew"`

	// Weapon fields
	Damage     *Die   `json:"damage"`
	DamageType string `json:"damageType"`

	// Armor fields
	ArmorClass *int `json:"armorClass"`
}

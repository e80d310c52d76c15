package beyond

// Modifier types observed in the source modifier side channel. The set
// is open; unrecognized types are ignored by the aggregator.
const (
	ModifierTypeProficiency = "proficiency"
	ModifierTypeExpertise   = "expertise"
	ModifierTypeLanguage    = "language"
	ModifierTypeBonus       = "bonus"
)

// Modifier is one record of the proficiency/bonus side channel.
type Modifier struct {
	Type                string `json:"type"`
	SubType             string `json:"subType"`
	EntityID            *int   `json:"entityId"`
	EntityTypeID        *int   `json:"entityTypeId"`
	FriendlyTypeName    string `json:"friendlyTypeName"`
	FriendlySubtypeName string `json:"friendlySubtypeName"`
	Value               *int   `json:"value"`
}

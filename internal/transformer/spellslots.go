package transformer

// Spell-slot progression is data, not control flow: adding a class is a
// table change. The curves below are the published progression tables;
// they are not re-derived from the partial formulas visible in source
// material, where ceiling arithmetic invites silent off-by-one errors.

type casterKind int

const (
	casterNone casterKind = iota
	casterFull
	casterHalf
	casterThird
	casterPact
)

// casterKinds maps normalized class (or gish subclass) names to their
// progression.
var casterKinds = map[string]casterKind{
	"bard":     casterFull,
	"cleric":   casterFull,
	"druid":    casterFull,
	"sorcerer": casterFull,
	"wizard":   casterFull,

	"artificer": casterHalf,
	"paladin":   casterHalf,
	"ranger":    casterHalf,

	"eldritch knight":  casterThird,
	"arcane trickster": casterThird,

	"warlock": casterPact,
}

// fullCasterSlots[level-1] is the slot row for a full caster.
var fullCasterSlots = [20][9]int{
	{2, 0, 0, 0, 0, 0, 0, 0, 0},
	{3, 0, 0, 0, 0, 0, 0, 0, 0},
	{4, 2, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 2, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 1, 0, 0, 0, 0, 0},
	{4, 3, 3, 2, 0, 0, 0, 0, 0},
	{4, 3, 3, 3, 1, 0, 0, 0, 0},
	{4, 3, 3, 3, 2, 0, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 2, 1, 1},
}

// halfCasterSlots[level-1] is the slot row for a half caster.
var halfCasterSlots = [20][9]int{
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{2, 0, 0, 0, 0, 0, 0, 0, 0},
	{3, 0, 0, 0, 0, 0, 0, 0, 0},
	{3, 0, 0, 0, 0, 0, 0, 0, 0},
	{4, 2, 0, 0, 0, 0, 0, 0, 0},
	{4, 2, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 2, 0, 0, 0, 0, 0, 0},
	{4, 3, 2, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 1, 0, 0, 0, 0, 0},
	{4, 3, 3, 1, 0, 0, 0, 0, 0},
	{4, 3, 3, 2, 0, 0, 0, 0, 0},
	{4, 3, 3, 2, 0, 0, 0, 0, 0},
	{4, 3, 3, 3, 1, 0, 0, 0, 0},
	{4, 3, 3, 3, 1, 0, 0, 0, 0},
	{4, 3, 3, 3, 2, 0, 0, 0, 0},
	{4, 3, 3, 3, 2, 0, 0, 0, 0},
}

// thirdCasterSlots[level-1] is the slot row for an Eldritch-Knight
// style third caster; the progression tops out at 4th-level slots.
var thirdCasterSlots = [20][9]int{
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{2, 0, 0, 0, 0, 0, 0, 0, 0},
	{3, 0, 0, 0, 0, 0, 0, 0, 0},
	{3, 0, 0, 0, 0, 0, 0, 0, 0},
	{3, 0, 0, 0, 0, 0, 0, 0, 0},
	{4, 2, 0, 0, 0, 0, 0, 0, 0},
	{4, 2, 0, 0, 0, 0, 0, 0, 0},
	{4, 2, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 2, 0, 0, 0, 0, 0, 0},
	{4, 3, 2, 0, 0, 0, 0, 0, 0},
	{4, 3, 2, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 1, 0, 0, 0, 0, 0},
	{4, 3, 3, 1, 0, 0, 0, 0, 0},
}

// pactProgression is the warlock curve: slot count and slot level per
// class level. Short, and peaking at 5th-level slots.
var pactProgression = [20]struct {
	Count int
	Level int
}{
	{1, 1}, {2, 1}, {2, 2}, {2, 2}, {2, 3}, {2, 3}, {2, 4}, {2, 4},
	{2, 5}, {2, 5}, {3, 5}, {3, 5}, {3, 5}, {3, 5}, {3, 5}, {3, 5},
	{4, 5}, {4, 5}, {4, 5}, {4, 5},
}

// SlotsForClass returns the spell-slot counts a class contributes at
// the given level, keyed by spell level 1-9. Omitted keys imply zero.
// Non-spellcasting classes and pact casters return an empty map; pact
// slots are reported separately by PactSlotsForClass.
func SlotsForClass(className string, level int) map[int]int {
	slots := make(map[int]int)
	if level < 1 {
		return slots
	}
	if level > 20 {
		level = 20
	}

	var row [9]int
	switch casterKinds[NormalizeClassName(className)] {
	case casterFull:
		row = fullCasterSlots[level-1]
	case casterHalf:
		row = halfCasterSlots[level-1]
	case casterThird:
		row = thirdCasterSlots[level-1]
	default:
		return slots
	}

	for i, count := range row {
		if count > 0 {
			slots[i+1] = count
		}
	}
	return slots
}

// PactSlotsForClass returns the pact slot count and slot level a class
// contributes, or zeros for non-pact classes.
func PactSlotsForClass(className string, level int) (count, slotLevel int) {
	if casterKinds[NormalizeClassName(className)] != casterPact || level < 1 {
		return 0, 0
	}
	if level > 20 {
		level = 20
	}
	entry := pactProgression[level-1]
	return entry.Count, entry.Level
}

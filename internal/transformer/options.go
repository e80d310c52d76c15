package transformer

import (
	"fmt"

	"github.com/beyondvtt/vtt-importer/internal/entities/foundry"
)

// PreparationMode labels how imported spells are prepared.
type PreparationMode string

// Recognized preparation modes.
const (
	PreparationModePrepared PreparationMode = "prepared"
	PreparationModePact     PreparationMode = "pact"
	PreparationModeAlways   PreparationMode = "always"
	PreparationModeAtWill   PreparationMode = "atwill"
	PreparationModeInnate   PreparationMode = "innate"
)

// ParsePreparationMode validates a preparation mode string.
func ParsePreparationMode(s string) (PreparationMode, error) {
	switch PreparationMode(s) {
	case PreparationModePrepared, PreparationModePact, PreparationModeAlways,
		PreparationModeAtWill, PreparationModeInnate:
		return PreparationMode(s), nil
	default:
		return "", fmt.Errorf("unknown preparation mode %q", s)
	}
}

// Options controls a transformation. The zero value is not useful; use
// DefaultOptions as a starting point.
type Options struct {
	// PreparationMode is stamped onto class spells. Spells granted by
	// race, items, or feats are always imported as innate.
	PreparationMode PreparationMode

	// ImportSpells and ImportEquipment gate their item categories.
	ImportSpells    bool
	ImportEquipment bool

	// UpdateExisting allows the caller to overwrite a previously
	// imported document. The engine itself only passes it through; the
	// merge is the caller's concern.
	UpdateExisting bool

	// SpecialActivation is the activation token substituted for the
	// source's "Special" activation code. The default, "minute", is an
	// approximation for non-standard casting times, not a verified
	// semantic equivalence.
	SpecialActivation string
}

// DefaultOptions returns the standard import options.
func DefaultOptions() Options {
	return Options{
		PreparationMode:   PreparationModePrepared,
		ImportSpells:      true,
		ImportEquipment:   true,
		SpecialActivation: ActivationMinute,
	}
}

// activationFor resolves an activation code, applying the special-code
// policy from the options.
func (o Options) activationFor(code int) string {
	if code == ActivationSpecialCode && o.SpecialActivation != "" {
		return o.SpecialActivation
	}
	return ActivationToken(code)
}

// Warning describes a non-fatal problem encountered during a
// transformation. Nothing in the engine is fatal; the worst case is a
// minimally populated but structurally valid document plus warnings.
type Warning struct {
	Section string `json:"section"`
	Entry   string `json:"entry,omitempty"`
	Message string `json:"message"`
}

// Result is the outcome of assembling one character.
type Result struct {
	Actor    *foundry.Actor `json:"actor"`
	Warnings []Warning      `json:"warnings,omitempty"`
}

package weave

import (
	apperrors "github.com/matzehuels/circuitweave/pkg/errors"
)

// Visual styles. Simple favors sparse, clean line work; dense fills blank
// space with tone-mapped texture.
type Style string

// Supported styles.
const (
	StyleSimple Style = "simple"
	StyleDense  Style = "dense"
)

// Mode selects the two-tone color pairing. It is cosmetic only: toggling it
// never rebuilds any field.
type Mode string

// Supported modes.
const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ParseStyle validates a style name.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleSimple, StyleDense:
		return Style(s), nil
	}
	return "", apperrors.New(apperrors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: simple, dense)", s)
}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLight, ModeDark:
		return Mode(s), nil
	}
	return "", apperrors.New(apperrors.ErrCodeInvalidMode, "invalid mode: %q (must be one of: light, dark)", s)
}

// Other returns the opposite style.
func (s Style) Other() Style {
	if s == StyleSimple {
		return StyleDense
	}
	return StyleSimple
}

// Other returns the opposite mode.
func (m Mode) Other() Mode {
	if m == ModeLight {
		return ModeDark
	}
	return ModeLight
}

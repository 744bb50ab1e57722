package regions

import (
	"errors"
	"fmt"
)

// FlankMode selects how the flank sectors are shaped.
type FlankMode int

const (
	FlankFull          FlankMode = iota // both 90° flanks
	FlankRearOnly                       // only the rear 45° of each flank
	FlankFullSeparated                  // both 90° flanks, split into front and rear halves
)

// ErrUnknownFlankMode is returned when parsing an unrecognised flank mode.
var ErrUnknownFlankMode = errors.New("unknown flank mode")

type flankInfo struct {
	name        string
	description string
	sectors     []Positional
}

// flankTable maps each mode to its fixed sector set. Modes missing from the
// table fall back to the rear-only slivers.
var flankTable = map[FlankMode]flankInfo{
	FlankFull: {
		name:        "full",
		description: "Full (90 degrees)",
		sectors:     []Positional{FlankLeft90, FlankRight90},
	},
	FlankRearOnly: {
		name:        "rear-only",
		description: "Rear Only (45 degrees)",
		sectors:     []Positional{FlankLeftRear, FlankRightRear},
	},
	FlankFullSeparated: {
		name:        "full-separated",
		description: "Separated (90 degrees, separated)",
		sectors:     []Positional{FlankLeftFront, FlankLeftRear, FlankRightFront, FlankRightRear},
	},
}

// FlankModes lists every mode in declaration order.
var FlankModes = []FlankMode{FlankFull, FlankRearOnly, FlankFullSeparated}

func (m FlankMode) String() string {
	if info, ok := flankTable[m]; ok {
		return info.name
	}
	return fmt.Sprintf("FlankMode(%d)", int(m))
}

// Description is the human label shown in settings.
func (m FlankMode) Description() string {
	if info, ok := flankTable[m]; ok {
		return info.description
	}
	return "error - unknown setting"
}

// ParseFlankMode is the inverse of String.
func ParseFlankMode(s string) (FlankMode, error) {
	for _, m := range FlankModes {
		if flankTable[m].name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFlankMode, s)
}

func (m FlankMode) MarshalText() ([]byte, error) {
	if _, ok := flankTable[m]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFlankMode, int(m))
	}
	return []byte(m.String()), nil
}

func (m *FlankMode) UnmarshalText(text []byte) error {
	v, err := ParseFlankMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

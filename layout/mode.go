package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is wrapped by every argument error from this package.
var ErrInvalidArgument = errors.New("invalid argument")

type Mode uint8

const (
	ModeLinear Mode = iota
	ModeChannel
	ModeSingle
)

// AllModes is the alias that expands to every mode.
const AllModes = "all"

// Modes lists every mode in the default run order.
var Modes = [...]Mode{ModeLinear, ModeChannel, ModeSingle}

var strategies = [...]Func{
	ModeLinear:  Linear,
	ModeChannel: Channel,
	ModeSingle:  Single,
}

func (m Mode) String() string {
	switch m {
	case ModeLinear:
		return "linear"
	case ModeChannel:
		return "channel"
	case ModeSingle:
		return "single"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Valid reports whether m is one of the enumerated modes.
func (m Mode) Valid() bool { return int(m) < len(strategies) }

// Layout returns the strategy for m, or nil for an invalid mode.
func (m Mode) Layout() Func {
	if !m.Valid() {
		return nil
	}
	return strategies[m]
}

// Multichannel reports whether the mode keeps the caller's channel count
// in its output. Single always produces one channel.
func (m Mode) Multichannel() bool { return m != ModeSingle }

func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: unknown mode %d", ErrInvalidArgument, uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// UnknownModeError names a mode that is not in the enumeration.
type UnknownModeError struct {
	Name string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("%v: unknown mode %q", ErrInvalidArgument, e.Name)
}

func (e *UnknownModeError) Unwrap() error { return ErrInvalidArgument }

// ParseMode maps a mode name to its Mode. Names are matched case-insensitively.
func ParseMode(name string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return 0, &UnknownModeError{Name: name}
}

// ParseModes is ParseMode extended with the "all" alias.
func ParseModes(name string) ([]Mode, error) {
	if strings.EqualFold(name, AllModes) {
		return append([]Mode(nil), Modes[:]...), nil
	}
	m, err := ParseMode(name)
	if err != nil {
		return nil, err
	}
	return []Mode{m}, nil
}

// Names returns the name of every mode in run order.
func Names() []string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = m.String()
	}
	return names
}

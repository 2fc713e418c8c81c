package domain

import "fmt"

// TransportMode names how a travel segment was covered. The set is closed:
// display styling and route-fetch behavior both key off it.
type TransportMode string

const (
	ModeTrain  TransportMode = "train"
	ModeCar    TransportMode = "car"
	ModeFoot   TransportMode = "foot"
	ModeFerry  TransportMode = "ferry"
	ModeDirect TransportMode = "direct"
)

// ParseMode validates a frontmatter mode value.
func ParseMode(s string) (TransportMode, error) {
	switch TransportMode(s) {
	case ModeTrain, ModeCar, ModeFoot, ModeFerry, ModeDirect:
		return TransportMode(s), nil
	}
	return "", fmt.Errorf("unknown transport mode %q", s)
}

// Routable reports whether the mode can be sent to the routing service.
// Ferry and direct segments always use synthetic curve geometry.
func (m TransportMode) Routable() bool {
	switch m {
	case ModeTrain, ModeCar, ModeFoot:
		return true
	}
	return false
}

func (m TransportMode) String() string { return string(m) }

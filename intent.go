package pong

import "fmt"

// Intent is a toolkit-independent command derived from raw input.
type Intent uint8

const (
	IntentLeftUp Intent = iota
	IntentLeftDown
	IntentLeftStop
	IntentRightUp
	IntentRightDown
	IntentRightStop
	IntentToggleTrail
	IntentSpawnBurst
	IntentResetGame
	IntentQuit
	intentCount
)

var intentNames = [intentCount]string{
	IntentLeftUp:      "left-up",
	IntentLeftDown:    "left-down",
	IntentLeftStop:    "left-stop",
	IntentRightUp:     "right-up",
	IntentRightDown:   "right-down",
	IntentRightStop:   "right-stop",
	IntentToggleTrail: "toggle-trail",
	IntentSpawnBurst:  "spawn-burst",
	IntentResetGame:   "reset-game",
	IntentQuit:        "quit",
}

func (i Intent) String() string {
	if i < intentCount {
		return intentNames[i]
	}
	return fmt.Sprintf("Intent(%d)", uint8(i))
}

// ParseIntent returns the intent named s, as printed by Intent.String.
func ParseIntent(s string) (Intent, error) {
	for i, name := range intentNames {
		if name == s {
			return Intent(i), nil
		}
	}
	return 0, fmt.Errorf("unknown intent %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (i Intent) MarshalText() ([]byte, error) {
	if i >= intentCount {
		return nil, fmt.Errorf("unknown intent %d", uint8(i))
	}
	return []byte(intentNames[i]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Intent) UnmarshalText(text []byte) error {
	v, err := ParseIntent(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

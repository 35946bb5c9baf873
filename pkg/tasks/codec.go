package tasks

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrCorrupt marks a stored value that is not a JSON array of strings.
var ErrCorrupt = errors.New("tasks: corrupt stored list")

// Encode serializes the list as a JSON array; nil encodes as [].
func Encode(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses a stored value. Anything but a JSON array of strings,
// including null, is reported as ErrCorrupt.
func Decode(raw string) ([]string, error) {
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if list == nil {
		return nil, fmt.Errorf("%w: not an array", ErrCorrupt)
	}
	return list, nil
}

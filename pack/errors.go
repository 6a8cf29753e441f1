package pack

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by NewManager when given an unknown algorithm,
// heuristic or sort key, so callers can test with errors.Is.
var ErrInvalidConfig = errors.New("pack: invalid configuration")

// UnpackableItemError reports that an item could not be placed even into a
// freshly opened, otherwise-empty bin. That only happens when the item
// itself (in either orientation, if rotation is enabled) exceeds the bin's
// dimensions.
type UnpackableItemError struct {
	Item *Item
}

func (e *UnpackableItemError) Error() string {
	return fmt.Sprintf("pack: item %q (%dx%d) does not fit in an empty bin", e.Item.ID, e.Item.Width, e.Item.Height)
}

package keeper

import (
	"github.com/google/uuid"
)

// dateLayout is the long-form creation date stamped on every record,
// e.g. "January 5, 2024".
const dateLayout = "January 2, 2006"

// newUUID returns a globally unique opaque record id. Time-ordered V7 ids
// keep persisted slots roughly chronological; on the (practically
// impossible) V7 failure a random V4 id is used instead.
func newUUID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// today formats the current wall-clock date for new records.
func (k *Keeper) today() string {
	return k.now().Format(dateLayout)
}

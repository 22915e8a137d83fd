package models

import (
	"fmt"
	"time"

	"github.com/hecreatescode/versekeeper/internal/common"
)

// NewID mints a namespaced-unique identifier: a type prefix, a nanosecond
// timestamp and a short random suffix for the rare same-nanosecond case.
//
//	NewID("poem") -> "poem_1735689600123456789_9f2d"
func NewID(prefix string) string {
	suffix, err := common.MakeRandHexString(2)
	if err != nil {
		// randomness failure leaves the timestamp alone; still unique in
		// practice within a single process
		suffix = "0000"
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixNano(), suffix)
}

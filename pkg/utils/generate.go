package utils

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUIDString() string {
	return uuid.New().String()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== BOOKING ID ====================

var bookingSeq atomic.Uint64

// GenerateBookingID creates a unique booking ID. The wall clock alone can
// collide when two bookings land in the same millisecond, so a process-wide
// counter is appended.
//
// Format: CINE-<unix millis>-<seq>
func GenerateBookingID() string {
	millis := time.Now().UnixMilli()
	seq := bookingSeq.Add(1)
	return fmt.Sprintf("CINE-%d-%d", millis, seq)
}

package clock

import (
	"time"

	"github.com/msto63/mdwtime/internal/slots"
)

// tickMsg is sent once per refresh interval
type tickMsg time.Time

// activeSlotsMsg is sent when the active slots are loaded from the store
type activeSlotsMsg struct {
	slots []*slots.Slot
	err   error
}

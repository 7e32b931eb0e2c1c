package seed

import (
	"strconv"
	"time"
)

// FormatMillis formats d as a decimal number of milliseconds, the format the
// release editor expects for track lengths.
func FormatMillis(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10)
}

package model

import (
	"fmt"
	"math"
	"time"
)

// FormatLength formats d for display as "m:ss", or "h:mm:ss" from one hour
// up. Seconds are rounded half to even. A zero length is unknown and formats
// as "?:??".
//
// Example:
//
//	FormatLength(259 * time.Second)       // "4:19"
//	FormatLength(3725500 * time.Millisecond) // "1:02:06"
func FormatLength(d time.Duration) string {
	ms := d.Milliseconds()
	if ms == 0 {
		return "?:??"
	}

	secs := int64(math.RoundToEven(float64(ms) / 1000))
	if secs >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

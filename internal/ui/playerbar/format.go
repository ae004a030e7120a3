package playerbar

import (
	"fmt"
	"time"
)

// FormatTime renders d as m:ss. Negative durations render as 0:00.
// Minutes are not wrapped into hours.
func FormatTime(d time.Duration) string {
	if d < 0 {
		return "0:00"
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

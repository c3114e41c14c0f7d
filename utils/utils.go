package utils

import (
	"fmt"
	"time"
)

// FormatTime renders a duration in compact clock-style units, growing
// from seconds up to days as the value requires.
func FormatTime(d time.Duration) string {
	sec := int64(d.Seconds())
	switch {
	case sec < 60:
		return fmt.Sprintf("%ds", sec)
	case sec < 3600:
		return fmt.Sprintf("%dm:%ds", sec/60, sec%60)
	case sec < 86400:
		return fmt.Sprintf("%dh:%dm:%ds", sec/3600, sec%3600/60, sec%60)
	}
	return fmt.Sprintf("%dd:%dh:%dm:%ds",
		sec/86400, sec%86400/3600, sec%3600/60, sec%60)
}

package media

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseISODuration parses the ISO-8601 durations YouTube reports, such as
// "PT4M13S", "PT1H2M", or "P1DT30S". Year, month and week designators are
// rejected because they have no fixed length.
func ParseISODuration(value string) (time.Duration, error) {
	s := strings.TrimSpace(value)
	if len(s) < 2 || (s[0] != 'P' && s[0] != 'p') {
		return 0, fmt.Errorf("invalid duration %q", value)
	}
	s = strings.ToUpper(s[1:])

	var total time.Duration
	inTime := false
	seen := false
	num := ""
	for _, r := range s {
		switch {
		case r == 'T':
			if inTime || num != "" {
				return 0, fmt.Errorf("invalid duration %q", value)
			}
			inTime = true
		case (r >= '0' && r <= '9') || r == '.' || r == ',':
			if r == ',' {
				r = '.'
			}
			num += string(r)
		default:
			if num == "" {
				return 0, fmt.Errorf("invalid duration %q", value)
			}
			n, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return 0, fmt.Errorf("invalid duration %q: %w", value, err)
			}
			unit, err := durationUnit(r, inTime)
			if err != nil {
				return 0, fmt.Errorf("invalid duration %q: %w", value, err)
			}
			total += time.Duration(n * float64(unit))
			num = ""
			seen = true
		}
	}
	if num != "" || !seen {
		return 0, fmt.Errorf("invalid duration %q", value)
	}
	return total, nil
}

func durationUnit(designator rune, inTime bool) (time.Duration, error) {
	if inTime {
		switch designator {
		case 'H':
			return time.Hour, nil
		case 'M':
			return time.Minute, nil
		case 'S':
			return time.Second, nil
		}
		return 0, fmt.Errorf("unknown time designator %q", designator)
	}
	if designator == 'D' {
		return 24 * time.Hour, nil
	}
	return 0, fmt.Errorf("unsupported date designator %q", designator)
}

// FormatDuration renders d as m:ss, or h:mm:ss once it reaches an hour.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	h := secs / 3600
	m := (secs % 3600) / 60
	sec := secs % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}

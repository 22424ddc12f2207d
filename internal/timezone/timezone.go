package timezone

import (
	"os"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// PlatformLocation resolve o fuso oficial da plataforma (PLATFORM_TZ)
func PlatformLocation() *time.Location {
	return Location(os.Getenv("PLATFORM_TZ"))
}

func Now() time.Time {
	return time.Now().In(PlatformLocation())
}

// ParseDate interpreta "2006-01-02" no fuso da plataforma
func ParseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, PlatformLocation())
}

// DayBounds devolve [00:00 do dia, 00:00 do dia seguinte) no fuso do
// instante recebido.
func DayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(
		day.Year(), day.Month(), day.Day(),
		0, 0, 0, 0,
		day.Location(),
	)
	return start, start.Add(24 * time.Hour)
}

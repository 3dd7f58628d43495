package timezone

import "time"

// DefaultTimezone is where every branch of the clinic is.
const DefaultTimezone = "Asia/Kolkata"

// ist stands in when the host has no tz database.
var ist = time.FixedZone("IST", 5*60*60+30*60)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to the clinic's own zone.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return ist
}

// Now is the current time at the clinic.
func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

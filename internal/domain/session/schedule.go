package session

import (
	"fmt"
	"math/rand"
	"time"
)

// Schedule synthesis constants.
const (
	scheduleYear       = 2024
	scheduleDaySpread  = 180
	scheduleHourMin    = 8
	scheduleHourMax    = 20
	durationMinutesMin = 90
	durationMinutesMax = 180

	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// startMinutes are the quarter-hour marks a session may start on.
var startMinutes = [...]int{0, 15, 30, 45}

// Schedule is the time envelope of a session. Dates and times are kept as
// formatted strings so the JSON output is stable and human-readable.
type Schedule struct {
	StartDate       string `json:"start_date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
}

// SynthesizeSchedule draws a schedule: a day in the first half of the
// schedule year, a quarter-hour start between 08:00 and 20:45, and a
// duration of 90 to 180 minutes. The latest possible end is 23:45, so the
// end time never crosses midnight.
func SynthesizeSchedule(rng *rand.Rand) Schedule {
	day := time.Date(scheduleYear, time.January, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, rng.Intn(scheduleDaySpread+1))

	hour := scheduleHourMin + rng.Intn(scheduleHourMax-scheduleHourMin+1)
	minute := startMinutes[rng.Intn(len(startMinutes))]
	duration := durationMinutesMin + rng.Intn(durationMinutesMax-durationMinutesMin+1)

	start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
	end := start.Add(time.Duration(duration) * time.Minute)

	return Schedule{
		StartDate:       day.Format(dateLayout),
		StartTime:       start.Format(timeLayout),
		EndTime:         end.Format(timeLayout),
		DurationMinutes: duration,
	}
}

// Validate checks internal consistency: parsable fields, duration within
// bounds, and end equal to start plus duration.
func (s Schedule) Validate() error {
	if _, err := time.Parse(dateLayout, s.StartDate); err != nil {
		return fmt.Errorf("%w: start_date %q", ErrInvalidSchedule, s.StartDate)
	}
	start, err := time.Parse(timeLayout, s.StartTime)
	if err != nil {
		return fmt.Errorf("%w: start_time %q", ErrInvalidSchedule, s.StartTime)
	}
	end, err := time.Parse(timeLayout, s.EndTime)
	if err != nil {
		return fmt.Errorf("%w: end_time %q", ErrInvalidSchedule, s.EndTime)
	}
	if s.DurationMinutes < durationMinutesMin || s.DurationMinutes > durationMinutesMax {
		return fmt.Errorf("%w: duration %d minutes", ErrInvalidSchedule, s.DurationMinutes)
	}
	if end.Sub(start) != time.Duration(s.DurationMinutes)*time.Minute {
		return fmt.Errorf("%w: end %q is not start %q plus %d minutes",
			ErrInvalidSchedule, s.EndTime, s.StartTime, s.DurationMinutes)
	}
	return nil
}

package domain

// TimeSlot is a fixed calendar-day time interval from the static catalog.
// The interval is half-open: [StartHour, EndHour). EndHour may be 24 for the
// slot ending at midnight.
type TimeSlot struct {
	ID        string // stable key derived from the time range, e.g. "9am-10am"
	Label     string // display string, e.g. "9:00 AM - 10:00 AM"
	StartHour int
	EndHour   int
}

// HasStarted returns true if the slot has already started at the given
// hour-of-day. A slot whose StartHour equals the current hour counts as
// started and is no longer bookable for today.
func (s TimeSlot) HasStarted(currentHour int) bool {
	return s.StartHour <= currentHour
}

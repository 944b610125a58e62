package datemath

import "time"

// DateLayout is the ISO calendar-date layout used on the wire and in storage.
const DateLayout = "2006-01-02"

// WeekStart is the first day of a week window.
const WeekStart = time.Sunday

package admin

import "time"

// SeedInput controls sample-data generation. A zero Reference means now;
// Days <= 0 means DefaultSeedDays.
type SeedInput struct {
	Reference time.Time
	Days      int
}

type SeedOutput struct {
	TasksCreated     int
	SummariesCreated int
}

// DefaultSeedDays is how far back sample tasks are generated.
const DefaultSeedDays = 60

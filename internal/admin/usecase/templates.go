package usecase

import "productivity-tracker/internal/model"

// taskTemplate is a sample task with an hour range to draw from.
type taskTemplate struct {
	name     string
	minHours float64
	maxHours float64
	focus    model.FocusLevel
}

// templates covers every focus level. The first three are always logged on
// the reference day so its charts show all levels.
var templates = []taskTemplate{
	{"Get a beverage", 0.25, 0.25, model.FocusLow},
	{"Review pull requests", 0.5, 0.5, model.FocusMedium},
	{"Ship the release checklist", 1, 1, model.FocusHigh},

	// Development
	{"Frontend component development", 2, 6, model.FocusHigh},
	{"Backend API implementation", 3, 5, model.FocusHigh},
	{"Database optimization work", 2, 4, model.FocusHigh},
	{"Code review for authentication module", 1, 3, model.FocusHigh},
	{"Bug fixes in payment processing", 2, 4, model.FocusHigh},
	{"Performance optimization analysis", 2, 5, model.FocusHigh},
	{"Code refactoring - authentication", 3, 6, model.FocusHigh},
	{"API endpoint design", 2, 4, model.FocusHigh},
	{"Unit testing implementation", 1, 3, model.FocusMedium},
	{"Integration testing setup", 2, 4, model.FocusMedium},

	// Meetings and collaboration
	{"Team standup meeting", 0.25, 0.5, model.FocusMedium},
	{"Sprint planning session", 1, 2, model.FocusMedium},
	{"Client meeting - project requirements", 0.5, 1.5, model.FocusMedium},
	{"Weekly retrospective", 0.5, 1, model.FocusMedium},
	{"Architecture discussion", 1, 2, model.FocusMedium},
	{"Code review session", 1, 2, model.FocusMedium},
	{"Mentoring junior developer", 0.5, 1.5, model.FocusMedium},
	{"Cross-team collaboration", 1, 2, model.FocusHigh},

	// Documentation and admin
	{"Design system documentation", 1, 3, model.FocusMedium},
	{"Technical specification writing", 2, 4, model.FocusMedium},
	{"Documentation updates", 1, 3, model.FocusLow},
	{"Email and administrative tasks", 0.5, 1.5, model.FocusLow},
	{"Weekly planning session", 1, 2, model.FocusLow},
	{"Project status reporting", 0.5, 1, model.FocusLow},
	{"Time tracking and reporting", 0.25, 0.5, model.FocusLow},

	// Research and learning
	{"Research new React patterns", 1, 3, model.FocusHigh},
	{"Technology evaluation", 2, 4, model.FocusHigh},
	{"Learning new framework", 2, 5, model.FocusLow},
	{"Security research and analysis", 2, 4, model.FocusHigh},
	{"Industry best practices review", 1, 3, model.FocusMedium},

	// QA and testing
	{"Testing and QA session", 1, 3, model.FocusMedium},
	{"Manual testing workflow", 1, 2, model.FocusMedium},
	{"Automated test maintenance", 1, 3, model.FocusMedium},
	{"Bug investigation and analysis", 1, 4, model.FocusLow},
	{"Performance optimization", 1, 3, model.FocusHigh},
}

const referenceDayTasks = 3

package http

import "productivity-tracker/internal/admin"

const msgSeeded = "Sample data generated successfully"

type seedResp struct {
	Message          string `json:"message"`
	TasksCreated     int    `json:"tasks_created"`
	SummariesCreated int    `json:"summaries_created"`
}

func newSeedResp(out admin.SeedOutput) seedResp {
	return seedResp{
		Message:          msgSeeded,
		TasksCreated:     out.TasksCreated,
		SummariesCreated: out.SummariesCreated,
	}
}

type healthResp struct {
	Status string `json:"status"`
}

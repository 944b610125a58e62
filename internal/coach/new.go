package coach

import (
	"context"

	"productivity-tracker/pkg/llmprovider"
	"productivity-tracker/pkg/log"
)

// Writer turns a week of tasks into a summary and recommendations.
type Writer interface {
	Write(ctx context.Context, input Input) (Output, error)
}

// Generator is the subset of the LLM manager the coach needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Coach writes weekly summaries with an LLM.
type Coach struct {
	llm Generator
	l   log.Logger
}

var _ Writer = (*Coach)(nil)

// New creates a new Coach.
func New(llm Generator, l log.Logger) *Coach {
	return &Coach{
		llm: llm,
		l:   l,
	}
}

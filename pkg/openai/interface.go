package openai

import "context"

// IChat generates chat completions.
type IChat interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// IEmbedder turns texts into vectors.
// Implementations are safe for concurrent use.
type IEmbedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

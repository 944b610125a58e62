package openai

import "time"

const (
	// DefaultBaseURL is the OpenAI API endpoint. Any OpenAI-compatible
	// service (DeepSeek, local gateways) can be used by overriding it.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the chat model used when none is configured.
	DefaultModel = "gpt-3.5-turbo"

	// DefaultEmbeddingModel produces 1536-dimensional vectors.
	DefaultEmbeddingModel = "text-embedding-ada-002"

	defaultTimeout = 60 * time.Second
)

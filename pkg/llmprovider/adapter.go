package llmprovider

import (
	"context"
	"fmt"

	"productivity-tracker/pkg/openai"
)

// OpenAIAdapter adapts any OpenAI-compatible chat client to the Provider interface
type OpenAIAdapter struct {
	name   string
	client openai.IChat
}

// NewOpenAIAdapter creates a new adapter reported under name
func NewOpenAIAdapter(name string, client openai.IChat) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := &openai.Request{
		Messages:    convertToOpenAIMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	// Add system instruction as first message if present
	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		systemMsg := openai.Message{
			Role:    "system",
			Content: req.SystemInstruction.Text(),
		}
		chatReq.Messages = append([]openai.Message{systemMsg}, chatReq.Messages...)
	}

	resp, err := a.client.GenerateContent(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}

	return a.convertResponse(resp), nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func convertToOpenAIMessages(msgs []Message) []openai.Message {
	messages := make([]openai.Message, 0, len(msgs))
	for _, msg := range msgs {
		role := msg.Role
		if role == "" {
			role = "user"
		}
		messages = append(messages, openai.Message{
			Role:    role,
			Content: msg.Text(),
		})
	}
	return messages
}

func (a *OpenAIAdapter) convertResponse(resp *openai.Response) *Response {
	parts := []Part{}
	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		parts = append(parts, Part{Text: resp.Choices[0].Message.Content})
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}

	return &Response{
		Content: Message{
			Role:  "assistant",
			Parts: parts,
		},
		ProviderName: a.name,
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
}

package llmprovider

import (
	"context"
	"strings"
)

// Provider is one chat-completion backend behind the Manager.
type Provider interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	// Name is the configured provider key, "openai" or "deepseek".
	Name() string
	Model() string
}

// Request is the provider-neutral prompt. SystemInstruction is optional.
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Message is one chat turn.
type Message struct {
	Role  string // user, assistant or system
	Parts []Part
}

type Part struct {
	Text string
}

// Response carries the reply plus which provider and model produced it.
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Text joins the text parts of the response.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return r.Content.Text()
}

// Text joins the text parts of the message.
func (m Message) Text() string {
	var sb strings.Builder
	for _, p := range m.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// Usage is token accounting reported by the provider.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

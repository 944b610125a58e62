package llmprovider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"productivity-tracker/config"
	"productivity-tracker/pkg/llmprovider"
	"productivity-tracker/pkg/log"
)

// chatServer answers chat completions; when failing is set it returns 503.
func chatServer(t *testing.T, reply string, failing bool, calls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		if failing {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":{"message":"overloaded"}}`))
			return
		}
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Messages[0].Role != "system" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"model":"` + req.Model + `","choices":[{"message":{"role":"assistant","content":"` + reply + `"}}],"usage":{"prompt_tokens":12,"completion_tokens":4,"total_tokens":16}}`))
	}))
}

// TestIntegration_ConfigToManagerFlow runs config -> factory -> manager
// against local OpenAI-compatible servers, the first of which is down.
func TestIntegration_ConfigToManagerFlow(t *testing.T) {
	var downCalls, upCalls int32
	down := chatServer(t, "", true, &downCalls)
	defer down.Close()
	up := chatServer(t, "steady week", false, &upCalls)
	defer up.Close()

	cfg := &config.LLMConfig{
		Enabled: true,
		Providers: []config.ProviderConfig{
			{Name: "deepseek", Enabled: true, Priority: 2, APIKey: "k2", BaseURL: up.URL, Model: "deepseek-chat"},
			{Name: "openai", Enabled: true, Priority: 1, APIKey: "k1", BaseURL: down.URL, Model: "gpt-3.5-turbo"},
		},
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      "1ms",
		MaxTotalTimeout: "5s",
	}

	providers, err := llmprovider.InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	if providers[0].Name() != "openai" || providers[1].Name() != "deepseek" {
		t.Fatalf("Unexpected provider order: %s, %s", providers[0].Name(), providers[1].Name())
	}

	managerConfig, err := llmprovider.ManagerConfig(cfg)
	if err != nil {
		t.Fatalf("ManagerConfig: %v", err)
	}
	if managerConfig.RetryDelay != time.Millisecond || managerConfig.MaxTotalTimeout != 5*time.Second {
		t.Errorf("Unexpected manager config %+v", managerConfig)
	}

	manager := llmprovider.NewManager(providers, managerConfig, log.NewNopLogger())
	resp, err := manager.GenerateContent(context.Background(), &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Parts: []llmprovider.Part{{Text: "You are a productivity coach."}}},
		Messages:          []llmprovider.Message{{Role: "user", Parts: []llmprovider.Part{{Text: "Summarise"}}}},
		Temperature:       0.7,
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}

	if resp.ProviderName != "deepseek" || resp.ModelName != "deepseek-chat" {
		t.Errorf("Unexpected provider %s/%s", resp.ProviderName, resp.ModelName)
	}
	if resp.Text() != "steady week" {
		t.Errorf("Unexpected text %q", resp.Text())
	}
	if resp.Usage.TotalTokens != 16 {
		t.Errorf("Unexpected usage %+v", resp.Usage)
	}
	if atomic.LoadInt32(&downCalls) != 2 || atomic.LoadInt32(&upCalls) != 1 {
		t.Errorf("Unexpected call counts down=%d up=%d", downCalls, upCalls)
	}
}

func TestIntegration_ConfigValidation(t *testing.T) {
	valid := config.ProviderConfig{Name: "openai", Enabled: true, Priority: 1, APIKey: "test-key", Model: "gpt-3.5-turbo"}

	tests := []struct {
		name    string
		cfg     *config.LLMConfig
		wantErr bool
	}{
		{
			name:    "valid config",
			cfg:     &config.LLMConfig{Providers: []config.ProviderConfig{valid}},
			wantErr: false,
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: true,
		},
		{
			name:    "no providers",
			cfg:     &config.LLMConfig{},
			wantErr: true,
		},
		{
			name: "all providers disabled",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "openai", Enabled: false, Priority: 1, APIKey: "k", Model: "m"},
			}},
			wantErr: true,
		},
		{
			name: "missing API key",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 1, Model: "m"},
			}},
			wantErr: true,
		},
		{
			name: "unknown provider is skipped",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "mystery", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
				valid,
			}},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := llmprovider.InitializeProviders(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("InitializeProviders() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIntegration_ManagerConfigDefaults(t *testing.T) {
	mc, err := llmprovider.ManagerConfig(&config.LLMConfig{})
	if err != nil {
		t.Fatalf("ManagerConfig: %v", err)
	}
	if mc.RetryAttempts != 1 {
		t.Errorf("Expected at least one attempt, got %d", mc.RetryAttempts)
	}

	if _, err := llmprovider.ManagerConfig(&config.LLMConfig{RetryDelay: "soon"}); err == nil {
		t.Error("Expected error for invalid duration")
	}
}

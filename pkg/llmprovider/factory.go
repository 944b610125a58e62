package llmprovider

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"

	"productivity-tracker/config"
	"productivity-tracker/pkg/openai"
)

const deepseekBaseURL = "https://api.deepseek.com/v1"

// InitializeProviders builds the enabled providers of cfg ordered by priority.
// A provider that cannot be built is skipped; only an empty result is an error.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	enabled := slices.DeleteFunc(slices.Clone(cfg.Providers), func(p config.ProviderConfig) bool {
		return !p.Enabled
	})
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	slices.SortStableFunc(enabled, func(a, b config.ProviderConfig) int {
		return cmp.Compare(a.Priority, b.Priority)
	})

	var (
		providers []Provider
		skipped   []error
	)
	for _, pc := range enabled {
		provider, err := createProvider(pc)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("priority %d: %w", pc.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}
	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers initialized: %w", errors.Join(skipped...))
	}
	return providers, nil
}

// ManagerConfig converts the string durations of cfg into a manager Config.
func ManagerConfig(cfg *config.LLMConfig) (*Config, error) {
	out := &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
	}
	if out.RetryAttempts <= 0 {
		out.RetryAttempts = 1
	}

	var err error
	if cfg.RetryDelay != "" {
		if out.RetryDelay, err = time.ParseDuration(cfg.RetryDelay); err != nil {
			return nil, fmt.Errorf("invalid retry_delay %q: %w", cfg.RetryDelay, err)
		}
	}
	if cfg.MaxTotalTimeout != "" {
		if out.MaxTotalTimeout, err = time.ParseDuration(cfg.MaxTotalTimeout); err != nil {
			return nil, fmt.Errorf("invalid max_total_timeout %q: %w", cfg.MaxTotalTimeout, err)
		}
	}
	return out, nil
}

// createProvider maps a provider name onto the OpenAI-compatible client.
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	baseURL := cfg.BaseURL
	switch cfg.Name {
	case "openai":
	case "deepseek":
		if baseURL == "" {
			baseURL = deepseekBaseURL
		}
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}

	client, err := openai.New(openai.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
	}
	return NewOpenAIAdapter(cfg.Name, client), nil
}

package factory

import (
	"compliancebot-be/pkg/llm"
	"compliancebot-be/pkg/llm/gateway"
	"fmt"
)

func NewLLMProvider(providerType, baseURL, apiKey, modelName string) (llm.LLMProvider, error) {
	switch providerType {
	case "gateway":
		if baseURL == "" {
			baseURL = "https://ai.gateway.lovable.dev" // Default
		}
		return gateway.NewGatewayProvider(baseURL, apiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}

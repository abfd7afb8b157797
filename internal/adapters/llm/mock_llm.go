package llm

import (
	"context"
	"fmt"

	"github.com/PabloGalante/mindmesh/internal/domain"
)

const mockGreeting = "Hi, I'm MindMesh. This is a safe space, and I'm here to listen. How are you feeling today?"

type MockLLM struct{}

func NewMockLLM() *MockLLM {
	return &MockLLM{}
}

// GenerateReply answers the seed prompt with a fixed greeting and echoes
// anything else back with a gentle follow-up.
func (m *MockLLM) GenerateReply(ctx context.Context, prompt string, convCtx domain.ConversationContext) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if prompt == domain.SeedPrompt {
		return mockGreeting, nil
	}
	return fmt.Sprintf("I hear you. You said %q. Would you like to tell me a little more about how that feels?", prompt), nil
}

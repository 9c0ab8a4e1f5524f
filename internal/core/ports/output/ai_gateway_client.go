package ports

import "context"

// GenerationRequest is the prompt material for a parent newsletter draft.
type GenerationRequest struct {
	Title      string
	Term       string
	Grade      string
	Highlights []string
	Tone       string
	Language   string
}

// AIGatewayClient talks to the external LLM gateway that drafts newsletters
// and parent summaries. Implementations must be safe for concurrent use.
type AIGatewayClient interface {
	IsAvailable() bool
	GenerateNewsletter(ctx context.Context, req GenerationRequest) (string, error)
}

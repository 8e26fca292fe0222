package summarizer

import "context"

// Summarizer generates text from stored page content via the configured
// inference endpoint.
type Summarizer interface {
	// Summarize produces a summary of the page text.
	Summarize(ctx context.Context, text string) (string, error)
	// Answer answers a free-form question against the page text.
	Answer(ctx context.Context, text string, question string) (string, error)
}

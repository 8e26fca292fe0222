package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	temperature = 0.25

	summarizeSystemPrompt = `Summarize the following HTML content. You have to only focus on the text parts of it.
Do not include any HTML tags or attributes in the summary. The summary should be concise and informative.`

	answerSystemPrompt = "You are answering questions based on the following HTML content."
)

// OllamaSummarizer talks to an Ollama server through its OpenAI-compatible
// chat completions API.
type OllamaSummarizer struct {
	client openai.Client
	model  string
}

// NewOllamaSummarizer builds a client for the given Ollama base URL. Each
// request is bounded by timeout and is attempted once.
func NewOllamaSummarizer(baseURL string, model string, timeout time.Duration) *OllamaSummarizer {
	return &OllamaSummarizer{
		client: openai.NewClient(
			option.WithBaseURL(strings.TrimRight(baseURL, "/")+"/v1"),
			option.WithAPIKey("ollama"),
			option.WithRequestTimeout(timeout),
			option.WithMaxRetries(0),
		),
		model: model,
	}
}

// Summarize produces a summary of the page text.
func (s *OllamaSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	return s.chat(ctx, summarizeSystemPrompt, text)
}

// Answer answers a free-form question against the page text.
func (s *OllamaSummarizer) Answer(
	ctx context.Context,
	text string,
	question string,
) (string, error) {
	userPromptBuilder := strings.Builder{}
	userPromptBuilder.WriteString("HTML:\n")
	userPromptBuilder.WriteString(text)
	userPromptBuilder.WriteString("\n\nQuestion:\n")
	userPromptBuilder.WriteString(question)

	return s.chat(ctx, answerSystemPrompt, userPromptBuilder.String())
}

func (s *OllamaSummarizer) chat(
	ctx context.Context,
	systemPrompt string,
	userPrompt string,
) (string, error) {
	if strings.TrimSpace(userPrompt) == "" {
		return "", errors.New("input is empty")
	}

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(s.model),
		Temperature: openai.Float(temperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("response has no choices")
	}

	output := strings.TrimSpace(resp.Choices[0].Message.Content)
	if output == "" {
		return "", errors.New("output text is missing")
	}

	return output, nil
}

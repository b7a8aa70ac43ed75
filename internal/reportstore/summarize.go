package reportstore

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
)

const summarizeSystemPrompt = "You are a concise technical summarizer. Summarize the following desktop-automation session report in 2-4 sentences. Focus on: what commands ran, what mutated the desktop, and any failures. Be specific about window and process names."

// Summarize calls the Anthropic Messages API to produce a short plain-text
// summary of report content, for report.summarize.
func Summarize(ctx context.Context, content, model string) (string, error) {
	client := anthropic.NewClient()

	msg, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: 200,
		System: []anthropic.TextBlockParam{
			{Text: summarizeSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(content)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic messages: %w", err)
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no text block in response")
}

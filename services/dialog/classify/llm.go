// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package classify

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const classifySystemPrompt = `You are a dialog act classifier for a restaurant recommendation system.
Classify the user utterance into exactly one of these labels:
ack, affirm, bye, confirm, deny, hello, inform, negate, null, repeat, reqalts, reqmore, request, restart, thankyou.
Respond with the label only, nothing else.`

// LLMClassifier classifies acts through an OpenAI-compatible chat
// endpoint (including local servers that speak the same API).
//
// # Description
//
// Temperature is pinned to zero so classification stays deterministic.
// The response is normalized and validated against the closed act set;
// anything else degrades to "null" so the dialog never dispatches on a
// hallucinated label.
//
// # Thread Safety
//
// Safe for concurrent use; the underlying client is.
type LLMClassifier struct {
	client *openai.Client
	model  string
}

// NewLLMClassifier builds a classifier from the environment.
//
// Reads OPENAI_API_KEY (required), TABLETALK_OPENAI_MODEL (default
// gpt-4o-mini) and TABLETALK_OPENAI_BASE_URL (optional, for local
// OpenAI-compatible endpoints).
func NewLLMClassifier() (*LLMClassifier, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	model := os.Getenv("TABLETALK_OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
		slog.Warn("TABLETALK_OPENAI_MODEL not set, defaulting to gpt-4o-mini")
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL := os.Getenv("TABLETALK_OPENAI_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
		slog.Info("using custom OpenAI-compatible endpoint", "base_url", baseURL)
	}

	return &LLMClassifier{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

// Classify sends the utterance to the model and validates the label.
func (c *LLMClassifier) Classify(ctx context.Context, utterance string) (Act, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0,
		MaxTokens:   8,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: classifySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: utterance},
		},
	})
	if err != nil {
		return ActNull, fmt.Errorf("classify utterance: %w", err)
	}
	if len(resp.Choices) == 0 {
		return ActNull, fmt.Errorf("classifier returned no choices")
	}

	label := Act(strings.ToLower(strings.TrimSpace(resp.Choices[0].Message.Content)))
	label = Normalize(label)
	if !Known(label) {
		slog.Debug("classifier returned unknown label", "label", label)
		return ActNull, nil
	}
	return label, nil
}

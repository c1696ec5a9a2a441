// Package gemini wraps the generative-text service behind the three request
// shapes the app needs: daily affirmations, friend support messages, and
// simulated chat replies. Every call is a single attempt; failures map to
// fixed localized fallbacks and never fail the operation that triggered them.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"imokay/config"
	"imokay/i18n"
	"imokay/utils"
)

// Generator produces short natural-language strings.
type Generator interface {
	// DailyAffirmation returns an inspiring line for a fresh check-in, or the
	// localized fallback on any failure.
	DailyAffirmation(ctx context.Context, lang string) string
	// FriendSupport returns a caring message to send a friend who has not
	// checked in for hours, or the localized fallback on any failure.
	FriendSupport(ctx context.Context, friendName string, hours int, lang string) string
	// ChatReply returns a persona reply to an inbound chat message. Errors
	// are returned so the caller can skip appending a reply.
	ChatReply(ctx context.Context, friendName, mood, text, lang string) (string, error)
}

// Client calls the Gemini API. A Client with no underlying connection (no API
// key configured) degrades to fallbacks.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient builds the Gemini client. A missing API key is not an error: the
// returned client serves fallbacks only.
func NewClient(ctx context.Context, cfg config.AppConfig) (*Client, error) {
	c := &Client{model: cfg.GeminiModel}
	if cfg.GeminiAPIKey == "" {
		if utils.Sugar != nil {
			utils.Sugar.Warn("gemini api key not configured, affirmations will use fallbacks")
		}
		return c, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.GeminiAPIKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	c.client = client
	return c, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("gemini client not configured")
	}
	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned empty response")
	}
	return text, nil
}

// DailyAffirmation implements Generator.
func (c *Client) DailyAffirmation(ctx context.Context, lang string) string {
	var prompt string
	if lang == "ua" {
		prompt = "Напиши коротку позитивну фразу на 10 слів для людини, яка щойно відмітила що вона в порядку. Це має надихати."
	} else {
		prompt = "Write a short positive 10-word affirmation for someone who just checked in as safe. It should be inspiring."
	}
	text, err := c.generate(ctx, prompt)
	if err != nil {
		if utils.Sugar != nil {
			utils.Sugar.Debugf("affirmation generation failed: %v", err)
		}
		return i18n.For(lang).FallbackAffirmation
	}
	return text
}

// FriendSupport implements Generator.
func (c *Client) FriendSupport(ctx context.Context, friendName string, hours int, lang string) string {
	var prompt string
	if lang == "ua" {
		prompt = fmt.Sprintf("Мій друг %s не відмічався вже %d годин. Напиши коротке, турботливе повідомлення, яке я можу йому надіслати.", friendName, hours)
	} else {
		prompt = fmt.Sprintf("My friend %s hasn't checked in for %d hours. Write a short, caring message I can send to check on them.", friendName, hours)
	}
	text, err := c.generate(ctx, prompt)
	if err != nil {
		if utils.Sugar != nil {
			utils.Sugar.Debugf("support message generation failed: %v", err)
		}
		return i18n.For(lang).FallbackSupport
	}
	return text
}

// ChatReply implements Generator.
func (c *Client) ChatReply(ctx context.Context, friendName, mood, text, lang string) (string, error) {
	prompt := fmt.Sprintf(
		"You are %s, a friend in a safety app. Respond to: %q in %s. Max 15 words. Mood: %s.",
		friendName, text, lang, mood,
	)
	return c.generate(ctx, prompt)
}

package dateparse

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"casavida/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// notFoundSentinel is the literal reply the model is instructed to give when
// the text carries no usable date. It must never be read as a timestamp.
const notFoundSentinel = "false"

// GeminiResolver asks a Gemini model to extract a date from free text.
type GeminiResolver struct {
	model    *genai.GenerativeModel
	location *time.Location
}

// NewGeminiResolver builds the client once at process start.
func NewGeminiResolver(ctx context.Context, apiKey string, location *time.Location) (*GeminiResolver, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiResolver{model: model, location: location}, nil
}

// Resolve sends the text to the model and interprets the reply. A reply the
// model was not supposed to give (neither an ISO timestamp nor the sentinel)
// counts as not-found: the user outcome is the same, only the log differs.
func (r *GeminiResolver) Resolve(ctx context.Context, text string, reference time.Time) (time.Time, bool, error) {
	prompt := buildPrompt(reference.In(r.location), r.location)
	resp, err := r.model.GenerateContent(ctx, genai.Text(prompt), genai.Text(text))
	if err != nil {
		return time.Time{}, false, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return time.Time{}, false, errors.New("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	reply := sb.String()

	at, found := ParseResolution(reply, r.location)
	if !found && !strings.EqualFold(strings.TrimSpace(reply), notFoundSentinel) {
		utils.GetLogger().Warn("dateparse: unexpected resolver reply", zap.String("reply", reply))
	}
	return at, found, nil
}

// ParseResolution interprets the model's reply: an ISO timestamp means found,
// the literal "false" (or anything unreadable) means not found. Not-found is
// an explicit second return, never the zero time dressed up as a value.
func ParseResolution(raw string, location *time.Location) (time.Time, bool) {
	reply := strings.Trim(strings.TrimSpace(raw), "`\"'")
	if strings.EqualFold(reply, notFoundSentinel) {
		return time.Time{}, false
	}
	layouts := []string{
		"2006-01-02T15:04:05.000",
		"2006-01-02T15:04:05",
		time.RFC3339,
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, reply, location); err == nil {
			return t.In(location), true
		}
	}
	return time.Time{}, false
}

func buildPrompt(reference time.Time, location *time.Location) string {
	return fmt.Sprintf(`The current date and time is %s (timezone %s).
I will give you a text message. Extract the date and time it refers to and answer with that
instant in ISO format (YYYY-MM-DDTHH:mm:ss), using the timezone above for all conversions.

Rules:
1. If the text mentions no time of day, assume 10:00.
2. Resolve relative expressions ("today", "tomorrow", "next week") against the current date.
3. Resolve weekday names ("Tuesday") to the current or next week depending on context.
4. If the text contains no usable date, answer with the single word false (no quotes).
5. Answer only with the ISO timestamp or false. No other text.`,
		reference.Format(time.RFC3339), location.String())
}

package utils

import (
	"context"
	"encoding/base64"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

// EmbeddingDimensions matches the vector column of the product table.
const EmbeddingDimensions = 1536

type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

// AIClient is the remote model used for narratives, embeddings and image checks.
type AIClient interface {
	EmbeddingClientInterface
	GenerateText(ctx context.Context, prompt string) (string, error)
	DescribeImage(ctx context.Context, mimeType string, image []byte, prompt string) (string, error)
	Provider() string
	Close() error
}

// NewAIClient creates the client for provider: "gemini", "openai" or "none".
func NewAIClient(provider, apiKey, model, embeddingModel string) (AIClient, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, model, embeddingModel), nil
	case "gemini":
		return NewGeminiClient(apiKey, model)
	case "", "none":
		return LocalClient{}, nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// GeminiClient implements AIClient using Google's Gemini models
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Provider() string { return "gemini" }

func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.2)
	m.SetTopP(0.5)
	m.SetMaxOutputTokens(800)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	return firstText(resp)
}

func (c *GeminiClient) DescribeImage(ctx context.Context, mimeType string, image []byte, prompt string) (string, error) {
	format := strings.TrimPrefix(mimeType, "image/")
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.1)

	resp, err := m.GenerateContent(ctx, genai.ImageData(format, image), genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini vision: %w", err)
	}
	return firstText(resp)
}

// GetEmbedding uses the hashed vector; the free Gemini tier has no embedding
// model of the product column's width.
func (c *GeminiClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return HashEmbedding(text), nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated by Gemini")
	}
	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("no text generated by Gemini")
	}
	return strings.TrimSpace(out.String()), nil
}

// OpenAIClient implements AIClient on the OpenAI chat and embedding APIs.
type OpenAIClient struct {
	client         *openai.Client
	model          string
	embeddingModel string
}

func NewOpenAIClient(apiKey, model, embeddingModel string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	if embeddingModel == "" {
		embeddingModel = string(openai.SmallEmbedding3)
	}
	return &OpenAIClient{
		client:         openai.NewClient(apiKey),
		model:          model,
		embeddingModel: embeddingModel,
	}
}

func (c *OpenAIClient) Provider() string { return "openai" }

func (c *OpenAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.chat(ctx, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})
}

func (c *OpenAIClient) DescribeImage(ctx context.Context, mimeType string, image []byte, prompt string) (string, error) {
	dataURL := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(image)
	return c.chat(ctx, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser,
		MultiContent: []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: prompt},
			{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: dataURL}},
		},
	})
}

func (c *OpenAIClient) chat(ctx context.Context, msg openai.ChatCompletionMessage) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    []openai.ChatCompletionMessage{msg},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (c *OpenAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(c.embeddingModel),
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("openai returned no embedding")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}

func (c *OpenAIClient) Close() error { return nil }

// LocalClient is used when no provider is configured. Embeddings are hashed
// locally; generation is unavailable.
type LocalClient struct{}

func (LocalClient) Provider() string { return "none" }

func (LocalClient) GenerateText(context.Context, string) (string, error) {
	return "", ErrAINotConfigured
}

func (LocalClient) DescribeImage(context.Context, string, []byte, string) (string, error) {
	return "", ErrAINotConfigured
}

func (LocalClient) GetEmbedding(_ context.Context, text string) (pgvector.Vector, error) {
	return HashEmbedding(text), nil
}

func (LocalClient) Close() error { return nil }

// HashEmbedding spreads hashed words over a unit vector. Identical word bags
// map to identical vectors, which is enough to rank a small catalog.
func HashEmbedding(text string) pgvector.Vector {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	vector := make([]float32, EmbeddingDimensions)

	for _, word := range words {
		h := fnv.New32a()
		h.Write([]byte(word))
		hash := h.Sum32()
		for i := range vector {
			vector[i] += float32(math.Sin(float64(hash+uint32(i))) * 0.1)
		}
	}

	var magnitude float64
	for _, val := range vector {
		magnitude += float64(val) * float64(val)
	}
	magnitude = math.Sqrt(magnitude)
	if magnitude > 0 {
		for i := range vector {
			vector[i] = float32(float64(vector[i]) / magnitude)
		}
	}

	return pgvector.NewVector(vector)
}

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultModel is used when neither the client nor the request names one.
const DefaultModel = "gpt-4o-mini"

// OpenAI implements Client using the OpenAI chat completions API.
type OpenAI struct {
	client      *openai.Client
	model       string
	temperature *float64
	maxTokens   int
}

// OpenAIOption configures OpenAI.
type OpenAIOption func(*OpenAI)

// NewOpenAI creates an OpenAI-backed client.
// Reads OPENAI_API_KEY from the environment unless WithAPIKey overrides it.
func NewOpenAI(opts ...OpenAIOption) *OpenAI {
	c := &OpenAI{
		model: DefaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		client := openai.NewClient(option.WithAPIKey(os.Getenv("OPENAI_API_KEY")))
		c.client = &client
	}
	return c
}

// WithAPIKey sets the API key explicitly.
func WithAPIKey(key string) OpenAIOption {
	return func(c *OpenAI) {
		client := openai.NewClient(option.WithAPIKey(key))
		c.client = &client
	}
}

// WithModel sets the default model for requests that do not name one.
func WithModel(model string) OpenAIOption {
	return func(c *OpenAI) { c.model = model }
}

// WithTemperature sets the default sampling temperature.
func WithTemperature(t float64) OpenAIOption {
	return func(c *OpenAI) { c.temperature = &t }
}

// WithMaxTokens sets the default completion token limit.
func WithMaxTokens(n int) OpenAIOption {
	return func(c *OpenAI) { c.maxTokens = n }
}

// Complete implements Client.
func (c *OpenAI) Complete(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	params := openai.ChatCompletionNewParams{
		Model:    c.resolveModel(req),
		Messages: buildMessages(req),
	}
	if t, ok := c.resolveTemperature(req); ok {
		params.Temperature = openai.Float(t)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	} else if c.maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(c.maxTokens))
	}
	if req.Schema != nil {
		format, err := buildSchemaFormat(req.Schema)
		if err != nil {
			return nil, NewError("complete", err, false)
		}
		params.ResponseFormat = format
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewError("complete", ctx.Err(), false)
		}
		return nil, NewError("complete", err, isRetryable(err))
	}
	if len(resp.Choices) == 0 {
		return nil, NewError("complete", errors.New("response contained no choices"), true)
	}

	choice := resp.Choices[0]
	return &Response{
		Content:      choice.Message.Content,
		Model:        resp.Model,
		FinishReason: string(choice.FinishReason),
		Usage: Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:  int(resp.Usage.TotalTokens),
		},
		Duration: time.Since(start),
	}, nil
}

func (c *OpenAI) resolveModel(req Request) string {
	if req.Model != "" {
		return req.Model
	}
	return c.model
}

// resolveTemperature picks the request temperature, falling back to the
// client default. A request's explicit 0 wins over the client default;
// ok is false only when neither is set.
func (c *OpenAI) resolveTemperature(req Request) (float64, bool) {
	if req.Temperature != nil {
		return *req.Temperature, true
	}
	if c.temperature != nil {
		return *c.temperature, true
	}
	return 0, false
}

// buildMessages converts a Request into chat completion messages.
// An image URL turns the user message into a multi-part content array.
func buildMessages(req Request) []openai.ChatCompletionMessageParamUnion {
	var messages []openai.ChatCompletionMessageParamUnion
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}

	if req.ImageURL == "" {
		messages = append(messages, openai.UserMessage(req.User))
		return messages
	}

	parts := []openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(req.User),
		openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
			URL: req.ImageURL,
		}),
	}
	messages = append(messages, openai.ChatCompletionMessageParamUnion{
		OfUser: &openai.ChatCompletionUserMessageParam{
			Content: openai.ChatCompletionUserMessageParamContentUnion{
				OfArrayOfContentParts: parts,
			},
		},
	})
	return messages
}

// buildSchemaFormat converts a ResponseSchema into the json_schema
// response format. Strict mode requires additionalProperties: false on
// every object in the schema.
func buildSchemaFormat(schema *ResponseSchema) (openai.ChatCompletionNewParamsResponseFormatUnion, error) {
	var schemaMap map[string]any
	if err := json.Unmarshal(schema.Schema, &schemaMap); err != nil || schemaMap == nil {
		return openai.ChatCompletionNewParamsResponseFormatUnion{},
			fmt.Errorf("schema %q is not a JSON object", schema.Name)
	}
	forbidAdditionalProperties(schemaMap)

	name := schema.Name
	if name == "" {
		name = "response_schema"
	}

	return openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
			Type: "json_schema",
			JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
				Name:        name,
				Description: openai.String(schema.Description),
				Schema:      schemaMap,
				Strict:      openai.Bool(true),
			},
		},
	}, nil
}

func forbidAdditionalProperties(schema map[string]any) {
	if schema == nil {
		return
	}
	if t, ok := schema["type"].(string); ok && t == "object" {
		schema["additionalProperties"] = false
	}
	if props, ok := schema["properties"].(map[string]any); ok {
		for _, prop := range props {
			if m, ok := prop.(map[string]any); ok {
				forbidAdditionalProperties(m)
			}
		}
	}
	if items, ok := schema["items"].(map[string]any); ok {
		forbidAdditionalProperties(items)
	}
}

// isRetryable reports whether an API error is worth retrying.
// Rate limits and server errors are transient; everything else is not.
func isRetryable(err error) bool {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		// Network-level failure, generally transient.
		return true
	}
	code := apiErr.StatusCode
	return code == 429 || (code >= 500 && code < 600)
}

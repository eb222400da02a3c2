// Package llm defines the model-call collaborator used by workflow nodes.
//
// The engine itself never calls a model; nodes reach the configured Client
// through stategraph.Context. The package ships an OpenAI-backed client and
// an exported MockClient for tests and offline runs.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Client sends a completion request to a language model.
type Client interface {
	// Complete sends a request and blocks until the full response is
	// available or ctx is done.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Request configures a single completion call.
type Request struct {
	// Prompt configuration
	System string `json:"system,omitempty"`
	User   string `json:"user"`

	// ImageURL attaches an image to the user turn for vision-capable
	// models. HTTP(S) URLs and data URIs are both accepted.
	ImageURL string `json:"image_url,omitempty"`

	// Model configuration
	Model     string `json:"model,omitempty"`
	MaxTokens int    `json:"max_tokens,omitempty"`

	// Temperature is the sampling temperature. Nil means unset; an
	// explicit 0 is transmitted, it is not the same as unset.
	Temperature *float64 `json:"temperature,omitempty"`

	// Schema, when non-nil, requests structured output conforming to a
	// JSON schema. The response Content is the raw JSON document.
	Schema *ResponseSchema `json:"schema,omitempty"`
}

// Float returns a pointer to v, for setting Request.Temperature.
func Float(v float64) *float64 {
	return &v
}

// ResponseSchema describes a structured-output contract.
type ResponseSchema struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Schema      json.RawMessage `json:"schema"` // JSON Schema
}

// SchemaFor builds a ResponseSchema from a schema document.
// Panics if the schema is not a JSON object; schemas are package-level
// constants, so a bad one is a programming error.
func SchemaFor(name, description string, schema string) *ResponseSchema {
	var obj map[string]any
	if err := json.Unmarshal([]byte(schema), &obj); err != nil || obj == nil {
		panic(fmt.Sprintf("llm: schema %q is not a JSON object", name))
	}
	return &ResponseSchema{
		Name:        name,
		Description: description,
		Schema:      json.RawMessage(schema),
	}
}

// Response is the output of a completion call.
type Response struct {
	Content      string        `json:"content"`
	Model        string        `json:"model"`
	FinishReason string        `json:"finish_reason"`
	Usage        Usage         `json:"usage"`
	Duration     time.Duration `json:"duration"`
}

// Decode unmarshals a structured-output response into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal([]byte(r.Content), v); err != nil {
		return NewError("decode", fmt.Errorf("unmarshal structured output: %w", err), false)
	}
	return nil
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Add accumulates usage from another call.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.TotalTokens += other.TotalTokens
}

// Error is a model-call failure.
type Error struct {
	Op        string // "complete", "decode"
	Err       error
	Retryable bool
}

// NewError creates an Error.
func NewError(op string, err error, retryable bool) *Error {
	return &Error{Op: op, Err: err, Retryable: retryable}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("llm %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

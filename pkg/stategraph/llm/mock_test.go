package llm

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockClient_FixedResponse(t *testing.T) {
	mock := NewMockClient("canned answer")

	resp, err := mock.Complete(context.Background(), Request{
		System: "You are a test.",
		User:   "Say something.",
	})

	require.NoError(t, err)
	assert.Equal(t, "canned answer", resp.Content)
	assert.Equal(t, "mock", resp.Model)
	assert.Equal(t, "stop", resp.FinishReason)
	assert.Positive(t, resp.Usage.InputTokens)
	assert.Positive(t, resp.Usage.OutputTokens)
	assert.Equal(t, resp.Usage.InputTokens+resp.Usage.OutputTokens, resp.Usage.TotalTokens)
}

func TestMockClient_CyclesResponses(t *testing.T) {
	mock := NewMockClient("unused").WithResponses("one", "two")

	for _, want := range []string{"one", "two", "one"} {
		resp, err := mock.Complete(context.Background(), Request{User: "go"})
		require.NoError(t, err)
		assert.Equal(t, want, resp.Content)
	}
}

func TestMockClient_Error(t *testing.T) {
	wantErr := errors.New("model unavailable")
	mock := NewMockClient("").WithError(wantErr)

	resp, err := mock.Complete(context.Background(), Request{User: "go"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, mock.CallCount(), "failed calls are still recorded")
}

func TestMockClient_CompleteFunc(t *testing.T) {
	mock := NewMockClient("").WithCompleteFunc(func(ctx context.Context, req Request) (*Response, error) {
		return &Response{Content: "echo: " + req.User}, nil
	})

	resp, err := mock.Complete(context.Background(), Request{User: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "echo: hello", resp.Content)
}

func TestMockClient_RecordsCalls(t *testing.T) {
	mock := NewMockClient("ok")

	_, err := mock.Complete(context.Background(), Request{User: "first"})
	require.NoError(t, err)
	_, err = mock.Complete(context.Background(), Request{User: "second", Model: "gpt-4o"})
	require.NoError(t, err)

	assert.Equal(t, 2, mock.CallCount())
	require.NotNil(t, mock.LastCall())
	assert.Equal(t, "second", mock.LastCall().User)
	assert.Equal(t, "gpt-4o", mock.LastCall().Model)
}

func TestMockClient_Reset(t *testing.T) {
	mock := NewMockClient("unused").WithResponses("one", "two")

	_, err := mock.Complete(context.Background(), Request{User: "go"})
	require.NoError(t, err)

	mock.Reset()

	assert.Equal(t, 0, mock.CallCount())
	assert.Nil(t, mock.LastCall())

	resp, err := mock.Complete(context.Background(), Request{User: "go"})
	require.NoError(t, err)
	assert.Equal(t, "one", resp.Content, "response cycle restarts after Reset")
}

func TestMockClient_RespectsCancellation(t *testing.T) {
	mock := NewMockClient("ok")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mock.Complete(ctx, Request{User: "go"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, mock.CallCount(), "cancelled calls are not recorded")
}

func TestMockClient_ConcurrentUse(t *testing.T) {
	mock := NewMockClient("ok")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := mock.Complete(context.Background(), Request{User: fmt.Sprintf("req-%d", n)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, mock.CallCount())
}

package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first answer"},
		MockResponse{Text: "second answer"},
	)

	resp1, err := mock.Generate(context.Background(), Request{Prompt: "first"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1 != "first answer" {
		t.Fatalf("expected 'first answer', got %q", resp1)
	}

	resp2, err := mock.Generate(context.Background(), Request{Prompt: "second"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2 != "second answer" {
		t.Fatalf("expected 'second answer', got %q", resp2)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})

	req := Request{
		System:    "sys",
		Prompt:    "hello",
		MaxTokens: 400,
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Errorf("expected system 'sys', got %q", mock.Calls[0].System)
	}
	if mock.Calls[0].Prompt != "hello" {
		t.Errorf("expected prompt 'hello', got %q", mock.Calls[0].Prompt)
	}
}

func TestMockProvider_CannedError(t *testing.T) {
	wantErr := &ErrRateLimit{}
	mock := NewMockProvider(MockResponse{Err: wantErr})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestNewProvider_UnknownProvider(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: "qwen-local"})
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("expected model 'mock', got %q", p.ModelID())
	}
}

func TestNewProvider_MissingAPIKey(t *testing.T) {
	tests := []string{"gemini", "openai", "anthropic"}
	for _, provider := range tests {
		t.Run(provider, func(t *testing.T) {
			_, err := NewProvider(context.Background(), Config{Provider: provider})
			if err == nil {
				t.Fatalf("expected error for %s without API key", provider)
			}
		})
	}
}

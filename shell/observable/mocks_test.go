package observable_test

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/locallibrary-go/shell"
)

type mockCommand struct {
	Value string
}

func (mockCommand) CommandType() string {
	return "TestCommand"
}

type mockQuery struct {
	Value string
}

func (mockQuery) QueryType() string {
	return "TestQuery"
}

type mockCommandHandler struct {
	result shell.HandlerResult
	err    error
	calls  []mockCommand
	mu     sync.Mutex
}

func newMockCommandHandler(result shell.HandlerResult, err error) *mockCommandHandler {
	return &mockCommandHandler{result: result, err: err}
}

func (h *mockCommandHandler) Handle(_ context.Context, command mockCommand) (shell.HandlerResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, command)

	return h.result, h.err
}

func (h *mockCommandHandler) GetCalls() []mockCommand {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]mockCommand(nil), h.calls...)
}

type mockQueryHandler struct {
	result []string
	err    error
}

func (h *mockQueryHandler) Handle(ctx context.Context, _ mockQuery) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return h.result, h.err
}

package service

import (
	"context"
	"testing"

	"github.com/GriffinCanCode/PowerTransform/internal/shared/types"
)

type mockProvider struct {
	id string
}

func (m *mockProvider) Definition() types.Service {
	return types.Service{
		ID:           m.id,
		Name:         "Mock Service",
		Description:  "A mock service for testing",
		Category:     types.CategoryTransform,
		Capabilities: []string{"forward", "inverse"},
		Tools: []types.Tool{
			{
				ID:          m.id + ".test",
				Name:        "Test Tool",
				Description: "A test tool",
				Returns:     "number",
			},
		},
	}
}

func (m *mockProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return &types.Result{
		Success: true,
		Data:    map[string]interface{}{"result": 1.0},
	}, nil
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	p := &mockProvider{id: "test"}

	if err := r.Register(p); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, ok := r.Get("test"); !ok {
		t.Error("Service should be registered")
	}
}

func TestRegisterEmptyID(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(&mockProvider{id: ""}); err == nil {
		t.Error("Register should reject empty service IDs")
	}
}

func TestUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test"})

	r.Unregister("test")

	if _, ok := r.Get("test"); ok {
		t.Error("Service should be unregistered")
	}
}

func TestList(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test1"})
	r.Register(&mockProvider{id: "test2"})

	services := r.List(nil)
	if len(services) != 2 {
		t.Errorf("Expected 2 services, got %d", len(services))
	}

	cat := types.CategoryTransform
	filtered := r.List(&cat)
	if len(filtered) != 2 {
		t.Errorf("Expected 2 transform services, got %d", len(filtered))
	}

	other := types.CategoryMath
	empty := r.List(&other)
	if len(empty) != 0 {
		t.Errorf("Expected 0 math services, got %d", len(empty))
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test"})

	ctx := context.Background()
	result, err := r.Execute(ctx, "test.test", map[string]interface{}{}, nil)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !result.Success {
		t.Error("Expected successful execution")
	}
}

func TestExecuteInvalidToolID(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test"})

	ctx := context.Background()
	result, err := r.Execute(ctx, "noseparator", map[string]interface{}{}, nil)
	if err == nil {
		t.Error("Expected error for tool ID without separator")
	}
	if result.Success {
		t.Error("Result should not be successful")
	}
}

func TestExecuteUnknownService(t *testing.T) {
	r := NewRegistry()

	ctx := context.Background()
	result, err := r.Execute(ctx, "missing.tool", map[string]interface{}{}, nil)
	if err == nil {
		t.Error("Expected error for unknown service")
	}
	if result.Success {
		t.Error("Result should not be successful")
	}
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test1"})
	r.Register(&mockProvider{id: "test2"})

	stats := r.Stats()
	totalServices := stats["total_services"].(int)
	if totalServices != 2 {
		t.Errorf("Expected 2 total services, got %d", totalServices)
	}

	totalTools := stats["total_tools"].(int)
	if totalTools != 2 {
		t.Errorf("Expected 2 total tools, got %d", totalTools)
	}
}

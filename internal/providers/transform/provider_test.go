package transform

import (
	"context"
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/PowerTransform/internal/shared/types"
)

func assertSuccess(t *testing.T, result *types.Result) {
	t.Helper()
	require.NotNil(t, result)
	if !result.Success && result.Error != nil {
		t.Fatalf("expected success, got error: %s", *result.Error)
	}
	require.True(t, result.Success)
}

func assertFailure(t *testing.T, result *types.Result) {
	t.Helper()
	require.NotNil(t, result)
	require.False(t, result.Success)
	require.NotNil(t, result.Error)
}

func TestDefinition(t *testing.T) {
	p := NewProvider(0)
	def := p.Definition()

	assert.Equal(t, "transform", def.ID)
	assert.Equal(t, types.CategoryTransform, def.Category)
	assert.Len(t, def.Tools, 11)

	seen := make(map[string]bool)
	for _, tool := range def.Tools {
		assert.Contains(t, tool.ID, "transform.")
		assert.False(t, seen[tool.ID], "duplicate tool ID: %s", tool.ID)
		seen[tool.ID] = true
	}
}

func TestForward(t *testing.T) {
	p := NewProvider(0)
	ctx := context.Background()

	t.Run("general case", func(t *testing.T) {
		result, err := p.Execute(ctx, "transform.forward", map[string]interface{}{
			"y":     5.0,
			"theta": 0.2,
		}, nil)
		require.NoError(t, err)
		assertSuccess(t, result)
		want := (gomath.Pow(6, 0.2) - 1) / 0.2
		assert.InDelta(t, want, result.Data["result"], 1e-12)
	})

	t.Run("log regime", func(t *testing.T) {
		result, err := p.Execute(ctx, "transform.forward", map[string]interface{}{
			"y":     3.0,
			"theta": 0.0,
		}, nil)
		require.NoError(t, err)
		assertSuccess(t, result)
		assert.Equal(t, gomath.Log(4), result.Data["result"])
	})

	t.Run("integer coercion", func(t *testing.T) {
		result, err := p.Execute(ctx, "transform.forward", map[string]interface{}{
			"y":     5,
			"theta": 1,
		}, nil)
		require.NoError(t, err)
		assertSuccess(t, result)
		assert.InDelta(t, 5.0, result.Data["result"], 1e-12)
	})

	t.Run("missing theta", func(t *testing.T) {
		result, err := p.Execute(ctx, "transform.forward", map[string]interface{}{
			"y": 5.0,
		}, nil)
		require.NoError(t, err)
		assertFailure(t, result)
	})
}

func TestInverseRoundTrip(t *testing.T) {
	p := NewProvider(0)
	ctx := context.Background()

	forward, err := p.Execute(ctx, "transform.forward", map[string]interface{}{
		"y":     2.5,
		"theta": 1.3,
	}, nil)
	require.NoError(t, err)
	assertSuccess(t, forward)

	back, err := p.Execute(ctx, "transform.inverse", map[string]interface{}{
		"y":     forward.Data["result"],
		"theta": 1.3,
	}, nil)
	require.NoError(t, err)
	assertSuccess(t, back)
	assert.InDelta(t, 2.5, back.Data["result"], 1e-9)
}

func TestInverseNegativeBranch(t *testing.T) {
	p := NewProvider(0)
	ctx := context.Background()

	result, err := p.Execute(ctx, "transform.inverse", map[string]interface{}{
		"y":     -2.0,
		"theta": 0.5,
	}, nil)
	require.NoError(t, err)
	assertSuccess(t, result)
	want := 1 - gomath.Pow(4, 1/1.5)
	assert.InDelta(t, want, result.Data["result"], 1e-12)
}

func TestDerivative(t *testing.T) {
	p := NewProvider(0)
	ctx := context.Background()

	result, err := p.Execute(ctx, "transform.derivative", map[string]interface{}{
		"y":     2.0,
		"theta": 0.5,
	}, nil)
	require.NoError(t, err)
	assertSuccess(t, result)
	assert.InDelta(t, 1/gomath.Sqrt(3), result.Data["result"], 1e-15)

	origin, err := p.Execute(ctx, "transform.derivative", map[string]interface{}{
		"y":     0.0,
		"theta": -0.7,
	}, nil)
	require.NoError(t, err)
	assertSuccess(t, origin)
	assert.Equal(t, 1.0, origin.Data["result"])
}

func TestBatch(t *testing.T) {
	p := NewProvider(0)
	ctx := context.Background()

	t.Run("forward and inverse", func(t *testing.T) {
		ys := []interface{}{-7.5, -2.0, 0.0, 1.0, 5.0}
		forward, err := p.Execute(ctx, "transform.forward.batch", map[string]interface{}{
			"ys":    ys,
			"theta": 0.5,
		}, nil)
		require.NoError(t, err)
		assertSuccess(t, forward)

		transformed, ok := forward.Data["result"].([]float64)
		require.True(t, ok)
		require.Len(t, transformed, 5)
		assert.Equal(t, 5, forward.Data["count"])
		assert.Equal(t, 0.0, transformed[2])

		asParams := make([]interface{}, len(transformed))
		for i, v := range transformed {
			asParams[i] = v
		}
		back, err := p.Execute(ctx, "transform.inverse.batch", map[string]interface{}{
			"ys":    asParams,
			"theta": 0.5,
		}, nil)
		require.NoError(t, err)
		assertSuccess(t, back)

		recovered, ok := back.Data["result"].([]float64)
		require.True(t, ok)
		for i, want := range []float64{-7.5, -2.0, 0.0, 1.0, 5.0} {
			assert.InDelta(t, want, recovered[i], 1e-9)
		}
	})

	t.Run("derivative", func(t *testing.T) {
		result, err := p.Execute(ctx, "transform.derivative.batch", map[string]interface{}{
			"ys":    []interface{}{-3.0, 0.0, 2.0},
			"theta": 0.5,
		}, nil)
		require.NoError(t, err)
		assertSuccess(t, result)

		slopes, ok := result.Data["result"].([]float64)
		require.True(t, ok)
		assert.Equal(t, 1.0, slopes[1])
	})

	t.Run("empty array", func(t *testing.T) {
		result, err := p.Execute(ctx, "transform.forward.batch", map[string]interface{}{
			"ys":    []interface{}{},
			"theta": 0.5,
		}, nil)
		require.NoError(t, err)
		assertFailure(t, result)
	})

	t.Run("exceeds limit", func(t *testing.T) {
		small := NewProvider(3)
		result, err := small.Execute(ctx, "transform.forward.batch", map[string]interface{}{
			"ys":    []interface{}{1.0, 2.0, 3.0, 4.0},
			"theta": 0.5,
		}, nil)
		require.NoError(t, err)
		assertFailure(t, result)
		assert.Contains(t, *result.Error, "exceeds limit")
	})

	t.Run("overflow is rejected", func(t *testing.T) {
		result, err := p.Execute(ctx, "transform.forward.batch", map[string]interface{}{
			"ys":    []interface{}{1e300},
			"theta": 3.1,
		}, nil)
		require.NoError(t, err)
		assertFailure(t, result)
	})
}

func TestGuards(t *testing.T) {
	p := NewProvider(0)
	ctx := context.Background()

	t.Run("slog positive", func(t *testing.T) {
		result, err := p.Execute(ctx, "transform.slog", map[string]interface{}{"y": 5.0}, nil)
		require.NoError(t, err)
		assertSuccess(t, result)
		assert.InDelta(t, 1.6094379124341003, result.Data["result"], 1e-15)
	})

	t.Run("slog guarded", func(t *testing.T) {
		result, err := p.Execute(ctx, "transform.slog", map[string]interface{}{"y": -3.0}, nil)
		require.NoError(t, err)
		assertSuccess(t, result)
		assert.Equal(t, 0.0, result.Data["result"])
	})

	t.Run("spower", func(t *testing.T) {
		result, err := p.Execute(ctx, "transform.spower", map[string]interface{}{
			"y":  2.0,
			"pw": 0.5,
		}, nil)
		require.NoError(t, err)
		assertSuccess(t, result)
		assert.InDelta(t, 1.4142135623730951, result.Data["result"], 1e-15)
	})

	t.Run("spower guarded", func(t *testing.T) {
		result, err := p.Execute(ctx, "transform.spower", map[string]interface{}{
			"y":  -3.0,
			"pw": 2.0,
		}, nil)
		require.NoError(t, err)
		assertSuccess(t, result)
		assert.Equal(t, 1.0, result.Data["result"])
	})

	t.Run("spower missing exponent", func(t *testing.T) {
		result, err := p.Execute(ctx, "transform.spower", map[string]interface{}{"y": 2.0}, nil)
		require.NoError(t, err)
		assertFailure(t, result)
	})
}

func TestDiagnostics(t *testing.T) {
	p := NewProvider(0)
	ctx := context.Background()

	t.Run("skewness of right-skewed data", func(t *testing.T) {
		result, err := p.Execute(ctx, "transform.skewness", map[string]interface{}{
			"ys": []interface{}{1.0, 1.0, 2.0, 2.0, 3.0, 10.0},
		}, nil)
		require.NoError(t, err)
		assertSuccess(t, result)
		assert.Greater(t, result.Data["result"].(float64), 0.0)
	})

	t.Run("skewness of constant data", func(t *testing.T) {
		result, err := p.Execute(ctx, "transform.skewness", map[string]interface{}{
			"ys": []interface{}{2.0, 2.0, 2.0, 2.0},
		}, nil)
		require.NoError(t, err)
		assertFailure(t, result)
	})

	t.Run("moments", func(t *testing.T) {
		result, err := p.Execute(ctx, "transform.moments", map[string]interface{}{
			"ys": []interface{}{1.0, 2.0, 3.0, 4.0, 10.0},
		}, nil)
		require.NoError(t, err)
		assertSuccess(t, result)
		assert.InDelta(t, 4.0, result.Data["mean"], 1e-12)
		assert.InDelta(t, 12.5, result.Data["variance"], 1e-12)
		assert.InDelta(t, gomath.Sqrt(12.5), result.Data["stdev"], 1e-12)
		assert.Contains(t, result.Data, "skewness")
		assert.Contains(t, result.Data, "ex_kurtosis")
		assert.Equal(t, 5, result.Data["count"])
	})

	t.Run("compare reduces skewness", func(t *testing.T) {
		result, err := p.Execute(ctx, "transform.compare", map[string]interface{}{
			"ys":    []interface{}{0.5, 1.0, 1.5, 2.0, 3.0, 5.0, 8.0, 13.0, 21.0, 40.0},
			"theta": 0.0,
		}, nil)
		require.NoError(t, err)
		assertSuccess(t, result)

		before := result.Data["skewness_before"].(float64)
		after := result.Data["skewness_after"].(float64)
		assert.Greater(t, before, 0.0)
		assert.Less(t, gomath.Abs(after), gomath.Abs(before))
		assert.Equal(t, true, result.Data["improved"])
	})

	t.Run("compare missing theta", func(t *testing.T) {
		result, err := p.Execute(ctx, "transform.compare", map[string]interface{}{
			"ys": []interface{}{1.0, 2.0, 3.0},
		}, nil)
		require.NoError(t, err)
		assertFailure(t, result)
	})
}

func TestUnknownTool(t *testing.T) {
	p := NewProvider(0)
	ctx := context.Background()

	result, err := p.Execute(ctx, "transform.nope", map[string]interface{}{}, nil)
	require.NoError(t, err)
	assertFailure(t, result)
	assert.Contains(t, *result.Error, "unknown tool")
}

package batch

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/erraggy/slashfmt/slash"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFormatAll_PreservesOrder(t *testing.T) {
	inputs := make([][]string, 200)
	want := make([]string, len(inputs))
	for i := range inputs {
		inputs[i] = []string{fmt.Sprintf("dir%d", i), `\\file`}
		want[i] = fmt.Sprintf("dir%d/file", i)
	}

	got, err := FormatAll(context.Background(), slash.Normalize, inputs, 4)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFormatAll_DefaultLimit(t *testing.T) {
	got, err := FormatAll(context.Background(), slash.MustNew("t"), [][]string{{"a"}, {"b", "c"}, nil}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a/", "b/c/", "/"}, got)
}

func TestFormatAll_Empty(t *testing.T) {
	got, err := FormatAll(context.Background(), slash.Normalize, nil, 2)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFormatAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FormatAll(ctx, slash.Normalize, Lines([]string{"a", "b", "c"}), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLines(t *testing.T) {
	assert.Equal(t, [][]string{{"a//b"}, {""}}, Lines([]string{"a//b", ""}))
	assert.Empty(t, Lines(nil))
}

package ansibanner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePadding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Padding
	}{
		{"1", UniformPadding(1)},
		{"1, 2", Padding{Top: 1, Right: 2, Bottom: 1, Left: 2}},
		{"1,2,3,4", Padding{Top: 1, Right: 2, Bottom: 3, Left: 4}},
	}
	for _, tt := range tests {
		got, err := ParsePadding(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	for _, in := range []string{"", "x", "1,2,3", "-1"} {
		_, err := ParsePadding(in)
		var ce *ConfigError
		assert.True(t, errors.As(err, &ce), in)
	}
}

func TestLayoutApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		layout Layout
		rows   []string
		want   []string
	}{
		{"no-op", Layout{}, []string{"ab"}, []string{"ab"}},
		{"padding", Layout{Padding: UniformPadding(1)}, []string{"ab"}, []string{"    ", " ab ", "    "}},
		{"widen centered", Layout{Width: 6, Align: AlignCenter}, []string{"ab"}, []string{"  ab  "}},
		{"widen right", Layout{Width: 4, Align: AlignRight}, []string{"ab"}, []string{"  ab"}},
		{"clip left", Layout{MaxWidth: 3}, []string{"abcde"}, []string{"abc"}},
		{"clip center", Layout{MaxWidth: 3, Align: AlignCenter}, []string{"abcde"}, []string{"bcd"}},
		{"clip right", Layout{MaxWidth: 3, Align: AlignRight}, []string{"abcde"}, []string{"cde"}},
		{"max width above width", Layout{MaxWidth: 10}, []string{"abc"}, []string{"abc"}},
		{"max width caps width", Layout{Width: 8, MaxWidth: 4}, []string{"ab"}, []string{"ab  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.layout.Apply(GridFromRows(tt.rows...))
			assert.Equal(t, tt.want, got.Lines())
		})
	}
}

func TestLayoutValidate(t *testing.T) {
	t.Parallel()

	assert.Error(t, Layout{Width: -1}.validate())
	assert.Error(t, Layout{MaxWidth: -1}.validate())
	assert.Error(t, Layout{Padding: Padding{Left: -1}}.validate())
	assert.NoError(t, Layout{Width: 5}.validate())
}

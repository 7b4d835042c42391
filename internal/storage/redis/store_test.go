package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStoreRejectsBadURL(t *testing.T) {
	_, err := NewStore(context.Background(), "not-a-url", "pairup:")
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse redis URL")
}

func TestEscapeGlob(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"pairup:", "pairup:"},
		{"a*b", `a\*b`},
		{"q?[x]", `q\?\[x\]`},
		{`back\slash`, `back\\slash`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, escapeGlob(tt.in))
		})
	}
}

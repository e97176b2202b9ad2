package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "hello", Fold("HeLLo"))
	// Full case folding, not just ASCII lowering
	assert.Equal(t, Fold("GROSSE"), Fold("Große"))
}

func TestTruncateText(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	assert.Equal(t, "short", tp.TruncateText("short", 10))
	assert.Equal(t, "as is", tp.TruncateText("as is", 0))
	assert.Equal(t, "hello w...", tp.TruncateText("hello world", 7))

	// A multi-byte rune is never split mid-sequence
	assert.Equal(t, "h...", tp.TruncateText("héllo", 2))
}

func TestSanitizeUTF8(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	assert.Equal(t, "already valid", tp.SanitizeUTF8("already valid"))

	broken := string([]byte{'a', 0xff, 'b'})
	assert.Equal(t, "ab", tp.SanitizeUTF8(broken))
}

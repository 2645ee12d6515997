package interlingua

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessageShape(t *testing.T) {
	err := NewTypeMismatch("interlingua.Validate", "triple.subject", CategoryEntity, CategoryStatement)
	msg := err.Error()

	assert.Contains(t, msg, "interlingua.Validate")
	assert.Contains(t, msg, "type mismatch")
	assert.Contains(t, msg, "expected entity, got statement")
	assert.Contains(t, msg, "triple.subject")
}

func TestIsKindThroughWrapping(t *testing.T) {
	inner := NewError(UnknownGrammar, "grammar.Get", "no grammar named klingon")
	wrapped := fmt.Errorf("rendering failed: %w", inner)

	assert.True(t, IsKind(wrapped, UnknownGrammar))
	assert.False(t, IsKind(wrapped, ParseFailed))

	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, UnknownGrammar, kind)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(VsaError, "itemmem.Insert", "storing vector", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}

func TestKindOfPlainError(t *testing.T) {
	_, ok := KindOf(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestErrorfFormats(t *testing.T) {
	err := Errorf(UnsupportedLanguage, "lexicon.ForLanguage", "no lexicon for %q", "tlh")
	assert.Contains(t, err.Error(), `no lexicon for "tlh"`)
}

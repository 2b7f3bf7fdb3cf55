package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCommentText(t *testing.T) {
	assert.Equal(t, "great food", SanitizeCommentText("  great food  "))
	assert.Equal(t, "hello", SanitizeCommentText("<script>alert(1)</script>hello"))
	assert.Equal(t, "bold claim", SanitizeCommentText("<b>bold</b> claim"))
	assert.Equal(t, "", SanitizeCommentText("   <img src=x>   "))
}

func TestSanitizeCommentTextKeepsPlainTextIntact(t *testing.T) {
	// HTML-significant characters in plain text must round-trip, not come
	// back entity-escaped
	assert.Equal(t, "fish & chips > salad", SanitizeCommentText("fish & chips > salad"))
	assert.Equal(t, `she said "5 < 10"`, SanitizeCommentText(`she said "5 < 10"`))
	assert.Equal(t, "美味しい食べ物", SanitizeCommentText("  美味しい食べ物  "))
}

func TestUploadFileName(t *testing.T) {
	name := UploadFileName("Margherita Pizza!")
	assert.True(t, strings.HasSuffix(name, "-margherita-pizza"), name)

	// Two uploads of the same item must never collide
	assert.NotEqual(t, name, UploadFileName("Margherita Pizza!"))

	// Name with no usable characters still yields a unique id
	assert.NotEmpty(t, UploadFileName("!!!"))
}

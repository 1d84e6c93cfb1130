package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleFromMessage(t *testing.T) {
	assert.Equal(t, "Hello there, how are you?", TitleFromMessage("Hello there, how are you?"))

	long := strings.Repeat("a", 80)
	assert.Equal(t, strings.Repeat("a", 50), TitleFromMessage(long))

	exact := strings.Repeat("b", 50)
	assert.Equal(t, exact, TitleFromMessage(exact))

	// Truncation must not split multi-byte characters.
	wide := strings.Repeat("日", 60)
	assert.Equal(t, strings.Repeat("日", 50), TitleFromMessage(wide))

	assert.Equal(t, "", TitleFromMessage(""))
}

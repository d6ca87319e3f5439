package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLanguage(t *testing.T) {
	assert.Equal(t, "Telugu", ResolveLanguage("te").Name)
	assert.Equal(t, "Hindi", ResolveLanguage("hi").Name)
	assert.Equal(t, "English", ResolveLanguage("en").Name)
}

func TestResolveLanguageDefaultsToEnglish(t *testing.T) {
	assert.Equal(t, "English", ResolveLanguage("").Name)
	assert.Equal(t, "English", ResolveLanguage("fr").Name)
	assert.Equal(t, "English", ResolveLanguage("nonsense").Name)
}

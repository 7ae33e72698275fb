package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenUniqID(t *testing.T) {
	SetupIDWorker(1)
	a := GenUniqID()
	b := GenUniqID()
	assert.NotEqual(t, a, b)
}

func TestParseAcceptLanguage(t *testing.T) {
	res := ParseAcceptLanguage("en-US,en;q=0.9,sv;q=0.8")
	assert.NotEmpty(t, res)
	assert.Equal(t, "en-US", res[0].Tag)

	res = ParseAcceptLanguage("sv")
	assert.Len(t, res, 1)
	assert.Equal(t, "sv", res[0].Tag)

	assert.Empty(t, ParseAcceptLanguage(""))
}

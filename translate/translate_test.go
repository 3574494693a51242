package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLocales("en-US")
	assert.Equal("counter 12", From("counter %v", 12))

	SetLocales()
	assert.Equal("missing account", From("missing account"))
}

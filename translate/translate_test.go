package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("halt", From("halt"))
	assert.Equal("label 3 missing", From("label %v missing", 3))
}

package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtrAndValue(t *testing.T) {
	p := Ptr(42)
	*p = 43
	assert.Equal(t, 43, Value(p))

	var missing *string
	assert.Equal(t, "", Value(missing))
}

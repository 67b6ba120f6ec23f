package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesWritten(t *testing.T) {
	Reset()
	assert.EqualValues(t, 0, BytesWritten())

	AddBytesWritten(128)
	AddBytesWritten(64)
	assert.EqualValues(t, 192, BytesWritten())

	Reset()
	assert.EqualValues(t, 0, BytesWritten())
}

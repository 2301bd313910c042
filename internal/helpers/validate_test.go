package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testConfig struct {
	Port  int    `validate:"min=1,max=65535"`
	Depth int    `validate:"min=1,max=8"`
	Name  string `validate:"required"`
}

func TestValidate(t *testing.T) {
	assert.True(t, IsNil(Validate(testConfig{Port: 8002, Depth: 3, Name: "bench"})))

	err := Validate(testConfig{Port: 0, Depth: 9})
	assert.False(t, IsNil(err))
	assert.Equal(t, "invalid config: Port must be at least 1; Depth must be at most 8; Name is required", err.Message())
}

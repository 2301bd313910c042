package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHiddenProgressBarWritesNothing(t *testing.T) {
	var b strings.Builder
	p := CreateProgressBar(10, "bench", &b, 0, false)
	p.Add(3)
	p.Set(10)
	p.Close()
	assert.Equal(t, "", b.String())
}

package cmdutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnableProfilingInvalidKind(t *testing.T) {
	_, err := EnableProfiling("disk")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected profile: disk")
}

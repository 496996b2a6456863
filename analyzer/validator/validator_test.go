package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJSONArrayForm(t *testing.T) {
	warnings := ValidateJSON(`[{"name":"run1","GFLOPS":100.5,"note":"warmup"}]`)
	assert.Empty(t, warnings)
}

func TestValidateJSONObjectForm(t *testing.T) {
	warnings := ValidateJSON(`{"run1":{"GFLOPS":100.5},"run2":42}`)
	assert.Empty(t, warnings)
}

func TestValidateJSONUnsupportedShape(t *testing.T) {
	warnings := ValidateJSON(`"just a string"`)
	assert.NotEmpty(t, warnings)
}

func TestValidateJSONNestedArrayValue(t *testing.T) {
	warnings := ValidateJSON(`{"run1":{"samples":[1,2,3]}}`)
	assert.NotEmpty(t, warnings)
}

func TestValidateJSONMalformed(t *testing.T) {
	warnings := ValidateJSON(`{"run1": `)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "not valid JSON")
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSegmenterConfig(t *testing.T) {
	valid := SegmenterConfig{Marker: '\x01', ScriptName: "hebrew", WordClass: `[\p{Hebrew}0-9]`}
	assert.NoError(t, ValidateSegmenterConfig(valid))

	zero := valid
	zero.Marker = 0
	assert.Error(t, ValidateSegmenterConfig(zero))

	space := valid
	space.Marker = ' '
	assert.Error(t, ValidateSegmenterConfig(space))

	badClass := valid
	badClass.WordClass = `[unclosed`
	assert.Error(t, ValidateSegmenterConfig(badClass))

	noScript := valid
	noScript.ScriptName = ""
	assert.Error(t, ValidateSegmenterConfig(noScript))
}

func TestValidateChunkerConfig(t *testing.T) {
	assert.NoError(t, ValidateChunkerConfig(ChunkerConfig{MaxTokens: 100, Overlap: 10}))
	assert.Error(t, ValidateChunkerConfig(ChunkerConfig{MaxTokens: 0}))
	assert.Error(t, ValidateChunkerConfig(ChunkerConfig{MaxTokens: 10, Overlap: -1}))
	assert.Error(t, ValidateChunkerConfig(ChunkerConfig{MaxTokens: 10, Overlap: 10}))
}

func TestCheckMarkerFree(t *testing.T) {
	assert.NoError(t, CheckMarkerFree("טקסט רגיל.", '\x01'))
	assert.Error(t, CheckMarkerFree("טקסט\x01פגום", '\x01'))
}

func TestValidatorCollectsErrors(t *testing.T) {
	v := NewValidator()
	v.RequirePositive(-1, "max_tokens")
	v.RequireNonNegative(-2, "overlap")
	v.RequireNotEmpty("", "name")
	v.Require(false, "flag", "must hold")

	assert.True(t, v.HasErrors())
	assert.Len(t, v.Errors(), 4)
	assert.ErrorContains(t, v.Error(), "max_tokens")
	assert.ErrorContains(t, v.Error(), "must hold")
}

func TestValidatorNoErrors(t *testing.T) {
	v := NewValidator()
	v.RequirePositive(1, "n")
	assert.False(t, v.HasErrors())
	assert.NoError(t, v.Error())
}

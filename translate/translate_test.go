package translate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(SetLanguage("en-US"))
	assert.Equal("label start missing", From("label %v missing", "start"))
	assert.Equal("FF", From("%02X", 0xff))
}

func TestFprintf(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(SetLanguage("en"))

	buf := &bytes.Buffer{}
	n, err := Fprintf(buf, "pc: %04X\n", 0x1234)
	assert.NoError(err)
	assert.Equal(9, n)
	assert.Equal("pc: 1234\n", buf.String())
}

func TestSetLanguageInvalid(t *testing.T) {
	assert := assert.New(t)

	err := SetLanguage("not a language tag!")
	assert.Error(err)

	// Printer is unchanged after a failed override.
	assert.Equal("ok", From("ok"))
}

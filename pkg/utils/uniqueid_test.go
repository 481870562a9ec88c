package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaptainUniqueIDFormat(t *testing.T) {
	id := CaptainUniqueID("R001")
	assert.Regexp(t, regexp.MustCompile(`^APX-R001-[A-Z0-9]{9}$`), id)
}

func TestCaptainUniqueIDUsesLastFourOfRollNumber(t *testing.T) {
	id := CaptainUniqueID("r20cs042")
	assert.Regexp(t, regexp.MustCompile(`^APX-S042-[A-Z0-9]{9}$`), id)
}

func TestPlayerUniqueIDFormat(t *testing.T) {
	id := PlayerUniqueID("Asha Rao")
	assert.Regexp(t, regexp.MustCompile(`^PLY-asha-[A-Z0-9]{3}[0-9]{6}$`), id)
}

func TestPlayerUniqueIDEmptyCaptainName(t *testing.T) {
	id := PlayerUniqueID("")
	assert.Regexp(t, regexp.MustCompile(`^PLY-captain-[A-Z0-9]{3}[0-9]{6}$`), id)
}

func TestRandomAlnumLengthAndAlphabet(t *testing.T) {
	s := RandomAlnum(16)
	assert.Len(t, s, 16)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{16}$`), s)
}

package record

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoolhub/school-records-hub/internal/domain/shared"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	line, err := Encode([]string{"S001", "Aliya", "10-A"})
	assert.NoError(t, err)
	assert.Equal(t, "S001|Aliya|10-A", line)

	assert.Equal(t, []string{"S001", "Aliya", "10-A"}, Decode(line))
}

func TestDecodeTrimsWhitespace(t *testing.T) {
	fields := Decode("  S001 | Aliya \t| 10-A ")
	assert.Equal(t, []string{"S001", "Aliya", "10-A"}, fields)
}

func TestDecodeKeepsEmptyFields(t *testing.T) {
	fields := Decode("S001||Unpaid")
	assert.Equal(t, []string{"S001", "", "Unpaid"}, fields)
}

func TestEncodeRejectsDelimiterInField(t *testing.T) {
	_, err := Encode([]string{"S001", "Aliya|Omar"})
	assert.ErrorIs(t, err, shared.ErrDelimiterInField)
}

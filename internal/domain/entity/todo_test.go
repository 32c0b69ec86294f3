package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus_CaseInsensitive(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{input: "ongoing", want: StatusOngoing},
		{input: "Ongoing", want: StatusOngoing},
		{input: "ONGOING", want: StatusOngoing},
		{input: "notstarted", want: StatusNotStarted},
		{input: "completed", want: StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseStatus(tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatus_RejectsUnknownValues(t *testing.T) {
	for _, input := range []string{"", "URGENT", "DONE", "ON GOING"} {
		_, ok := ParseStatus(input)
		assert.False(t, ok, "expected %q to be rejected", input)
	}
}

func TestStatusEnumDescription(t *testing.T) {
	assert.Equal(t, "[NOTSTARTED ONGOING COMPLETED]", StatusEnumDescription())
}

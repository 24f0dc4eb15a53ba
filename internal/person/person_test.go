package person

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Person
		wantErr bool
	}{
		{"Kiruthika", Kiruthika, false},
		{"Neha", Neha, false},
		{"", "", true},
		{"kiruthika", "", true},
		{"Alice", "", true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
		} else {
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestOther(t *testing.T) {
	assert.Equal(t, Neha, Kiruthika.Other())
	assert.Equal(t, Kiruthika, Neha.Other())
}

func TestParsePaidFor(t *testing.T) {
	got, err := ParsePaidFor("")
	assert.NoError(t, err)
	assert.Equal(t, PaidForBoth, got, "empty normalizes to Both")

	got, err = ParsePaidFor("Neha")
	assert.NoError(t, err)
	assert.Equal(t, PaidForNeha, got)

	_, err = ParsePaidFor("Everyone")
	assert.Error(t, err)
}

func TestPaidForPerson(t *testing.T) {
	_, ok := PaidForBoth.Person()
	assert.False(t, ok)

	p, ok := PaidForKiruthika.Person()
	assert.True(t, ok)
	assert.Equal(t, Kiruthika, p)
}

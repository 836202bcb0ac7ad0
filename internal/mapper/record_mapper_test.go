package mapper

import (
	"testing"

	"title-assist-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"205-555-0142", "2055550142"},
		{"(205) 555 0142", "2055550142"},
		{"+1 205.555.0142", "12055550142"},
		{"no digits", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DigitsOnly(tt.input), "input %q", tt.input)
	}
}

func TestClientRecordRoundTrip(t *testing.T) {
	m := NewRecordMapper()

	in := &entity.ClientRecord{
		Name:         "Dana Fuller",
		Email:        "dana@example.com",
		Phone:        "205-555-0142",
		VehicleYear:  "2014",
		VehicleMake:  "Honda",
		VehicleModel: "Civic",
		State:        "Alabama",
		TitleStatus:  "Lien recorded",
		TitleRemedy:  "Complete MVT 5-13",
		Source:       "shift",
		Metadata:     map[string]interface{}{"imported_from": "records.csv"},
	}

	model := m.ClientRecordToModel(in)
	require.NotNil(t, model)
	assert.Equal(t, "2055550142", model.PhoneDigits)
	assert.NotEmpty(t, model.Metadata)

	out := m.ClientRecordToEntity(model)
	require.NotNil(t, out)
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.Email, out.Email)
	assert.Equal(t, in.TitleRemedy, out.TitleRemedy)
	assert.Equal(t, "records.csv", out.Metadata["imported_from"])
}

func TestMappersTolerateNil(t *testing.T) {
	m := NewRecordMapper()
	assert.Nil(t, m.ClientRecordToModel(nil))
	assert.Nil(t, m.ClientRecordToEntity(nil))
}

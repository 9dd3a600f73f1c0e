package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTestimonial_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Testimonial
	}{
		{
			name:  "canonical shape",
			input: `{"name":"Ann","relationship":"sister","message":"hi","photoUrl":"https://x/p.jpg"}`,
			want:  Testimonial{Name: "Ann", Relationship: "sister", Message: "hi", PhotoURL: "https://x/p.jpg"},
		},
		{
			name:  "legacy relationShip and photo",
			input: `{"author":"Bob","relationShip":"friend","message":"bye","photo":"https://x/q.jpg"}`,
			want:  Testimonial{Name: "Bob", Relationship: "friend", Message: "bye", PhotoURL: "https://x/q.jpg"},
		},
		{
			name:  "canonical wins over legacy",
			input: `{"name":"Cee","author":"ignored","relationship":"mother","relationShip":"ignored","message":"m"}`,
			want:  Testimonial{Name: "Cee", Relationship: "mother", Message: "m"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Testimonial
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTestimonial_MarshalCanonicalOnly(t *testing.T) {
	b, err := json.Marshal(Testimonial{Name: "Ann", Relationship: "sister", Message: "hi"})
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(b, &keys))
	require.NotContains(t, keys, "relationShip")
	require.NotContains(t, keys, "photo")
}

func TestPersonUpdate_DescriptionAlias(t *testing.T) {
	var u PersonUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"description":"a life well lived"}`), &u))
	require.NotNil(t, u.About)
	require.Equal(t, "a life well lived", *u.About)

	// canonical about wins when both are present
	var u2 PersonUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"about":"canonical","description":"legacy"}`), &u2))
	require.Equal(t, "canonical", *u2.About)
}

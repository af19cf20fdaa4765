package menu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument_Shape(t *testing.T) {
	cases := []struct {
		name string
		body string
		ok   bool
	}{
		{"valid", `{"days":{"Lunes":{"especial":[{"id":"a","name":"Sancocho","price":375}]}}}`, true},
		{"empty days object", `{"days":{}}`, true},
		{"days is a string", `{"days":"not-an-object"}`, false},
		{"days is an array", `{"days":[]}`, false},
		{"days is null", `{"days":null}`, false},
		{"days missing", `{"menu":{}}`, false},
		{"not json", `days`, false},
		{"wrong item shape", `{"days":{"Lunes":"nope"}}`, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(tc.body))
			if tc.ok {
				require.NoError(t, err)
				require.NotNil(t, doc.Days)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDocument))
		})
	}
}

func TestValidateItems(t *testing.T) {
	t.Run("seeded menu passes", func(t *testing.T) {
		assert.NoError(t, ValidateItems(Seed(nil)))
	})

	t.Run("blank name fails", func(t *testing.T) {
		doc := Seed(nil)
		doc.Days["Martes"]["extras"][1].Name = "   "

		err := ValidateItems(doc)
		require.ErrorIs(t, err, ErrInvalidItem)
		assert.Contains(t, err.Error(), "Martes")
		assert.Contains(t, err.Error(), "EXTRAS")
	})

	t.Run("zero price fails", func(t *testing.T) {
		doc := Seed(nil)
		doc.Days["Lunes"]["jugos"][0].Price = 0

		assert.ErrorIs(t, ValidateItems(doc), ErrInvalidItem)
	})

	t.Run("side choices may be free", func(t *testing.T) {
		doc := Seed(nil)
		doc.Days["Lunes"]["arroz"] = []MenuItem{{ID: "a", Name: "Arroz Blanco"}}

		assert.NoError(t, ValidateItems(doc))
	})
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_EqualName(t *testing.T) {
	p := Product{Name: "  Black Pepper "}
	assert.True(t, p.EqualName("black pepper"))
	assert.True(t, p.EqualName("BLACK PEPPER"))
	assert.False(t, p.EqualName("white pepper"))
}

func TestProduct_Persisted(t *testing.T) {
	assert.False(t, Product{TempID: "tmp-1"}.Persisted())
	assert.True(t, Product{ID: "65a1"}.Persisted())
}

func TestProduct_ServerIDTag(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"65a1","name":"Cloves"}`), &p))
	assert.Equal(t, "65a1", p.ID)
	assert.Equal(t, "Cloves", p.Name)
}

func TestReservation_Validate(t *testing.T) {
	valid := Reservation{
		Name:          "Mr. Perera",
		MobileNo:      "0702031499",
		Location:      "Matara",
		TotalQuantity: "50",
		PaymentMethod: "cash",
	}
	require.NoError(t, valid.Validate())

	missing := valid
	missing.Location = "  "
	assert.ErrorIs(t, missing.Validate(), ErrReservationIncomplete)

	badPhone := valid
	badPhone.MobileNo = "12ab"
	assert.ErrorIs(t, badPhone.Validate(), ErrInvalidMobileNo)
}

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVar(t *testing.T) {
	assert.NoError(t, Var(1, "gte=1,lte=5"))
	assert.NoError(t, Var(5, "gte=1,lte=5"))
	assert.Error(t, Var(0, "gte=1,lte=5"))
	assert.Error(t, Var(6, "gte=1,lte=5"))
}

func TestValidate(t *testing.T) {
	type input struct {
		Name  string  `validate:"required"`
		Price float64 `validate:"gte=0"`
	}

	assert.Nil(t, Validate(input{Name: "Suíte", Price: 10}))
	assert.Equal(t, map[string]string{"Name": "required", "Price": "gte"}, Validate(input{Price: -1}))
}

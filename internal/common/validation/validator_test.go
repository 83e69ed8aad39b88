package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type answerInput struct {
	QuestionID     uint   `validate:"required"`
	SelectedOption string `validate:"required,len=1,alpha"`
}

func TestValidate(t *testing.T) {
	t.Run("valid struct returns nil", func(t *testing.T) {
		assert.Nil(t, Validate(answerInput{QuestionID: 3, SelectedOption: "B"}))
	})

	t.Run("violations name the failing field", func(t *testing.T) {
		errs := Validate(answerInput{QuestionID: 3, SelectedOption: "1"})
		require.Len(t, errs, 1)
		assert.Equal(t, "SelectedOption", errs[0].Field)
		assert.Contains(t, errs[0].Message, "alpha")
	})

	t.Run("pointer structs are accepted", func(t *testing.T) {
		errs := Validate(&answerInput{SelectedOption: "A"})
		require.Len(t, errs, 1)
		assert.Equal(t, "QuestionID", errs[0].Field)
	})
}

func TestValidateIntRange(t *testing.T) {
	assert.NoError(t, ValidateIntRange(25, 13, 120))
	assert.NoError(t, ValidateIntRange(13, 13, 120))
	assert.Error(t, ValidateIntRange(12, 13, 120))
	assert.Error(t, ValidateIntRange(121, 13, 120))
}

func TestValidateFloatRange(t *testing.T) {
	assert.NoError(t, ValidateFloatRange(0, 0, 100))
	assert.NoError(t, ValidateFloatRange(99.9, 0, 100))
	assert.Error(t, ValidateFloatRange(-0.1, 0, 100))
	assert.Error(t, ValidateFloatRange(100.1, 0, 100))
}

package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	testCases := []struct {
		name string
		err  error
		want Kind
	}{
		{"plain error", cause, Internal},
		{"classified", New(Forbidden, ""), Forbidden},
		{"wrapped classified", fmt.Errorf("serve: %w", Wrap(UpstreamFailure, "", cause)), UpstreamFailure},
		{"nil", nil, Internal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestPublicMessage_HidesCause(t *testing.T) {
	cause := errors.New("secret upstream detail")
	err := Wrap(UpstreamFailure, "", cause)

	assert.Equal(t, "Tutor is temporarily unavailable. Please try again.", PublicMessage(err))
	assert.Equal(t, "Internal server error.", PublicMessage(cause))
	assert.Equal(t, "Question is required.", PublicMessage(New(Validation, "Question is required.")))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "secret upstream detail")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "no_answer", NoAnswer.String())
	assert.Equal(t, "internal", Kind(99).String())
}

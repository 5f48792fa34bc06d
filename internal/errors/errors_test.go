package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/fishing-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "player not found",
			expected: "NOT_FOUND: player not found",
		},
		{
			name:     "resource exhausted error",
			code:     errors.CodeResourceExhausted,
			message:  "line is still out",
			expected: "RESOURCE_EXHAUSTED: line is still out",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.ResourceExhausted("cooldown active").
		WithMeta("player_id", "123").
		WithMeta("remaining_seconds", 12)

	s.Assert().Equal("123", err.Meta["player_id"])
	s.Assert().Equal(12, err.Meta["remaining_seconds"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("redis connection failed")
	wrapped := errors.Wrap(baseErr, "failed to load player")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to load player", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())

	// Wrapping an Error keeps its code
	inner := errors.NotFound("player not found")
	rewrapped := errors.Wrap(inner, "catch failed")
	s.Assert().Equal(errors.CodeNotFound, rewrapped.Code)
	s.Assert().True(errors.IsNotFound(rewrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("row malformed")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeInvalidArgument, "bad catalog row")

	s.Assert().Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Assert().True(errors.IsInvalidArgument(wrapped))
}

func (s *ErrorsTestSuite) TestCodeHelpers() {
	s.Assert().True(errors.IsFailedPrecondition(errors.FailedPrecondition("not enough coins")))
	s.Assert().True(errors.IsAlreadyExists(errors.AlreadyExists("island already unlocked")))
	s.Assert().True(errors.IsResourceExhausted(errors.ResourceExhausted("cooldown")))
	s.Assert().False(errors.IsNotFound(nil))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	s.Assert().Equal(http.StatusTooManyRequests, errors.CodeResourceExhausted.HTTPStatus())
	s.Assert().Equal(http.StatusPreconditionFailed, errors.CodeFailedPrecondition.HTTPStatus())
	s.Assert().Equal(http.StatusNotFound, errors.CodeNotFound.HTTPStatus())
	s.Assert().Equal(http.StatusConflict, errors.CodeAlreadyExists.HTTPStatus())
	s.Assert().Equal(http.StatusInternalServerError, errors.Code("BOGUS").HTTPStatus())
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	s.Assert().NoError(vb.Build())

	vb.RequiredField("PlayerRepo").InvalidField("Cooldown", "must be positive")
	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

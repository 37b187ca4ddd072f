package apperrors

import (
	"errors"
	"testing"
)

func TestDomainErrorsWrapGenericClasses(t *testing.T) {
	cases := []struct {
		err    error
		target error
	}{
		{ErrSemesterNotFound, ErrResourceNotFound},
		{ErrCourseNotFound, ErrResourceNotFound},
		{ErrUserEventNotFound, ErrResourceNotFound},
		{ErrCampusNotFound, ErrResourceNotFound},
		{ErrSemesterValidation, ErrValidationFailed},
		{ErrCourseValidation, ErrValidationFailed},
		{ErrUserEventValidation, ErrValidationFailed},
	}
	for _, tc := range cases {
		if !errors.Is(tc.err, tc.target) {
			t.Errorf("%v should match %v", tc.err, tc.target)
		}
	}
}

func TestNewBadRequestError(t *testing.T) {
	err := NewBadRequestError("date query parameter is required")
	if !errors.Is(err, ErrBadRequest) {
		t.Error("expected bad-request classification")
	}
	if err.Error() != "date query parameter is required" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

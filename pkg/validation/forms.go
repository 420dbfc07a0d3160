// Package validation holds the client-side form checks that run before any
// network call. A failed check surfaces a single human-readable message and
// leaves the form untouched; the gateway is never reached.
package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/sreeram/alumnet/pkg/apperrors"
	"github.com/sreeram/alumnet/pkg/models"
)

// Form messages, kept word for word from the screens they came from.
const (
	MsgAllFieldsRequired = "All fields are required."
	MsgFillInAllFields   = "Please fill in all the fields."
	MsgInvalidMobile     = "Invalid mobile number. It should be a 10-digit number."
	MsgInvalidEmail      = "Invalid email address."
	MsgInvalidAge        = "Invalid age. It should be a two-digit number."
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Registration validates the alumni registration form: every field present,
// then mobile number, email and age shapes in that order.
func Registration(form models.RegistrationForm) error {
	if err := validate.Struct(form); err != nil {
		return apperrors.NewValidationError(MsgAllFieldsRequired)
	}
	if !CompiledPatterns.Mobile.MatchString(form.MobileNumber) {
		return apperrors.NewValidationError(MsgInvalidMobile)
	}
	if !CompiledPatterns.Email.MatchString(form.Email) {
		return apperrors.NewValidationError(MsgInvalidEmail)
	}
	if !CompiledPatterns.Age.MatchString(form.Age) {
		return apperrors.NewValidationError(MsgInvalidAge)
	}
	return nil
}

// JobPost validates the post-a-job form.
func JobPost(form models.JobPostForm) error {
	if err := validate.Struct(form); err != nil {
		return apperrors.NewValidationError(MsgFillInAllFields)
	}
	return nil
}

// JobRequest validates the request-a-job form.
func JobRequest(form models.JobRequestForm) error {
	if err := validate.Struct(form); err != nil {
		return apperrors.NewValidationError(MsgFillInAllFields)
	}
	return nil
}

// Donation validates the donation form, including the proof attachment.
func Donation(form models.DonationForm) error {
	if err := validate.Struct(form); err != nil {
		return apperrors.NewValidationError(MsgFillInAllFields)
	}
	return nil
}

// Feedback validates the feedback form.
func Feedback(form models.FeedbackForm) error {
	if err := validate.Struct(form); err != nil {
		return apperrors.NewValidationError(MsgFillInAllFields)
	}
	return nil
}

// Credentials validates a login form.
func Credentials(creds models.Credentials) error {
	if err := validate.Struct(creds); err != nil {
		return apperrors.NewValidationError(MsgAllFieldsRequired)
	}
	return nil
}

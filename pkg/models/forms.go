package models

import (
	"mime"
	"net/http"
	"os"
	"path/filepath"
)

// FileUpload carries a binary attachment for a multipart request.
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// FileFromPath reads a file from disk into a FileUpload. The content type is
// taken from the extension, falling back to sniffing the first bytes.
func FileFromPath(path string) (*FileUpload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return &FileUpload{
		Filename:    filepath.Base(path),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// Credentials represents a login request body for both admin and alumni.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegistrationForm represents the alumni registration payload. Values stay
// strings end to end, exactly as the registration form collects them.
type RegistrationForm struct {
	Name              string `json:"name" validate:"required"`
	Age               string `json:"age" validate:"required"`
	Gender            string `json:"gender" validate:"required"`
	MobileNumber      string `json:"mobileNumber" validate:"required"`
	Address           string `json:"address" validate:"required"`
	CurrentEmployment string `json:"currentEmployment" validate:"required"`
	GraduationYear    string `json:"graduationYear" validate:"required"`
	Department        string `json:"department" validate:"required"`
	Username          string `json:"username" validate:"required"`
	Email             string `json:"email" validate:"required"`
	Password          string `json:"password" validate:"required"`
}

// JobPostForm represents the multipart payload for posting a job.
type JobPostForm struct {
	CompanyName    string `validate:"required"`
	JobDescription string `validate:"required"`
	ContactDetails string `validate:"required"`
	ReferralID     string `validate:"required"`
	Location       string `validate:"required"`
	JobType        string `validate:"required"`
	AlumniID       string
}

// Fields returns the form fields that are present. Empty fields are left out
// of the request entirely rather than sent as blanks.
func (f JobPostForm) Fields() map[string]string {
	return presentFields(map[string]string{
		"companyName":    f.CompanyName,
		"jobDescription": f.JobDescription,
		"contactDetails": f.ContactDetails,
		"referralId":     f.ReferralID,
		"location":       f.Location,
		"jobType":        f.JobType,
		"alumniId":       f.AlumniID,
	})
}

// JobRequestForm represents the multipart payload for requesting a job.
type JobRequestForm struct {
	Name           string `validate:"required"`
	Qualifications string `validate:"required"`
	CompletedYear  string `validate:"required"`
	ContactDetails string `validate:"required"`
	AlumniID       string
}

// Fields returns the form fields that are present.
func (f JobRequestForm) Fields() map[string]string {
	return presentFields(map[string]string{
		"name":           f.Name,
		"qualifications": f.Qualifications,
		"completedYear":  f.CompletedYear,
		"contactDetails": f.ContactDetails,
		"alumniId":       f.AlumniID,
	})
}

// EventForm represents the multipart payload for creating or updating an
// event. Image may be nil on update, in which case no image part is sent and
// the backend keeps the existing one.
type EventForm struct {
	Name        string `validate:"required"`
	Description string `validate:"required"`
	Date        string `validate:"required"`
	Image       *FileUpload
}

// Fields returns the text form fields that are present.
func (f EventForm) Fields() map[string]string {
	return presentFields(map[string]string{
		"name":        f.Name,
		"description": f.Description,
		"date":        f.Date,
	})
}

// Files returns the file parts that are present.
func (f EventForm) Files() map[string]*FileUpload {
	files := map[string]*FileUpload{}
	if f.Image != nil {
		files["image"] = f.Image
	}
	return files
}

// GalleryForm represents the multipart payload for adding a gallery image.
type GalleryForm struct {
	Image *FileUpload `validate:"required"`
}

// Files returns the file parts that are present.
func (f GalleryForm) Files() map[string]*FileUpload {
	files := map[string]*FileUpload{}
	if f.Image != nil {
		files["image"] = f.Image
	}
	return files
}

// DonationForm represents the multipart payload for submitting a donation.
type DonationForm struct {
	Amount    string      `validate:"required"`
	PaymentID string      `validate:"required"`
	Reason    string      `validate:"required"`
	Proof     *FileUpload `validate:"required"`
	AlumniID  string
}

// Fields returns the text form fields that are present.
func (f DonationForm) Fields() map[string]string {
	return presentFields(map[string]string{
		"amount":    f.Amount,
		"paymentId": f.PaymentID,
		"reason":    f.Reason,
		"alumniId":  f.AlumniID,
	})
}

// Files returns the file parts that are present.
func (f DonationForm) Files() map[string]*FileUpload {
	files := map[string]*FileUpload{}
	if f.Proof != nil {
		files["proof"] = f.Proof
	}
	return files
}

// FeedbackForm represents the JSON payload for submitting feedback.
type FeedbackForm struct {
	Message  string `json:"message" validate:"required"`
	AlumniID int64  `json:"alumniId"`
}

// AlumniLoginResult is the full login envelope. Callers need the status code
// alongside the decoded record to drive the post-login flow.
type AlumniLoginResult struct {
	StatusCode int
	Alumni     Alumni
}

// AdminLoginResult carries the admin login response. The backend answers the
// admin login with a plain text body rather than a record.
type AdminLoginResult struct {
	StatusCode int
	Message    string
}

// presentFields drops empty values so absent keys never reach the wire.
func presentFields(all map[string]string) map[string]string {
	fields := make(map[string]string, len(all))
	for k, v := range all {
		if v != "" {
			fields[k] = v
		}
	}
	return fields
}

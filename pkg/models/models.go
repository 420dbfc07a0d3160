package models

// Status represents the moderation state of an alumni, job post or job request.
// Transitions are owned by the backend; the client only requests them.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

// Alumni represents a registered graduate account as returned by the backend.
type Alumni struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Age               int    `json:"age"`
	Gender            string `json:"gender"`
	MobileNumber      string `json:"mobileNumber"`
	Address           string `json:"address"`
	CurrentEmployment string `json:"currentEmployment"`
	GraduationYear    int    `json:"graduationYear"`
	Department        string `json:"department"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	Password          string `json:"password,omitempty"`
	Status            Status `json:"status"`
}

// JobPost represents a job opening shared by an alumni.
type JobPost struct {
	ID             int64  `json:"id"`
	CompanyName    string `json:"companyName"`
	JobDescription string `json:"jobDescription"`
	ContactDetails string `json:"contactDetails"`
	ReferralID     string `json:"referralId"`
	Location       string `json:"location"`
	JobType        string `json:"jobType"`
	Status         Status `json:"status"`
	AlumniID       int64  `json:"alumniId"`
}

// JobRequest represents an alumni asking the network for a position.
type JobRequest struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Qualifications string `json:"qualifications"`
	CompletedYear  string `json:"completedYear"`
	ContactDetails string `json:"contactDetails"`
	Status         Status `json:"status"`
	AlumniID       int64  `json:"alumniId"`
}

// Event represents a college event published by the admin.
// ImageData is base64 on the wire; encoding/json handles the transport.
type Event struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	ImageData   []byte `json:"imageData,omitempty"`
}

// GalleryImage represents one image of the college gallery.
type GalleryImage struct {
	ID        int64  `json:"id"`
	ImageName string `json:"imageName"`
	ImageData []byte `json:"imageData"`
}

// Donation represents a contribution made by an alumni, as listed for the
// admin. Proof is the payment screenshot, base64 on the wire.
type Donation struct {
	ID        int64   `json:"id"`
	Alumni    *Alumni `json:"alumni"`
	Amount    string  `json:"amount"`
	PaymentID string  `json:"paymentId"`
	Reason    string  `json:"reason"`
	Proof     []byte  `json:"proof,omitempty"`
}

// Feedback represents a message left by an alumni for the management.
type Feedback struct {
	ID      int64   `json:"id"`
	Alumni  *Alumni `json:"alumni"`
	Message string  `json:"message"`
}

package alumnet_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sreeram/alumnet"
	"github.com/sreeram/alumnet/pkg/apperrors"
	"github.com/sreeram/alumnet/pkg/gateway"
	"github.com/sreeram/alumnet/pkg/models"
	"github.com/sreeram/alumnet/pkg/session"
	"github.com/sreeram/alumnet/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// backend is a fake alumni-tracking backend that counts hits per route.
type backend struct {
	mu   sync.Mutex
	hits map[string]int

	srv          *httptest.Server
	lastFeedback models.FeedbackForm
}

func (b *backend) count(route string) {
	b.mu.Lock()
	b.hits[route]++
	b.mu.Unlock()
}

func (b *backend) hitCount(route string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[route]
}

func newFakeBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{hits: map[string]int{}}

	r := gin.New()
	r.POST("/alumni/register", func(c *gin.Context) {
		b.count("register")
		c.String(http.StatusOK, "Registration successful")
	})
	r.POST("/alumni/login", func(c *gin.Context) {
		b.count("login")
		var creds models.Credentials
		if err := c.ShouldBindJSON(&creds); err != nil {
			c.String(http.StatusBadRequest, "bad request")
			return
		}
		switch creds.Username {
		case "jdoe":
			c.JSON(http.StatusOK, models.Alumni{ID: 3, Name: "Jane Doe", Username: "jdoe", Status: models.StatusApproved})
		case "jroe":
			c.JSON(http.StatusOK, models.Alumni{ID: 9, Name: "John Roe", Username: "jroe", Status: models.StatusApproved})
		case "pending":
			c.String(http.StatusForbidden, "Account is pending approval")
		default:
			c.String(http.StatusUnauthorized, "Invalid credentials")
		}
	})
	r.POST("/alumni/postjob", func(c *gin.Context) {
		b.count("postjob")
		c.String(http.StatusOK, "job posted")
	})
	r.POST("/alumni/feedback", func(c *gin.Context) {
		b.count("feedback")
		require.NoError(t, c.ShouldBindJSON(&b.lastFeedback))
		c.String(http.StatusOK, "feedback received")
	})
	r.GET("/alumni/jobrequests", func(c *gin.Context) {
		b.count("jobrequests:" + c.Query("alumniId"))
		c.JSON(http.StatusOK, []models.JobRequest{{ID: 11, AlumniID: 3, Status: models.StatusPending}})
	})
	r.GET("/admin/alumni/pending", func(c *gin.Context) {
		b.count("pendingAlumni")
		c.JSON(http.StatusOK, []models.Alumni{{ID: 5, Name: "Pending Person", Status: models.StatusPending}})
	})
	r.GET("/admin/alumni/approve/:id", func(c *gin.Context) {
		b.count("approveAlumni")
		c.String(http.StatusOK, "approved")
	})

	b.srv = httptest.NewServer(r)
	t.Cleanup(b.srv.Close)
	return b
}

func newClient(t *testing.T, b *backend) *alumnet.Client {
	t.Helper()
	gw := gateway.New(b.srv.URL)
	return alumnet.NewWithGateway(gw, session.NewMemoryStore(), zerolog.Nop())
}

func login(t *testing.T, client *alumnet.Client, username string) {
	t.Helper()
	_, err := client.Login(context.Background(), username, "secret")
	require.NoError(t, err)
}

// Submitting a registration with a one-digit age fails locally; the backend
// never sees a request.
func TestRegisterInvalidAgeSkipsNetwork(t *testing.T) {
	b := newFakeBackend(t)
	client := newClient(t, b)

	form := models.RegistrationForm{
		Name: "Jane Doe", Age: "5", Gender: "female", MobileNumber: "9876543210",
		Address: "12 College Road", CurrentEmployment: "Engineer", GraduationYear: "2018",
		Department: "CSE", Username: "janedoe", Email: "jane@example.com", Password: "secret123",
	}

	_, err := client.Register(context.Background(), form)
	require.Error(t, err)
	assert.Equal(t, validation.MsgInvalidAge, apperrors.UserMessage(err))
	assert.Equal(t, 0, b.hitCount("register"))
}

func TestRegisterValid(t *testing.T) {
	b := newFakeBackend(t)
	client := newClient(t, b)

	form := models.RegistrationForm{
		Name: "Jane Doe", Age: "28", Gender: "female", MobileNumber: "9876543210",
		Address: "12 College Road", CurrentEmployment: "Engineer", GraduationYear: "2018",
		Department: "CSE", Username: "janedoe", Email: "jane@example.com", Password: "secret123",
	}

	msg, err := client.Register(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "Registration successful", msg)
	assert.Equal(t, 1, b.hitCount("register"))
}

// A job post missing its job type fails locally with the fill-in-all-fields
// message; no POST reaches /alumni/postjob.
func TestPostJobMissingFieldSkipsNetwork(t *testing.T) {
	b := newFakeBackend(t)
	client := newClient(t, b)
	login(t, client, "jdoe")

	form := models.JobPostForm{
		CompanyName: "Acme Corp", JobDescription: "Backend engineer",
		ContactDetails: "hr@acme.example", ReferralID: "REF-17", Location: "Chennai",
	}

	_, err := client.PostJob(context.Background(), form)
	require.Error(t, err)
	assert.Equal(t, validation.MsgFillInAllFields, apperrors.UserMessage(err))
	assert.Equal(t, 0, b.hitCount("postjob"))
}

func TestPostJobRequiresSession(t *testing.T) {
	b := newFakeBackend(t)
	client := newClient(t, b)

	_, err := client.PostJob(context.Background(), models.JobPostForm{})
	assert.True(t, errors.Is(err, apperrors.ErrNoSession))
	assert.Equal(t, 0, b.hitCount("postjob"))
}

func TestLoginPersistsSession(t *testing.T) {
	b := newFakeBackend(t)
	client := newClient(t, b)

	alumni, err := client.Login(context.Background(), "jdoe", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(3), alumni.ID)

	stored, err := client.Session()
	require.NoError(t, err)
	assert.Equal(t, "jdoe", stored.Username)
}

func TestLoginOverwritesPreviousIdentity(t *testing.T) {
	b := newFakeBackend(t)
	client := newClient(t, b)

	login(t, client, "jdoe")
	login(t, client, "jroe")

	stored, err := client.Session()
	require.NoError(t, err)
	assert.Equal(t, int64(9), stored.ID)
	assert.Equal(t, "jroe", stored.Username)
}

func TestFailedLoginLeavesNoSession(t *testing.T) {
	b := newFakeBackend(t)
	client := newClient(t, b)

	_, err := client.Login(context.Background(), "stranger", "secret")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials.", apperrors.UserMessage(err))

	_, err = client.Session()
	assert.True(t, errors.Is(err, apperrors.ErrNoSession))
}

func TestPendingLoginMessage(t *testing.T) {
	b := newFakeBackend(t)
	client := newClient(t, b)

	_, err := client.Login(context.Background(), "pending", "secret")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrAccountPending))
	assert.Equal(t, "Please wait, your account is under verification. Check your email.", apperrors.UserMessage(err))
}

func TestLogoutClearsSession(t *testing.T) {
	b := newFakeBackend(t)
	client := newClient(t, b)
	login(t, client, "jdoe")

	client.Logout()

	_, err := client.Session()
	assert.True(t, errors.Is(err, apperrors.ErrNoSession))
}

// Reads are served from the cache until a mutation invalidates the list.
func TestApproveInvalidatesPendingList(t *testing.T) {
	b := newFakeBackend(t)
	client := newClient(t, b)
	ctx := context.Background()

	_, err := client.PendingAlumni(ctx)
	require.NoError(t, err)
	_, err = client.PendingAlumni(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, b.hitCount("pendingAlumni"), "second read should hit the cache")

	_, err = client.ApproveAlumni(ctx, 5)
	require.NoError(t, err)

	_, err = client.PendingAlumni(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, b.hitCount("pendingAlumni"), "approve should invalidate the pending list")
}

func TestMyJobRequestsUsesLiveSessionID(t *testing.T) {
	b := newFakeBackend(t)
	client := newClient(t, b)

	// Without a session the read fails instead of querying with an empty id
	_, err := client.MyJobRequests(context.Background())
	assert.True(t, errors.Is(err, apperrors.ErrNoSession))
	assert.Equal(t, 0, b.hitCount("jobrequests:"))

	login(t, client, "jdoe")
	requests, err := client.MyJobRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, 1, b.hitCount("jobrequests:3"))
}

func TestSendFeedbackStampsAlumniID(t *testing.T) {
	b := newFakeBackend(t)
	client := newClient(t, b)
	login(t, client, "jdoe")

	_, err := client.SendFeedback(context.Background(), "great portal")
	require.NoError(t, err)
	assert.Equal(t, 1, b.hitCount("feedback"))
	assert.Equal(t, "great portal", b.lastFeedback.Message)
	assert.Equal(t, int64(3), b.lastFeedback.AlumniID)
}

func TestSendFeedbackEmptyMessage(t *testing.T) {
	b := newFakeBackend(t)
	client := newClient(t, b)
	login(t, client, "jdoe")

	_, err := client.SendFeedback(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, 0, b.hitCount("feedback"))
}

func TestDonateMissingProofSkipsNetwork(t *testing.T) {
	b := newFakeBackend(t)
	client := newClient(t, b)
	login(t, client, "jdoe")

	_, err := client.Donate(context.Background(), models.DonationForm{
		Amount: "5000", PaymentID: "PAY-881", Reason: "Library fund",
	})
	require.Error(t, err)
	assert.Equal(t, validation.MsgFillInAllFields, apperrors.UserMessage(err))
}

// Package alumnet is a client for the alumni-tracking backend. It bundles
// the API gateway, the form validation rules, the session identity store and
// the list cache into one Client, so a host UI only decides what to render.
//
// Quick start:
//
//	client, err := alumnet.New("alumnet.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	alumni, err := client.Login(ctx, "jdoe", "secret")
//	if err != nil {
//	    fmt.Println(apperrors.UserMessage(err))
//	    return
//	}
//
//	posts, err := client.JobPosts(ctx)
//
// Every mutation invalidates the list snapshots it affects; the next read
// fetches fresh data. Validation failures never reach the network.
package alumnet

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/sreeram/alumnet/internal/config"
	"github.com/sreeram/alumnet/internal/pkg/logger"
	"github.com/sreeram/alumnet/pkg/gateway"
	"github.com/sreeram/alumnet/pkg/listcache"
	"github.com/sreeram/alumnet/pkg/models"
	"github.com/sreeram/alumnet/pkg/session"
	"github.com/sreeram/alumnet/pkg/validation"
)

// List cache keys, one per backend list.
const (
	keyPendingAlumni      = "admin/alumni/pending"
	keyPendingJobPosts    = "admin/jobPost/pending"
	keyPendingJobRequests = "admin/jobRequest/pending"
	keyFeedbacks          = "admin/feedback/list"
	keyDonations          = "admin/donation/list"
	keyAdminGalleries     = "admin/galleries"
	keyAlumniDirectory    = "alumni/list"
	keyEvents             = "alumni/events"
	keyGalleries          = "alumni/galleries"
	keyJobPosts           = "alumni/jobposts"
	keyMyJobRequests      = "alumni/jobrequests"
)

// Client is the high-level entry point for screens.
type Client struct {
	gateway *gateway.Client
	session session.Store
	lists   *listcache.Cache
	logger  zerolog.Logger
}

// New builds a Client from the given YAML config file. The path may be empty,
// in which case defaults and environment variables apply.
func New(configPath string) (*Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Pretty,
	})

	gw := gateway.New(cfg.API.BaseURL,
		gateway.WithLogger(log),
		gateway.WithTimeout(cfg.API.Timeout),
	)

	return NewWithGateway(gw, session.NewMemoryStore(), log), nil
}

// NewWithGateway wires a Client from existing collaborators. Hosts that
// manage their own configuration or session persistence use this directly.
func NewWithGateway(gw *gateway.Client, store session.Store, log zerolog.Logger) *Client {
	return &Client{
		gateway: gw,
		session: store,
		lists:   listcache.New(),
		logger:  log,
	}
}

// Gateway exposes the underlying API gateway for calls the high-level
// client does not orchestrate.
func (c *Client) Gateway() *gateway.Client {
	return c.gateway
}

// Session returns the logged-in alumni, or apperrors.ErrNoSession.
func (c *Client) Session() (*models.Alumni, error) {
	return c.session.Get()
}

// Register validates the registration form and submits it. A validation
// failure surfaces its message and never reaches the network.
func (c *Client) Register(ctx context.Context, form models.RegistrationForm) (string, error) {
	if err := validation.Registration(form); err != nil {
		return "", err
	}

	msg, err := c.gateway.RegisterAlumni(ctx, form)
	if err != nil {
		return "", err
	}
	c.lists.Invalidate(keyPendingAlumni)
	return msg, nil
}

// Login authenticates an alumni and, on success, persists the returned
// identity record. A new login overwrites any previous identity.
func (c *Client) Login(ctx context.Context, username, password string) (*models.Alumni, error) {
	creds := models.Credentials{Username: username, Password: password}
	if err := validation.Credentials(creds); err != nil {
		return nil, err
	}

	result, err := c.gateway.LoginAlumni(ctx, creds)
	if err != nil {
		return nil, err
	}

	if err := c.session.Set(&result.Alumni); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	c.logger.Info().Str("username", username).Msg("alumni logged in")
	return &result.Alumni, nil
}

// Logout removes the stored identity. Subsequent session reads report no
// session.
func (c *Client) Logout() {
	c.session.Clear()
	c.logger.Info().Msg("alumni logged out")
}

// AdminLogin authenticates the admin and returns the response envelope.
func (c *Client) AdminLogin(ctx context.Context, username, password string) (*models.AdminLoginResult, error) {
	creds := models.Credentials{Username: username, Password: password}
	if err := validation.Credentials(creds); err != nil {
		return nil, err
	}
	return c.gateway.AdminLogin(ctx, creds)
}

// PostJob stamps the session identity onto the form, validates it and
// submits it for admin approval.
func (c *Client) PostJob(ctx context.Context, form models.JobPostForm) (string, error) {
	alumni, err := c.session.Get()
	if err != nil {
		return "", err
	}
	form.AlumniID = strconv.FormatInt(alumni.ID, 10)

	if err := validation.JobPost(form); err != nil {
		return "", err
	}

	msg, err := c.gateway.PostJob(ctx, form)
	if err != nil {
		return "", err
	}
	c.lists.Invalidate(keyJobPosts)
	c.lists.Invalidate(keyPendingJobPosts)
	return msg, nil
}

// RequestJob stamps the session identity onto the form, validates it and
// submits it for admin approval.
func (c *Client) RequestJob(ctx context.Context, form models.JobRequestForm) (string, error) {
	alumni, err := c.session.Get()
	if err != nil {
		return "", err
	}
	form.AlumniID = strconv.FormatInt(alumni.ID, 10)

	if err := validation.JobRequest(form); err != nil {
		return "", err
	}

	msg, err := c.gateway.RequestJob(ctx, form)
	if err != nil {
		return "", err
	}
	c.lists.Invalidate(myJobRequestsKey(alumni.ID))
	c.lists.Invalidate(keyPendingJobRequests)
	return msg, nil
}

// Donate stamps the session identity onto the form, validates it and submits
// the donation with its payment proof.
func (c *Client) Donate(ctx context.Context, form models.DonationForm) (string, error) {
	alumni, err := c.session.Get()
	if err != nil {
		return "", err
	}
	form.AlumniID = strconv.FormatInt(alumni.ID, 10)

	if err := validation.Donation(form); err != nil {
		return "", err
	}

	msg, err := c.gateway.SubmitDonation(ctx, form)
	if err != nil {
		return "", err
	}
	c.lists.Invalidate(keyDonations)
	return msg, nil
}

// SendFeedback submits a feedback message on behalf of the logged-in alumni.
func (c *Client) SendFeedback(ctx context.Context, message string) (string, error) {
	alumni, err := c.session.Get()
	if err != nil {
		return "", err
	}

	form := models.FeedbackForm{Message: message, AlumniID: alumni.ID}
	if err := validation.Feedback(form); err != nil {
		return "", err
	}

	msg, err := c.gateway.SubmitFeedback(ctx, form)
	if err != nil {
		return "", err
	}
	c.lists.Invalidate(keyFeedbacks)
	return msg, nil
}

// ApproveAlumni approves a pending alumni and invalidates the affected lists.
func (c *Client) ApproveAlumni(ctx context.Context, id int64) (string, error) {
	msg, err := c.gateway.ApproveAlumni(ctx, id)
	if err != nil {
		return "", err
	}
	c.lists.Invalidate(keyPendingAlumni)
	c.lists.Invalidate(keyAlumniDirectory)
	return msg, nil
}

// DenyAlumni denies a pending alumni with an optional reason.
func (c *Client) DenyAlumni(ctx context.Context, id int64, reason string) (string, error) {
	msg, err := c.gateway.DenyAlumni(ctx, id, reason)
	if err != nil {
		return "", err
	}
	c.lists.Invalidate(keyPendingAlumni)
	return msg, nil
}

// ApproveJobPost approves a pending job post.
func (c *Client) ApproveJobPost(ctx context.Context, id int64) (string, error) {
	msg, err := c.gateway.ApproveJobPost(ctx, id)
	if err != nil {
		return "", err
	}
	c.lists.Invalidate(keyPendingJobPosts)
	c.lists.Invalidate(keyJobPosts)
	return msg, nil
}

// DenyJobPost denies a pending job post with an optional reason.
func (c *Client) DenyJobPost(ctx context.Context, id int64, reason string) (string, error) {
	msg, err := c.gateway.DenyJobPost(ctx, id, reason)
	if err != nil {
		return "", err
	}
	c.lists.Invalidate(keyPendingJobPosts)
	return msg, nil
}

// ApproveJobRequest approves a pending job request.
func (c *Client) ApproveJobRequest(ctx context.Context, id int64) (string, error) {
	msg, err := c.gateway.ApproveJobRequest(ctx, id)
	if err != nil {
		return "", err
	}
	c.lists.Invalidate(keyPendingJobRequests)
	return msg, nil
}

// DenyJobRequest denies a pending job request with an optional reason.
func (c *Client) DenyJobRequest(ctx context.Context, id int64, reason string) (string, error) {
	msg, err := c.gateway.DenyJobRequest(ctx, id, reason)
	if err != nil {
		return "", err
	}
	c.lists.Invalidate(keyPendingJobRequests)
	return msg, nil
}

// AddEvent publishes a new event.
func (c *Client) AddEvent(ctx context.Context, form models.EventForm) (string, error) {
	msg, err := c.gateway.AddEvent(ctx, form)
	if err != nil {
		return "", err
	}
	c.lists.Invalidate(keyEvents)
	return msg, nil
}

// UpdateEvent updates an event in place.
func (c *Client) UpdateEvent(ctx context.Context, id int64, form models.EventForm) (string, error) {
	msg, err := c.gateway.UpdateEvent(ctx, id, form)
	if err != nil {
		return "", err
	}
	c.lists.Invalidate(keyEvents)
	return msg, nil
}

// DeleteEvent removes an event.
func (c *Client) DeleteEvent(ctx context.Context, id int64) (string, error) {
	msg, err := c.gateway.DeleteEvent(ctx, id)
	if err != nil {
		return "", err
	}
	c.lists.Invalidate(keyEvents)
	return msg, nil
}

// AddGalleryImage adds an image to the gallery.
func (c *Client) AddGalleryImage(ctx context.Context, form models.GalleryForm) (string, error) {
	msg, err := c.gateway.AddGalleryImage(ctx, form)
	if err != nil {
		return "", err
	}
	c.lists.Invalidate(keyGalleries)
	c.lists.Invalidate(keyAdminGalleries)
	return msg, nil
}

// DeleteGalleryImage removes an image from the gallery.
func (c *Client) DeleteGalleryImage(ctx context.Context, id int64) (string, error) {
	msg, err := c.gateway.DeleteGalleryImage(ctx, id)
	if err != nil {
		return "", err
	}
	c.lists.Invalidate(keyGalleries)
	c.lists.Invalidate(keyAdminGalleries)
	return msg, nil
}

// PendingAlumni returns the cached moderation queue for alumni.
func (c *Client) PendingAlumni(ctx context.Context) ([]models.Alumni, error) {
	return listcache.GetOrFetch(ctx, c.lists, keyPendingAlumni, c.gateway.ListPendingAlumni)
}

// PendingJobPosts returns the cached moderation queue for job posts.
func (c *Client) PendingJobPosts(ctx context.Context) ([]models.JobPost, error) {
	return listcache.GetOrFetch(ctx, c.lists, keyPendingJobPosts, c.gateway.ListPendingJobPosts)
}

// PendingJobRequests returns the cached moderation queue for job requests.
func (c *Client) PendingJobRequests(ctx context.Context) ([]models.JobRequest, error) {
	return listcache.GetOrFetch(ctx, c.lists, keyPendingJobRequests, c.gateway.ListPendingJobRequests)
}

// AlumniDirectory returns the cached approved-alumni directory.
func (c *Client) AlumniDirectory(ctx context.Context) ([]models.Alumni, error) {
	return listcache.GetOrFetch(ctx, c.lists, keyAlumniDirectory, c.gateway.ListAlumni)
}

// Events returns the cached event list.
func (c *Client) Events(ctx context.Context) ([]models.Event, error) {
	return listcache.GetOrFetch(ctx, c.lists, keyEvents, c.gateway.ListEvents)
}

// Galleries returns the cached gallery as alumni see it.
func (c *Client) Galleries(ctx context.Context) ([]models.GalleryImage, error) {
	return listcache.GetOrFetch(ctx, c.lists, keyGalleries, c.gateway.ListAlumniGalleries)
}

// AdminGalleries returns the cached gallery as the admin sees it.
func (c *Client) AdminGalleries(ctx context.Context) ([]models.GalleryImage, error) {
	return listcache.GetOrFetch(ctx, c.lists, keyAdminGalleries, c.gateway.ListGalleries)
}

// JobPosts returns the cached approved job posts.
func (c *Client) JobPosts(ctx context.Context) ([]models.JobPost, error) {
	return listcache.GetOrFetch(ctx, c.lists, keyJobPosts, c.gateway.ListJobPosts)
}

// Feedbacks returns the cached feedback list.
func (c *Client) Feedbacks(ctx context.Context) ([]models.Feedback, error) {
	return listcache.GetOrFetch(ctx, c.lists, keyFeedbacks, c.gateway.ListFeedbacks)
}

// Donations returns the cached donation list.
func (c *Client) Donations(ctx context.Context) ([]models.Donation, error) {
	return listcache.GetOrFetch(ctx, c.lists, keyDonations, c.gateway.ListDonations)
}

// MyJobRequests returns the logged-in alumni's job requests. The session id
// is read at call time, so a caller that logs in and then fetches always
// queries with the live identity.
func (c *Client) MyJobRequests(ctx context.Context) ([]models.JobRequest, error) {
	alumni, err := c.session.Get()
	if err != nil {
		return nil, err
	}
	return listcache.GetOrFetch(ctx, c.lists, myJobRequestsKey(alumni.ID), func(ctx context.Context) ([]models.JobRequest, error) {
		return c.gateway.ListJobRequestsByAlumni(ctx, alumni.ID)
	})
}

func myJobRequestsKey(alumniID int64) string {
	return fmt.Sprintf("%s/%d", keyMyJobRequests, alumniID)
}

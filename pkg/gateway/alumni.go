package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sreeram/alumnet/pkg/models"
)

// RegisterAlumni submits a registration. The account starts in the pending
// state until an admin approves it. The backend replies with a plain
// confirmation message.
func (c *Client) RegisterAlumni(ctx context.Context, form models.RegistrationForm) (string, error) {
	data, _, err := c.postJSON(ctx, "/alumni/register", form)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// ListAlumni returns the approved alumni directory.
func (c *Client) ListAlumni(ctx context.Context) ([]models.Alumni, error) {
	var alumni []models.Alumni
	if err := c.getJSON(ctx, "/alumni/list", nil, &alumni); err != nil {
		return nil, err
	}
	return alumni, nil
}

// LoginAlumni authenticates an alumni. The full envelope is returned because
// the login flow needs the status code alongside the identity record.
func (c *Client) LoginAlumni(ctx context.Context, creds models.Credentials) (*models.AlumniLoginResult, error) {
	data, status, err := c.postJSON(ctx, "/alumni/login", creds)
	if err != nil {
		return nil, err
	}

	result := &models.AlumniLoginResult{StatusCode: status}
	if err := json.Unmarshal(data, &result.Alumni); err != nil {
		c.logger.Error().Err(err).Str("path", "/alumni/login").Msg("failed to decode response")
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	return result, nil
}

// PostJob submits a job post for admin approval.
func (c *Client) PostJob(ctx context.Context, form models.JobPostForm) (string, error) {
	return c.doMultipart(ctx, http.MethodPost, "/alumni/postjob", form.Fields(), nil)
}

// RequestJob submits a job request for admin approval.
func (c *Client) RequestJob(ctx context.Context, form models.JobRequestForm) (string, error) {
	return c.doMultipart(ctx, http.MethodPost, "/alumni/requestjob", form.Fields(), nil)
}

// ListEvents returns the published events.
func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := c.getJSON(ctx, "/alumni/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// ListAlumniGalleries returns the gallery as seen by alumni.
func (c *Client) ListAlumniGalleries(ctx context.Context) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	if err := c.getJSON(ctx, "/alumni/galleries", nil, &images); err != nil {
		return nil, err
	}
	return images, nil
}

// SubmitFeedback sends a feedback message to the management.
func (c *Client) SubmitFeedback(ctx context.Context, form models.FeedbackForm) (string, error) {
	data, _, err := c.postJSON(ctx, "/alumni/feedback", form)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// ListJobRequestsByAlumni returns the job requests submitted by one alumni.
func (c *Client) ListJobRequestsByAlumni(ctx context.Context, alumniID int64) ([]models.JobRequest, error) {
	query := url.Values{"alumniId": {fmt.Sprintf("%d", alumniID)}}
	var requests []models.JobRequest
	if err := c.getJSON(ctx, "/alumni/jobrequests", query, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// ListJobPosts returns the approved job posts visible to alumni.
func (c *Client) ListJobPosts(ctx context.Context) ([]models.JobPost, error) {
	var posts []models.JobPost
	if err := c.getJSON(ctx, "/alumni/jobposts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// SubmitDonation sends a donation with its payment proof attached.
func (c *Client) SubmitDonation(ctx context.Context, form models.DonationForm) (string, error) {
	return c.doMultipart(ctx, http.MethodPost, "/alumni/donate", form.Fields(), form.Files())
}

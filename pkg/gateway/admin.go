package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sreeram/alumnet/pkg/models"
)

// AdminLogin authenticates the admin. The backend answers with a plain text
// body, so the full envelope is returned for the caller to inspect.
func (c *Client) AdminLogin(ctx context.Context, creds models.Credentials) (*models.AdminLoginResult, error) {
	data, status, err := c.postJSON(ctx, "/admin/login", creds)
	if err != nil {
		return nil, err
	}
	return &models.AdminLoginResult{
		StatusCode: status,
		Message:    string(data),
	}, nil
}

// ListPendingAlumni returns the alumni awaiting moderation.
func (c *Client) ListPendingAlumni(ctx context.Context) ([]models.Alumni, error) {
	var alumni []models.Alumni
	if err := c.getJSON(ctx, "/admin/alumni/pending", nil, &alumni); err != nil {
		return nil, err
	}
	return alumni, nil
}

// ListPendingJobPosts returns the job posts awaiting moderation.
func (c *Client) ListPendingJobPosts(ctx context.Context) ([]models.JobPost, error) {
	var posts []models.JobPost
	if err := c.getJSON(ctx, "/admin/jobPost/pending", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ListPendingJobRequests returns the job requests awaiting moderation.
func (c *Client) ListPendingJobRequests(ctx context.Context) ([]models.JobRequest, error) {
	var requests []models.JobRequest
	if err := c.getJSON(ctx, "/admin/jobRequest/pending", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// ApproveAlumni asks the backend to approve a pending alumni.
func (c *Client) ApproveAlumni(ctx context.Context, id int64) (string, error) {
	return c.text(ctx, http.MethodGet, fmt.Sprintf("/admin/alumni/approve/%d", id), nil)
}

// DenyAlumni asks the backend to deny a pending alumni. The reason rides
// along as a query parameter when provided.
func (c *Client) DenyAlumni(ctx context.Context, id int64, reason string) (string, error) {
	return c.text(ctx, http.MethodGet, fmt.Sprintf("/admin/alumni/deny/%d", id), denyQuery(reason))
}

// ApproveJobPost asks the backend to approve a pending job post.
func (c *Client) ApproveJobPost(ctx context.Context, id int64) (string, error) {
	return c.text(ctx, http.MethodGet, fmt.Sprintf("/admin/jobPost/approve/%d", id), nil)
}

// DenyJobPost asks the backend to deny a pending job post.
func (c *Client) DenyJobPost(ctx context.Context, id int64, reason string) (string, error) {
	return c.text(ctx, http.MethodGet, fmt.Sprintf("/admin/jobPost/deny/%d", id), denyQuery(reason))
}

// ApproveJobRequest asks the backend to approve a pending job request.
func (c *Client) ApproveJobRequest(ctx context.Context, id int64) (string, error) {
	return c.text(ctx, http.MethodGet, fmt.Sprintf("/admin/jobRequest/approve/%d", id), nil)
}

// DenyJobRequest asks the backend to deny a pending job request.
func (c *Client) DenyJobRequest(ctx context.Context, id int64, reason string) (string, error) {
	return c.text(ctx, http.MethodGet, fmt.Sprintf("/admin/jobRequest/deny/%d", id), denyQuery(reason))
}

// AddEvent publishes a new event. The image file rides in the multipart
// body under the image field.
func (c *Client) AddEvent(ctx context.Context, form models.EventForm) (string, error) {
	return c.doMultipart(ctx, http.MethodPost, "/admin/event/add", form.Fields(), form.Files())
}

// UpdateEvent updates an existing event. When the form carries no image the
// image part is omitted and the backend keeps the current one.
func (c *Client) UpdateEvent(ctx context.Context, id int64, form models.EventForm) (string, error) {
	return c.doMultipart(ctx, http.MethodPut, fmt.Sprintf("/admin/event/update/%d", id), form.Fields(), form.Files())
}

// DeleteEvent removes an event.
func (c *Client) DeleteEvent(ctx context.Context, id int64) (string, error) {
	return c.text(ctx, http.MethodDelete, fmt.Sprintf("/admin/event/delete/%d", id), nil)
}

// AddGalleryImage adds an image to the gallery.
func (c *Client) AddGalleryImage(ctx context.Context, form models.GalleryForm) (string, error) {
	return c.doMultipart(ctx, http.MethodPost, "/admin/gallery/add", nil, form.Files())
}

// DeleteGalleryImage removes an image from the gallery.
func (c *Client) DeleteGalleryImage(ctx context.Context, id int64) (string, error) {
	return c.text(ctx, http.MethodDelete, fmt.Sprintf("/admin/gallery/delete/%d", id), nil)
}

// ListFeedbacks returns every feedback left by alumni.
func (c *Client) ListFeedbacks(ctx context.Context) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	if err := c.getJSON(ctx, "/admin/feedback/list", nil, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// ListDonations returns every donation made by alumni.
func (c *Client) ListDonations(ctx context.Context) ([]models.Donation, error) {
	var donations []models.Donation
	if err := c.getJSON(ctx, "/admin/donation/list", nil, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

// ListGalleries returns the gallery as seen by the admin.
func (c *Client) ListGalleries(ctx context.Context) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	if err := c.getJSON(ctx, "/admin/galleries", nil, &images); err != nil {
		return nil, err
	}
	return images, nil
}

// denyQuery builds the optional reason query for deny calls.
func denyQuery(reason string) url.Values {
	if reason == "" {
		return nil
	}
	return url.Values{"reason": {reason}}
}

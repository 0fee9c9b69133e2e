package api

import (
	"context"
	"fmt"
	"net/http"
)

// Campaign is a brand's published campaign. Budget is a decimal carried as
// a string by the server.
type Campaign struct {
	ID                 int64          `json:"id,omitempty"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	ContentType        string         `json:"content_type"`
	ContentTypeDisplay string         `json:"content_type_display,omitempty"`
	Deliverables       string         `json:"deliverables"`
	Budget             string         `json:"budget"`
	Deadline           string         `json:"deadline"`
	Status             string         `json:"status"`
	StatusDisplay      string         `json:"status_display,omitempty"`
	Brand              int64          `json:"brand,omitempty"`
	BrandEmail         string         `json:"brand_email,omitempty"`
	ReferenceFiles     []CampaignFile `json:"reference_files,omitempty"`
	CreatedAt          string         `json:"created_at,omitempty"`
	UpdatedAt          string         `json:"updated_at,omitempty"`
}

// CampaignFile is a reference file already attached to a campaign.
// Uploading new files is a multipart transport concern outside this client.
type CampaignFile struct {
	ID         int64  `json:"id"`
	File       string `json:"file"`
	UploadedAt string `json:"uploaded_at"`
}

// CampaignInput is the writable subset for create and update calls.
type CampaignInput struct {
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	ContentType  string `json:"content_type,omitempty"`
	Deliverables string `json:"deliverables,omitempty"`
	Budget       string `json:"budget,omitempty"`
	Deadline     string `json:"deadline,omitempty"`
	Status       string `json:"status,omitempty"`
}

// ListCampaigns returns the campaigns visible to the current role: a brand
// sees its own, a creator sees active ones.
func (c *Client) ListCampaigns(ctx context.Context) ([]Campaign, error) {
	var out []Campaign
	if err := c.do(ctx, http.MethodGet, "/api/v1/campaigns/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCampaign fetches a single campaign by id.
func (c *Client) GetCampaign(ctx context.Context, id int64) (*Campaign, error) {
	var out Campaign
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/campaigns/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCampaign publishes a new campaign for the authenticated brand.
func (c *Client) CreateCampaign(ctx context.Context, in CampaignInput) (*Campaign, error) {
	var out Campaign
	if err := c.do(ctx, http.MethodPost, "/api/v1/campaigns/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCampaign applies a partial update; zero-valued fields are omitted.
func (c *Client) UpdateCampaign(ctx context.Context, id int64, in CampaignInput) (*Campaign, error) {
	var out Campaign
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/campaigns/%d/", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCampaign removes a campaign owned by the authenticated brand.
func (c *Client) DeleteCampaign(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/campaigns/%d/", id), nil, nil)
}

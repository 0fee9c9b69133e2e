package api

import (
	"context"
	"fmt"
	"net/http"
)

// Campaign-application review states. An application starts PENDING; the
// campaign's brand moves it through the review states.
const (
	CampaignApplicationPending     = "PENDING"
	CampaignApplicationShortlisted = "SHORTLISTED"
	CampaignApplicationAccepted    = "ACCEPTED"
	CampaignApplicationRejected    = "REJECTED"
)

// CampaignApplication is an influencer's pitch for a campaign. The server
// enforces one application per influencer per campaign and only LIVE
// campaigns accept new ones. ProposedPrice is a decimal carried as a
// string.
type CampaignApplication struct {
	ID                       int64  `json:"id,omitempty"`
	Campaign                 int64  `json:"campaign"`
	CampaignTitle            string `json:"campaign_title,omitempty"`
	Influencer               int64  `json:"influencer,omitempty"`
	InfluencerEmail          string `json:"influencer_email,omitempty"`
	InfluencerFollowers      int64  `json:"influencer_followers,omitempty"`
	InfluencerEngagementRate string `json:"influencer_engagement_rate,omitempty"`
	InfluencerPlatform       string `json:"influencer_platform,omitempty"`
	Pitch                    string `json:"pitch"`
	PortfolioLink            string `json:"portfolio_link,omitempty"`
	ProposedPrice            string `json:"proposed_price,omitempty"`
	Status                   string `json:"status,omitempty"`
	StatusDisplay            string `json:"status_display,omitempty"`
	CreatedAt                string `json:"created_at,omitempty"`
	UpdatedAt                string `json:"updated_at,omitempty"`
}

// CampaignApplicationInput is the writable subset for create and update
// calls. Influencers set the pitch fields; the campaign's brand sets
// Status during review.
type CampaignApplicationInput struct {
	Campaign      int64  `json:"campaign,omitempty"`
	Pitch         string `json:"pitch,omitempty"`
	PortfolioLink string `json:"portfolio_link,omitempty"`
	ProposedPrice string `json:"proposed_price,omitempty"`
	Status        string `json:"status,omitempty"`
}

// ListCampaignApplications returns the applications visible to the current
// role: an influencer sees their own, a brand sees the ones pitched at its
// campaigns.
func (c *Client) ListCampaignApplications(ctx context.Context) ([]CampaignApplication, error) {
	var out []CampaignApplication
	if err := c.do(ctx, http.MethodGet, "/api/v1/campaign-applications/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCampaignApplication fetches a single application by id.
func (c *Client) GetCampaignApplication(ctx context.Context, id int64) (*CampaignApplication, error) {
	var out CampaignApplication
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/campaign-applications/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApplyToCampaign submits a new application for the authenticated
// influencer. A second application for the same campaign is rejected by
// the server.
func (c *Client) ApplyToCampaign(ctx context.Context, in CampaignApplicationInput) (*CampaignApplication, error) {
	var out CampaignApplication
	if err := c.do(ctx, http.MethodPost, "/api/v1/campaign-applications/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCampaignApplication applies a partial update. The campaign's brand
// uses this to review: shortlist, accept, or reject.
func (c *Client) UpdateCampaignApplication(ctx context.Context, id int64, in CampaignApplicationInput) (*CampaignApplication, error) {
	var out CampaignApplication
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/campaign-applications/%d/", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReviewCampaignApplication moves an application into the given review
// state. Only the brand owning the campaign may review.
func (c *Client) ReviewCampaignApplication(ctx context.Context, id int64, status string) (*CampaignApplication, error) {
	return c.UpdateCampaignApplication(ctx, id, CampaignApplicationInput{Status: status})
}

// DeleteCampaignApplication withdraws an application owned by the caller.
func (c *Client) DeleteCampaignApplication(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/campaign-applications/%d/", id), nil, nil)
}

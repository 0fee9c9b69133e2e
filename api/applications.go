package api

import (
	"context"
	"fmt"
	"net/http"
)

// Template is a service template a creator application can be built from.
type Template struct {
	ID                 int64          `json:"id"`
	TemplateID         string         `json:"template_id"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	IsAvailable        bool           `json:"is_available"`
	DefaultParameters  map[string]any `json:"default_parameters"`
	RequiredParameters []string       `json:"required_parameters"`
	CreatedAt          string         `json:"created_at"`
	UpdatedAt          string         `json:"updated_at"`
}

// Application is a creator's service application, optionally instantiated
// from a template.
type Application struct {
	ID              int64          `json:"id,omitempty"`
	ApplicationID   string         `json:"application_id,omitempty"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Owner           string         `json:"owner"`
	Visibility      string         `json:"visibility"`
	Template        int64          `json:"template,omitempty"`
	TemplateDetails *Template      `json:"template_details,omitempty"`
	TemplateName    string         `json:"template_name,omitempty"`
	CreatorEmail    string         `json:"creator_email,omitempty"`
	Parameters      map[string]any `json:"parameters,omitempty"`
	GitIntegration  map[string]any `json:"git_integration,omitempty"`
	OIDCIntegration map[string]any `json:"oidc_integration,omitempty"`
	Creator         int64          `json:"creator,omitempty"`
	CreatedAt       string         `json:"created_at,omitempty"`
	UpdatedAt       string         `json:"updated_at,omitempty"`
}

// ApplicationInput is the writable subset for create and update calls.
type ApplicationInput struct {
	Name            string         `json:"name,omitempty"`
	Description     string         `json:"description,omitempty"`
	Owner           string         `json:"owner,omitempty"`
	Visibility      string         `json:"visibility,omitempty"`
	TemplateID      string         `json:"template_id,omitempty"`
	Parameters      map[string]any `json:"parameters,omitempty"`
	GitIntegration  map[string]any `json:"git_integration,omitempty"`
	OIDCIntegration map[string]any `json:"oidc_integration,omitempty"`
}

// ListTemplates returns the available service templates.
func (c *Client) ListTemplates(ctx context.Context) ([]Template, error) {
	var out []Template
	if err := c.do(ctx, http.MethodGet, "/api/v1/templates/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTemplate fetches a single template by id.
func (c *Client) GetTemplate(ctx context.Context, id int64) (*Template, error) {
	var out Template
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/templates/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListApplications returns the applications visible to the caller.
func (c *Client) ListApplications(ctx context.Context) ([]Application, error) {
	var out []Application
	if err := c.do(ctx, http.MethodGet, "/api/v1/applications/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetApplication fetches a single application by id.
func (c *Client) GetApplication(ctx context.Context, id int64) (*Application, error) {
	var out Application
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/applications/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateApplication submits a new creator application.
func (c *Client) CreateApplication(ctx context.Context, in ApplicationInput) (*Application, error) {
	var out Application
	if err := c.do(ctx, http.MethodPost, "/api/v1/applications/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateApplication applies a partial update; zero-valued fields are omitted.
func (c *Client) UpdateApplication(ctx context.Context, id int64, in ApplicationInput) (*Application, error) {
	var out Application
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/applications/%d/", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteApplication removes an application owned by the caller.
func (c *Client) DeleteApplication(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/applications/%d/", id), nil, nil)
}

// CatalogView returns the public catalog rendering of an application.
func (c *Client) CatalogView(ctx context.Context, id int64) (*Application, error) {
	var out Application
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/applications/%d/catalog_view/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

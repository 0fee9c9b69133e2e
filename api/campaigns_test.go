package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestCampaignListAndGet(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/campaigns/", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data": []Campaign{
				{ID: 1, Title: "Spring launch", Budget: "1500.00", Status: "active"},
				{ID: 2, Title: "Holiday push", Budget: "4000.00", Status: "draft"},
			},
		})
	})
	mux.HandleFunc("GET /api/v1/campaigns/2/", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data":   Campaign{ID: 2, Title: "Holiday push", Budget: "4000.00"},
		})
	})
	client := newTestClient(t, mux, nil)

	campaigns, err := client.ListCampaigns(context.Background())
	if err != nil {
		t.Fatalf("ListCampaigns failed: %v", err)
	}
	if len(campaigns) != 2 || campaigns[0].Budget != "1500.00" {
		t.Fatalf("unexpected list: %+v", campaigns)
	}

	c, err := client.GetCampaign(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetCampaign failed: %v", err)
	}
	if c.ID != 2 || c.Title != "Holiday push" {
		t.Fatalf("unexpected campaign: %+v", c)
	}
}

func TestCampaignCreateUpdateDelete(t *testing.T) {
	var createdBody, patchedBody CampaignInput
	var deleted bool
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/campaigns/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&createdBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data":   Campaign{ID: 9, Title: createdBody.Title, Status: "draft"},
		})
	})
	mux.HandleFunc("PATCH /api/v1/campaigns/9/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&patchedBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data":   Campaign{ID: 9, Status: patchedBody.Status},
		})
	})
	mux.HandleFunc("DELETE /api/v1/campaigns/9/", func(w http.ResponseWriter, _ *http.Request) {
		deleted = true
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": nil})
	})
	client := newTestClient(t, mux, nil)
	ctx := context.Background()

	created, err := client.CreateCampaign(ctx, CampaignInput{Title: "New drop", Budget: "750.00"})
	if err != nil {
		t.Fatalf("CreateCampaign failed: %v", err)
	}
	if created.ID != 9 || createdBody.Budget != "750.00" {
		t.Fatalf("created = %+v, wire = %+v", created, createdBody)
	}

	updated, err := client.UpdateCampaign(ctx, 9, CampaignInput{Status: "active"})
	if err != nil {
		t.Fatalf("UpdateCampaign failed: %v", err)
	}
	if updated.Status != "active" || patchedBody.Title != "" {
		t.Fatal("partial update must only carry the changed fields")
	}

	if err := client.DeleteCampaign(ctx, 9); err != nil {
		t.Fatalf("DeleteCampaign failed: %v", err)
	}
	if !deleted {
		t.Fatal("DELETE never reached the server")
	}
}

func TestApplicationFlow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/templates/", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data":   []Template{{ID: 1, Name: "Starter service", IsAvailable: true}},
		})
	})
	mux.HandleFunc("POST /api/v1/applications/", func(w http.ResponseWriter, r *http.Request) {
		var in ApplicationInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data":   Application{ID: 4, Name: in.Name, Visibility: in.Visibility},
		})
	})
	mux.HandleFunc("GET /api/v1/applications/4/catalog_view/", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data":   Application{ID: 4, Name: "My shoutouts", Visibility: "public"},
		})
	})
	client := newTestClient(t, mux, nil)
	ctx := context.Background()

	templates, err := client.ListTemplates(ctx)
	if err != nil {
		t.Fatalf("ListTemplates failed: %v", err)
	}
	if len(templates) != 1 || !templates[0].IsAvailable {
		t.Fatalf("unexpected templates: %+v", templates)
	}

	app, err := client.CreateApplication(ctx, ApplicationInput{Name: "My shoutouts", Visibility: "public"})
	if err != nil {
		t.Fatalf("CreateApplication failed: %v", err)
	}
	if app.ID != 4 || app.Name != "My shoutouts" {
		t.Fatalf("unexpected application: %+v", app)
	}

	catalog, err := client.CatalogView(ctx, 4)
	if err != nil {
		t.Fatalf("CatalogView failed: %v", err)
	}
	if catalog.Visibility != "public" {
		t.Fatalf("unexpected catalog view: %+v", catalog)
	}
}

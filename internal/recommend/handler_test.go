package recommend_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"skincare-backend/internal/bootstrap"
	"skincare-backend/internal/shared/config"
)

func buildAppWithCatalogue(t *testing.T, catalogueJSON string) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(catalogueJSON), 0o644); err != nil {
		t.Fatalf("write catalogue: %v", err)
	}

	app, err := bootstrap.Build(config.Config{
		Port:            "0",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		ProductFilePath: path,
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func postRecommend(t *testing.T, app *bootstrap.App, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/recommend", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	return resp
}

func TestRecommendRanksByScore(t *testing.T) {
	app := buildAppWithCatalogue(t, `[
		{"name": "A", "concern_tags": ["dryness"]},
		{"name": "B", "concern_tags": ["acne", "dryness"]}
	]`)

	resp := postRecommend(t, app, `{"issues": ["dryness", "acne"], "answers": {"dryness": "3"}}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var products []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0]["name"] != "B" || products[1]["name"] != "A" {
		t.Fatalf("expected [B A], got %v", products)
	}
}

func TestRecommendTruncatesToLimit(t *testing.T) {
	app := buildAppWithCatalogue(t, `[
		{"name": "P1", "concern_tags": ["acne"]},
		{"name": "P2", "concern_tags": ["acne"]},
		{"name": "P3", "concern_tags": ["acne"]},
		{"name": "P4", "concern_tags": ["acne"]},
		{"name": "P5", "concern_tags": ["acne"]},
		{"name": "P6", "concern_tags": ["acne"]}
	]`)

	resp := postRecommend(t, app, `{"issues": ["acne"], "answers": {}}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var products []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(products) != 5 {
		t.Fatalf("expected 5 products, got %d", len(products))
	}
	// Ties keep catalogue order.
	for i, want := range []string{"P1", "P2", "P3", "P4", "P5"} {
		if products[i]["name"] != want {
			t.Fatalf("position %d: expected %s, got %v", i, want, products[i]["name"])
		}
	}
}

func TestRecommendEmptyCatalogue(t *testing.T) {
	app := buildAppWithCatalogue(t, `[]`)

	resp := postRecommend(t, app, `{"issues": ["dryness"], "answers": {"dryness": "5"}}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if body := resp.Body.String(); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestRecommendMissingCatalogueIsServerError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := bootstrap.Build(config.Config{
		Port:            "0",
		Env:             "dev",
		ProductFilePath: filepath.Join(t.TempDir(), "missing.json"),
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}

	resp := postRecommend(t, app, `{"issues": [], "answers": {}}`)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}

	var errResp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Error.Code != "catalog_not_found" {
		t.Fatalf("expected catalog_not_found, got %q", errResp.Error.Code)
	}
}

func TestRecommendMalformedBody(t *testing.T) {
	app := buildAppWithCatalogue(t, `[]`)

	resp := postRecommend(t, app, `{"issues": "not-an-array"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestRecommendPassesProductSchemaThrough(t *testing.T) {
	app := buildAppWithCatalogue(t, `[
		{"name": "A", "concern_tags": ["dryness"], "brand": "DermaLab", "price": 24.99, "ingredients": ["aqua", "glycerin"]}
	]`)

	resp := postRecommend(t, app, `{"issues": ["dryness"], "answers": {}}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var products []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	p := products[0]
	if p["brand"] != "DermaLab" || p["price"] != 24.99 {
		t.Fatalf("expected schema passthrough, got %v", p)
	}
	if _, ok := p["ingredients"]; !ok {
		t.Fatalf("expected ingredients passthrough, got %v", p)
	}
}

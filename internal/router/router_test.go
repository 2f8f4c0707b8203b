package router

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/deppfellow/catalog/internal/config"
	"github.com/deppfellow/catalog/internal/errs"
	"github.com/deppfellow/catalog/internal/handler"
	"github.com/deppfellow/catalog/internal/model/product"
	"github.com/deppfellow/catalog/internal/repository"
	"github.com/deppfellow/catalog/internal/server"
	"github.com/deppfellow/catalog/internal/service"
)

func setupApp(t *testing.T, mutate func(*config.Config)) *echo.Echo {
	t.Helper()

	cfg := config.Default()
	cfg.RateLimit.Enabled = false
	if mutate != nil {
		mutate(cfg)
	}

	logger := zerolog.Nop()
	s, err := server.New(cfg, &logger, nil)
	if err != nil {
		t.Fatalf("server.New: %v", err)
	}

	services := service.NewServices(s, repository.NewRepositories(s))
	return NewRouter(s, handler.NewHandlers(s, services))
}

func do(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func listIDs(t *testing.T, e *echo.Echo, target string) []int {
	t.Helper()
	rec := do(t, e, http.MethodGet, target, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d", target, rec.Code)
	}
	body := decode[product.ListResponse](t, rec)
	ids := make([]int, 0, len(body.Products))
	for _, p := range body.Products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestListAllProducts(t *testing.T) {
	e := setupApp(t, nil)

	for _, target := range []string{"/productos/", "/productos"} {
		ids := listIDs(t, e, target)
		if len(ids) != 20 {
			t.Fatalf("GET %s: expected 20 products, got %d", target, len(ids))
		}
	}

	// The list key is always an array, even when nothing matches.
	rec := do(t, e, http.MethodGet, "/productos/?nombre=dinosaurio", "")
	if !strings.Contains(rec.Body.String(), `"productos":[]`) {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestListFilters(t *testing.T) {
	e := setupApp(t, nil)

	if got := listIDs(t, e, "/productos/?categoria=alimento"); fmt.Sprint(got) != "[1 5 8 11 14 17 20]" {
		t.Fatalf("categoria=alimento: got %v", got)
	}
	if got := listIDs(t, e, "/productos/?nombre=Pelota"); fmt.Sprint(got) != "[2 15]" {
		t.Fatalf("nombre=Pelota: got %v", got)
	}
	if got := listIDs(t, e, "/productos/?nombre=pelota&categoria=juguetes"); fmt.Sprint(got) != "[2 15]" {
		t.Fatalf("combined filters: got %v", got)
	}
}

func TestGetProduct(t *testing.T) {
	e := setupApp(t, nil)

	rec := do(t, e, http.MethodGet, "/productos/2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := decode[product.Product](t, rec)
	want := product.Product{ID: 2, Name: "Pelota de Goma", Price: 5.5, Category: "juguetes", Stock: 100}
	if got.ID != want.ID || got.Name != want.Name || got.Category != want.Category {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestCreateProduct(t *testing.T) {
	e := setupApp(t, nil)

	rec := do(t, e, http.MethodPost, "/productos/", `{"nombre":"Rascador","precio":19.9,"categoria":"accesorios","stock":0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decode[product.MutationResponse](t, rec)
	if body.Message != "Producto creado" || body.Product.ID != 21 || body.Product.Stock != 0 {
		t.Fatalf("unexpected body: %+v", body)
	}

	// Both spellings of the collection path create.
	rec = do(t, e, http.MethodPost, "/productos", `{"nombre":"Comedero","precio":7,"categoria":"accesorios","stock":3}`)
	if body := decode[product.MutationResponse](t, rec); body.Product.ID != 22 {
		t.Fatalf("expected id 22, got %+v", body)
	}
}

func TestCreateAfterDeletingAll(t *testing.T) {
	e := setupApp(t, nil)

	for id := 1; id <= 20; id++ {
		if rec := do(t, e, http.MethodDelete, fmt.Sprintf("/productos/%d", id), ""); rec.Code != http.StatusOK {
			t.Fatalf("delete %d: expected 200, got %d", id, rec.Code)
		}
	}
	if ids := listIDs(t, e, "/productos/"); len(ids) != 0 {
		t.Fatalf("expected empty catalog, got %v", ids)
	}

	rec := do(t, e, http.MethodPost, "/productos/", `{"nombre":"Nuevo","precio":1,"categoria":"otros","stock":1}`)
	if body := decode[product.MutationResponse](t, rec); body.Product.ID != 1 {
		t.Fatalf("expected id 1, got %+v", body)
	}
}

func TestReplaceProduct(t *testing.T) {
	e := setupApp(t, nil)

	rec := do(t, e, http.MethodPut, "/productos/3", `{"nombre":"Collar","precio":9.5,"categoria":"accesorios","stock":4}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decode[product.MutationResponse](t, rec)
	want := product.Product{ID: 3, Name: "Collar", Price: 9.5, Category: "accesorios", Stock: 4}
	if body.Message != "Producto actualizado" || body.Product != want {
		t.Fatalf("unexpected body: %+v", body)
	}

	// PUT needs the whole product.
	rec = do(t, e, http.MethodPut, "/productos/3", `{"nombre":"Collar"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for partial PUT, got %d", rec.Code)
	}
}

func TestPatchStock(t *testing.T) {
	e := setupApp(t, nil)

	before := decode[product.Product](t, do(t, e, http.MethodGet, "/productos/2", ""))

	rec := do(t, e, http.MethodPatch, "/productos/2", `{"stock":99}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decode[product.MutationResponse](t, rec)
	if body.Message != "Producto actualizado parcialmente" {
		t.Fatalf("unexpected message %q", body.Message)
	}

	want := before
	want.Stock = 99
	if body.Product != want {
		t.Fatalf("expected %+v, got %+v", want, body.Product)
	}
	if after := decode[product.Product](t, do(t, e, http.MethodGet, "/productos/2", "")); after != want {
		t.Fatalf("patch not persisted: %+v", after)
	}
}

func TestDeleteThenGetIsNotFound(t *testing.T) {
	e := setupApp(t, nil)

	rec := do(t, e, http.MethodDelete, "/productos/5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := decode[product.MessageResponse](t, rec); body.Message != "Producto eliminado" {
		t.Fatalf("unexpected body: %+v", body)
	}

	rec = do(t, e, http.MethodGet, "/productos/5", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	body := decode[map[string]interface{}](t, rec)
	if body["error"] != "Producto no encontrado" || body["code"] != errs.CodeProductNotFound {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestNotFoundOnEveryByIDOperation(t *testing.T) {
	e := setupApp(t, nil)

	tests := []struct {
		method string
		body   string
	}{
		{http.MethodGet, ""},
		{http.MethodPut, `{"nombre":"x","precio":1,"categoria":"x","stock":1}`},
		{http.MethodPatch, `{"stock":1}`},
		{http.MethodDelete, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := do(t, e, tt.method, "/productos/999", tt.body)
			if rec.Code != http.StatusNotFound {
				t.Fatalf("expected 404, got %d", rec.Code)
			}
			if body := decode[errs.HTTPError](t, rec); body.Message != errs.MessageProductNotFound {
				t.Fatalf("unexpected body: %+v", body)
			}
		})
	}
}

func TestLegacyNotFoundStatus(t *testing.T) {
	e := setupApp(t, func(c *config.Config) {
		c.Server.LegacyNotFoundStatus = true
	})

	rec := do(t, e, http.MethodGet, "/productos/999", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 in legacy mode, got %d", rec.Code)
	}
	if body := decode[map[string]interface{}](t, rec); body["error"] != "Producto no encontrado" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestBadRequests(t *testing.T) {
	e := setupApp(t, nil)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		field  string
	}{
		{"missing field", http.MethodPost, "/productos/", `{"nombre":"x","precio":1,"categoria":"x"}`, "stock"},
		{"type mismatch", http.MethodPost, "/productos/", `{"nombre":"x","precio":"uno","categoria":"x","stock":1}`, "precio"},
		{"malformed json", http.MethodPost, "/productos/", `{"nombre":`, ""},
		{"non-integer id", http.MethodGet, "/productos/abc", "", "id"},
		{"non-integer id on patch", http.MethodPatch, "/productos/abc", `{"stock":1}`, "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, tt.method, tt.target, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			body := decode[errs.HTTPError](t, rec)
			if body.Code != "BAD_REQUEST" {
				t.Fatalf("unexpected code %q", body.Code)
			}
			if tt.field != "" && (len(body.Errors) == 0 || body.Errors[0].Field != tt.field) {
				t.Fatalf("expected field error on %q, got %+v", tt.field, body.Errors)
			}
		})
	}

	// Nothing was created by the rejected requests.
	if ids := listIDs(t, e, "/productos/"); len(ids) != 20 {
		t.Fatalf("expected 20 products, got %d", len(ids))
	}
}

func TestUnknownRoute(t *testing.T) {
	e := setupApp(t, nil)

	rec := do(t, e, http.MethodGet, "/clientes", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decode[errs.HTTPError](t, rec); body.Message != "Route not found" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestRequestIDHeader(t *testing.T) {
	e := setupApp(t, nil)

	rec := do(t, e, http.MethodGet, "/productos/1", "")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID on the response")
	}
}

func TestSystemRoutes(t *testing.T) {
	e := setupApp(t, func(c *config.Config) {
		c.Primary.Env = "test"
	})

	rec := do(t, e, http.MethodGet, "/status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: expected 200, got %d", rec.Code)
	}
	health := decode[map[string]interface{}](t, rec)
	checks, _ := health["checks"].(map[string]interface{})
	catalog, _ := checks["catalog"].(map[string]interface{})
	if health["status"] != "healthy" || health["environment"] != "test" || catalog["products"] != float64(20) {
		t.Fatalf("unexpected health body: %v", health)
	}

	rec = do(t, e, http.MethodGet, "/docs", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/static/openapi.json") {
		t.Fatalf("docs: unexpected response %d", rec.Code)
	}

	rec = do(t, e, http.MethodGet, "/static/openapi.json", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("openapi.json: expected 200, got %d", rec.Code)
	}
	doc := decode[map[string]interface{}](t, rec)
	if doc["openapi"] != "3.0.3" {
		t.Fatalf("unexpected openapi document: %v", doc["openapi"])
	}
}

func TestRateLimitAppliesToCatalogOnly(t *testing.T) {
	e := setupApp(t, func(c *config.Config) {
		c.RateLimit.Enabled = true
		c.RateLimit.RequestsPerSecond = 0.001
		c.RateLimit.Burst = 1
	})

	if rec := do(t, e, http.MethodGet, "/productos/", ""); rec.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", rec.Code)
	}
	rec := do(t, e, http.MethodGet, "/productos/", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", rec.Code)
	}
	if body := decode[errs.HTTPError](t, rec); body.Code != "TOO_MANY_REQUESTS" {
		t.Fatalf("unexpected body: %+v", body)
	}

	for i := 0; i < 3; i++ {
		if rec := do(t, e, http.MethodGet, "/status", ""); rec.Code != http.StatusOK {
			t.Fatalf("status must not be rate limited, got %d", rec.Code)
		}
	}
}

func TestWrongMethodIsMethodNotAllowed(t *testing.T) {
	e := setupApp(t, nil)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/productos/5"},
		{http.MethodPut, "/productos/"},
		{http.MethodDelete, "/productos"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := do(t, e, tt.method, tt.target, "")
			if rec.Code != http.StatusMethodNotAllowed {
				t.Fatalf("expected 405, got %d: %s", rec.Code, rec.Body.String())
			}
			if body := decode[errs.HTTPError](t, rec); body.Code != "METHOD_NOT_ALLOWED" {
				t.Fatalf("unexpected body: %+v", body)
			}
		})
	}
}

func TestTrailingSlashOnIDRoute(t *testing.T) {
	e := setupApp(t, nil)

	rec := do(t, e, http.MethodGet, "/productos/5/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET with trailing slash: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := decode[product.Product](t, rec); got.ID != 5 {
		t.Fatalf("expected product 5, got %+v", got)
	}

	if rec := do(t, e, http.MethodDelete, "/productos/5/", ""); rec.Code != http.StatusOK {
		t.Fatalf("DELETE with trailing slash: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec := do(t, e, http.MethodGet, "/productos/5", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected product 5 to be gone, got %d", rec.Code)
	}
}

package assessment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/healthassist/healthassist/internal/platform/auth"
	"github.com/healthassist/healthassist/pkg/pagination"
)

func newTestHandler(repo Repository) (*Handler, *echo.Echo) {
	svc := NewService(repo, &mockAnalyzer{result: healthyResult()}, &mockEnsurer{}, zerolog.Nop())
	return NewHandler(svc), echo.New()
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID string) echo.Context {
	req = req.WithContext(auth.WithIdentity(req.Context(), &auth.Identity{UserID: userID}))
	return e.NewContext(req, rec)
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	return httpErr.Code
}

const createBody = `{
	"symptoms": [{"name": "Headache", "bodyPart": "Head", "severity": 6, "duration": "2 days"}],
	"bodyParts": ["Head"],
	"additionalInfo": "Worse in the morning"
}`

func TestHandler_Create(t *testing.T) {
	h, e := newTestHandler(newMockRepo())
	req := httptest.NewRequest(http.MethodPost, "/api/assessments", strings.NewReader(createBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-1")

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var a Assessment
	if err := json.Unmarshal(rec.Body.Bytes(), &a); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if a.UserID != "user-1" {
		t.Errorf("expected owner user-1, got %q", a.UserID)
	}
	if a.AIAnalysis == nil || len(a.Recommendations) == 0 {
		t.Error("expected analysis and recommendations in response")
	}
}

func TestHandler_Create_Unauthenticated(t *testing.T) {
	h, e := newTestHandler(newMockRepo())
	req := httptest.NewRequest(http.MethodPost, "/api/assessments", strings.NewReader(createBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	if err == nil {
		t.Fatal("expected error")
	}
	if code := httpStatus(t, err); code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", code)
	}
}

func TestHandler_Create_InvalidSeverity(t *testing.T) {
	h, e := newTestHandler(newMockRepo())
	body := `{"symptoms": [{"name": "Headache", "bodyPart": "Head", "severity": 14, "duration": "2 days"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/assessments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-1")

	err := h.Create(c)
	if err == nil {
		t.Fatal("expected error")
	}
	if code := httpStatus(t, err); code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
}

func TestHandler_List(t *testing.T) {
	repo := newMockRepo()
	h, e := newTestHandler(repo)

	// seed two assessments through the handler
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/assessments", strings.NewReader(createBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		if err := h.Create(authedContext(e, req, httptest.NewRecorder(), "user-1")); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/assessments", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-1")

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp pagination.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("expected total 2, got %d", resp.Total)
	}
	if resp.Limit != 20 || resp.Offset != 0 {
		t.Errorf("unexpected pagination defaults: limit=%d offset=%d", resp.Limit, resp.Offset)
	}
}

func TestHandler_List_Empty(t *testing.T) {
	h, e := newTestHandler(newMockRepo())
	req := httptest.NewRequest(http.MethodGet, "/api/assessments", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-1")

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("expected empty data array, got %s", rec.Body.String())
	}
}

func TestHandler_Get(t *testing.T) {
	repo := newMockRepo()
	h, e := newTestHandler(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/assessments", strings.NewReader(createBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	createRec := httptest.NewRecorder()
	if err := h.Create(authedContext(e, req, createRec, "user-1")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	var created Assessment
	if err := json.Unmarshal(createRec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode created assessment: %v", err)
	}

	getReq := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, getReq, rec, "user-1")
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())

	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_Get_NotFound(t *testing.T) {
	h, e := newTestHandler(newMockRepo())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-1")
	c.SetParamNames("id")
	c.SetParamValues("5a0535c6-9363-4f0f-9f0c-3d882cb3cd52")

	err := h.Get(c)
	if err == nil {
		t.Fatal("expected error")
	}
	if code := httpStatus(t, err); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}

func TestHandler_Get_MalformedID(t *testing.T) {
	h, e := newTestHandler(newMockRepo())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "user-1")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)
	if err == nil {
		t.Fatal("expected error")
	}
	if code := httpStatus(t, err); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}

func TestHandler_Get_ForeignOwner(t *testing.T) {
	repo := newMockRepo()
	h, e := newTestHandler(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/assessments", strings.NewReader(createBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	createRec := httptest.NewRecorder()
	if err := h.Create(authedContext(e, req, createRec, "user-1")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	var created Assessment
	if err := json.Unmarshal(createRec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode created assessment: %v", err)
	}

	getReq := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, getReq, rec, "user-2")
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())

	err := h.Get(c)
	if err == nil {
		t.Fatal("expected error")
	}
	if code := httpStatus(t, err); code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", code)
	}
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karizzz/subletez-backend/internal/core"
	"github.com/karizzz/subletez-backend/internal/db"
	"github.com/karizzz/subletez-backend/internal/models"
)

// fakeListingService records the requests it receives and returns canned
// results.
type fakeListingService struct {
	publishErr  error
	browseErr   error
	lastQuery   string
	published   []models.CreateListingRequest
	browseItems []models.Listing
}

func (f *fakeListingService) Publish(_ context.Context, req models.CreateListingRequest) (*models.Listing, error) {
	if f.publishErr != nil {
		return nil, f.publishErr
	}
	f.published = append(f.published, req)
	return &models.Listing{
		ID:        "listing-1",
		Title:     req.Title,
		Price:     req.Price,
		Condition: req.Condition,
		City:      req.City,
		Province:  req.Province,
		ImageURL:  req.ImageURL,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (f *fakeListingService) Browse(_ context.Context, query string) ([]models.Listing, error) {
	if f.browseErr != nil {
		return nil, f.browseErr
	}
	f.lastQuery = query
	return f.browseItems, nil
}

func newListingRouter(svc core.ListingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	RegisterValidators()
	router := gin.New()
	handler := NewListingHandler(svc)
	router.POST("/listings", handler.Create)
	router.GET("/listings", handler.List)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func validCreateBody() map[string]interface{} {
	return map[string]interface{}{
		"title":     "Cozy basement room",
		"price":     750,
		"condition": "New",
		"location":  "12 College St",
		"city":      "Toronto",
		"province":  "ON",
		"imageUrl":  "https://storage.googleapis.com/b/images/x.jpg",
	}
}

func TestCreateListingSuccess(t *testing.T) {
	svc := &fakeListingService{}
	resp := postJSON(t, newListingRouter(svc), "/listings", validCreateBody())

	assert.Equal(t, http.StatusCreated, resp.Code)
	require.Len(t, svc.published, 1)
	assert.Equal(t, "Toronto", svc.published[0].City)
}

func TestCreateListingRejectsUnknownProvinceAtBinding(t *testing.T) {
	svc := &fakeListingService{}
	body := validCreateBody()
	body["province"] = "XX"

	resp := postJSON(t, newListingRouter(svc), "/listings", body)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Empty(t, svc.published)
}

func TestCreateListingPolicyFailureIs400(t *testing.T) {
	svc := &fakeListingService{publishErr: core.ErrMissingMedia}
	resp := postJSON(t, newListingRouter(svc), "/listings", validCreateBody())

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateListingStoreFailureIs500(t *testing.T) {
	svc := &fakeListingService{publishErr: db.ErrTransport}
	resp := postJSON(t, newListingRouter(svc), "/listings", validCreateBody())

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestListListingsPassesQueryAndDefaultsToEmptyArray(t *testing.T) {
	svc := &fakeListingService{}
	router := newListingRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/listings?q=downtown", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "downtown", svc.lastQuery)

	var payload struct {
		Listings []models.Listing `json:"listings"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.NotNil(t, payload.Listings)
	assert.Empty(t, payload.Listings)
}

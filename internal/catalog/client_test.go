package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-sync/internal/domain"
	"catalog-sync/internal/httpx"
)

const testBaseURL = "https://api.catalog.test/"

func TestNew(t *testing.T) {
	client := New(testBaseURL)

	if client.BaseURL != "https://api.catalog.test" {
		t.Errorf("Expected BaseURL without trailing slash, got '%s'", client.BaseURL)
	}
	if client.HTTP == nil {
		t.Error("Expected HTTP client to be initialized")
	}
	if client.HTTP.Timeout != 0 {
		t.Errorf("Expected no request timeout, got %s", client.HTTP.Timeout)
	}
	if client.BearerToken != "" {
		t.Errorf("Expected BearerToken to be empty, got '%s'", client.BearerToken)
	}
}

func TestFindUniversityByName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/marketplace/study-abroad/universities/by-name/University of Leeds", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 42, "name": "University of Leeds"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	rec, err := client.FindUniversityByName(context.Background(), "University of Leeds")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "42", rec.ID.String())
	assert.Equal(t, "University of Leeds", rec.Name)
}

func TestFindUniversityByNameNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/marketplace/study-abroad/universities/by-name/Missing":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"not found"}`))
		default:
			w.Write([]byte(`null`))
		}
	}))
	defer server.Close()

	client := New(server.URL)

	rec, err := client.FindUniversityByName(context.Background(), "Missing")
	assert.Nil(t, rec)
	var herr *httpx.HTTPError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, http.StatusNotFound, herr.StatusCode)

	rec, err = client.FindUniversityByName(context.Background(), "Null Body")
	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestCreateUniversitySendsPayload(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/marketplace/study-abroad/universities", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"u-1","name":"Leeds"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	client.BearerToken = "secret"

	rank := 45
	rec, err := client.CreateUniversity(context.Background(), domain.UniversityPayload{
		Name:        "Leeds",
		CountryName: "United Kingdom",
		StateName:   "-",
		CityName:    "Leeds",
		Ranking:     []domain.RankingEntry{{Name: "QS", Rank: &rank}, {Name: "THE"}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StringID("u-1"), rec.ID)

	assert.Equal(t, "Leeds", got["name"])
	assert.Nil(t, got["website"])
	assert.Equal(t, "-", got["stateName"])
	assert.NotContains(t, got, "logo")
	assert.Equal(t, []any{
		map[string]any{"name": "QS", "rank": 45.0},
		map[string]any{"name": "THE", "rank": nil},
	}, got["ranking"])
}

func TestUpdateUniversityRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v1/marketplace/study-abroad/universities/u-1", r.URL.Path)
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"countryName invalid"}`))
	}))
	defer server.Close()

	err := New(server.URL).UpdateUniversity(context.Background(), domain.StringID("u-1"), domain.UniversityPayload{Name: "Leeds"})
	var herr *httpx.HTTPError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, http.StatusUnprocessableEntity, herr.StatusCode)
	assert.Equal(t, `{"message":"countryName invalid"}`, herr.BodyText())
}

func TestFindCourseUsesQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/marketplace/study-abroad/courses/check", r.URL.Path)
		assert.Equal(t, "MSc Data Science", r.URL.Query().Get("name"))
		assert.Equal(t, "42", r.URL.Query().Get("universityId"))
		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)
		w.Write([]byte(`{"id":"c-9","name":"MSc Data Science","universityId":42}`))
	}))
	defer server.Close()

	rec, err := New(server.URL).FindCourse(context.Background(), "MSc Data Science", domain.NumericID(42))
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "c-9", rec.ID.String())
	assert.Equal(t, domain.NumericID(42), rec.UniversityID)
}

func TestCreateCourseSanitizesPayload(t *testing.T) {
	var raw []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	inf := math.Inf(1)
	name := "BSc Nursing"
	err := New(server.URL).CreateCourse(context.Background(), domain.CoursePayload{
		Name:         &name,
		Fees:         &inf,
		UniversityID: domain.NumericID(7),
		ExamAccepted: []domain.ExamScore{{Name: "IELTS", Score: math.NaN()}},
	})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Nil(t, got["fees"])
	assert.Equal(t, "GBP", got["feesCurrency"])
	assert.Equal(t, 7.0, got["universityId"])
	assert.Equal(t, []any{map[string]any{"name": "IELTS", "score": nil}}, got["examAccepted"])
	assert.NotContains(t, got, "workVisaPermitLabel")
}

func TestUpdateCourseNoContentIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/marketplace/study-abroad/courses/c-9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := New(server.URL).UpdateCourse(context.Background(), domain.StringID("c-9"), domain.CoursePayload{})
	var herr *httpx.HTTPError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, http.StatusNoContent, herr.StatusCode)
}

func TestCreateCourseTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	err := New(url).CreateCourse(context.Background(), domain.CoursePayload{})
	require.Error(t, err)
	var herr *httpx.HTTPError
	assert.False(t, errors.As(err, &herr))
}

func TestJoinCommission(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1.0/marketplace/commission", r.URL.Path)
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"universityId": "u-1", "companyId": "vC4W-hCnhK"}, body)
		w.Write([]byte(`{"existing":{"id":"cm-1"}}`))
	}))
	defer server.Close()

	link, err := New(server.URL).JoinCommission(context.Background(), domain.StringID("u-1"), "vC4W-hCnhK")
	require.NoError(t, err)
	require.NotNil(t, link.Existing)
	assert.Equal(t, "cm-1", link.LinkID().String())
}

package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dutt123/ossvacationtracker/internal/config"
	"github.com/Dutt123/ossvacationtracker/internal/repository"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.Store.Path = filepath.Join(t.TempDir(), "data.json")
	cfg.Leave.AutoApproveCategories = []string{"SL"}
	cfg.Auth.AdminPIN = "2580"
	cfg.Auth.MemberPIN = "1379"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 3600
	cfg.Email.UserDomain = "example.com"

	h, err := NewHandler(cfg, repository.NewRepository(cfg), nil, nil)
	require.NoError(t, err)
	h.RegisterRoutes()
	return h
}

func do(t *testing.T, h *Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestMembersEndpoints(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/members", map[string]string{"name": "Asha Rao"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/members", map[string]string{"name": "Asha Rao"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/members", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/members", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var members struct {
		Members           []string `json:"members"`
		ExcludeFromOnDuty []string `json:"excludeFromOnDuty"`
	}
	decode(t, rec, &members)
	assert.Equal(t, []string{"Asha Rao"}, members.Members)
	assert.NotNil(t, members.ExcludeFromOnDuty)

	// Names with spaces arrive escaped in the path.
	rec = do(t, h, http.MethodPut, "/api/members/Asha%20Rao", map[string]string{"newName": "Asha Menon"})
	require.Equal(t, http.StatusOK, rec.Code)
	var renamed map[string]string
	decode(t, rec, &renamed)
	assert.Equal(t, "Asha Rao", renamed["oldName"])
	assert.Equal(t, "Asha Menon", renamed["newName"])

	rec = do(t, h, http.MethodPut, "/api/members/Nobody", map[string]string{"newName": "X"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/members/Asha%20Menon", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/members/Asha%20Menon", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminsEndpoints(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/api/members", map[string]string{"name": "Asha Rao"})

	rec := do(t, h, http.MethodPost, "/api/admins", map[string]string{"name": "Nobody"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "admins must be roster members")

	rec = do(t, h, http.MethodPost, "/api/admins", map[string]string{"name": "Asha Rao"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/admins", map[string]string{"name": "Asha Rao"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/admins", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var admins struct {
		Admins []string `json:"admins"`
	}
	decode(t, rec, &admins)
	assert.Equal(t, []string{"Asha Rao"}, admins.Admins)
}

func TestLeaveLifecycle(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/api/members", map[string]string{"name": "Asha Rao"})

	rec := do(t, h, http.MethodPost, "/api/leaves", map[string]any{"member": "Asha Rao", "date": "2025-01-10"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "category is required")

	rec = do(t, h, http.MethodPost, "/api/leaves", map[string]any{"member": "Asha Rao", "date": "2025-01-10", "category": "PL"})
	require.Equal(t, http.StatusOK, rec.Code)
	var created struct {
		ID     int    `json:"id"`
		Status string `json:"status"`
	}
	decode(t, rec, &created)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "pending", created.Status)

	rec = do(t, h, http.MethodPost, "/api/leaves", map[string]any{"member": "Asha Rao", "date": "2025-01-10", "category": "SL"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPut, fmt.Sprintf("/api/leaves/%d/approve", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &created)
	assert.Equal(t, "approved", created.Status)

	rec = do(t, h, http.MethodPut, "/api/leaves/99/approve", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodDelete, fmt.Sprintf("/api/leaves/%d", created.ID), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "requester is required")

	rec = do(t, h, http.MethodDelete, fmt.Sprintf("/api/leaves/%d?requester=Asha+Rao", created.ID), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code, "only admins may delete approved leaves")

	do(t, h, http.MethodPost, "/api/admins", map[string]string{"name": "Asha Rao"})
	rec = do(t, h, http.MethodDelete, fmt.Sprintf("/api/leaves/%d?requester=Asha+Rao", created.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/leaves/99?requester=Asha+Rao", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOnDutyEndpoint(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/api/members", map[string]string{"name": "A"})
	do(t, h, http.MethodPost, "/api/members", map[string]string{"name": "B"})
	do(t, h, http.MethodPost, "/api/leaves", map[string]any{"member": "A", "date": "2025-01-10", "category": "PL", "isAdmin": true})

	rec := do(t, h, http.MethodGet, "/api/onduty", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/onduty?date=2025-01-10", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats struct {
		Date    string `json:"date"`
		Total   int    `json:"total"`
		OnLeave int    `json:"onLeave"`
		OnDuty  int    `json:"onDuty"`
		Pct     int    `json:"pct"`
	}
	decode(t, rec, &stats)
	assert.Equal(t, "2025-01-10", stats.Date)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.OnLeave)
	assert.Equal(t, 1, stats.OnDuty)
	assert.Equal(t, 50, stats.Pct)
}

func TestPendingRankEndpoint(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/api/members", map[string]string{"name": "A"})
	do(t, h, http.MethodPost, "/api/members", map[string]string{"name": "B"})
	do(t, h, http.MethodPost, "/api/leaves", map[string]any{"member": "A", "date": "2025-01-10", "category": "PL"})
	do(t, h, http.MethodPost, "/api/leaves", map[string]any{"member": "B", "date": "2025-01-10", "category": "PL"})

	rec := do(t, h, http.MethodGet, "/api/onduty/pending-rank", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/onduty/pending-rank?date=2025-01-10&member=B", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rank struct {
		Rank int `json:"rank"`
	}
	decode(t, rec, &rank)
	assert.Equal(t, 2, rank.Rank)

	rec = do(t, h, http.MethodGet, "/api/onduty/pending-rank?date=2025-01-10&member=Nobody", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &rank)
	assert.Equal(t, 0, rank.Rank)
}

func TestShiftEndpoints(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/api/members", map[string]string{"name": "Kiran Kumar"})

	rec := do(t, h, http.MethodPost, "/api/shifts", map[string]any{
		"member": "Kiran Kumar", "startDate": "2025-01-06", "endDate": "2025-01-08", "shift": "NIGHT",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/shifts", map[string]any{
		"member": "Kiran Kumar", "startDate": "2025-01-06", "endDate": "2025-01-08", "shift": "IST",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var result struct {
		DatesAssigned []string `json:"datesAssigned"`
		TotalDates    int      `json:"totalDates"`
	}
	decode(t, rec, &result)
	assert.Equal(t, []string{"2025-01-06", "2025-01-07", "2025-01-08"}, result.DatesAssigned)
	assert.Equal(t, 3, result.TotalDates)

	rec = do(t, h, http.MethodGet, "/api/shifts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var shifts struct {
		Shifts map[string]map[string]string `json:"shifts"`
	}
	decode(t, rec, &shifts)
	assert.Equal(t, "IST", shifts.Shifts["Kiran Kumar"]["2025-01-07"])

	rec = do(t, h, http.MethodGet, "/api/shifts?compact=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var compact struct {
		Shifts map[string][]struct {
			Start string `json:"start"`
			End   string `json:"end"`
			Shift string `json:"shift"`
		} `json:"shifts"`
	}
	decode(t, rec, &compact)
	require.Len(t, compact.Shifts["Kiran Kumar"], 1)
	assert.Equal(t, "2025-01-06", compact.Shifts["Kiran Kumar"][0].Start)
	assert.Equal(t, "2025-01-08", compact.Shifts["Kiran Kumar"][0].End)
}

func TestDataEndpoint(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/api/members", map[string]string{"name": "Asha Rao"})

	rec := do(t, h, http.MethodGet, "/api/data", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]json.RawMessage
	decode(t, rec, &doc)
	for _, field := range []string{"admins", "members", "leaves", "shifts", "excludeFromOnDuty"} {
		assert.Contains(t, doc, field)
	}
}

func TestValidatePIN(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/api/members", map[string]string{"name": "Asha Rao"})
	do(t, h, http.MethodPost, "/api/members", map[string]string{"name": "Kiran Kumar"})
	do(t, h, http.MethodPost, "/api/admins", map[string]string{"name": "Asha Rao"})

	var result struct {
		Valid   bool   `json:"valid"`
		Member  string `json:"member"`
		IsAdmin bool   `json:"isAdmin"`
	}

	rec := do(t, h, http.MethodPost, "/api/validate-pin", map[string]string{"member": "Asha Rao", "pin": "0000"})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &result)
	assert.False(t, result.Valid)

	rec = do(t, h, http.MethodPost, "/api/validate-pin", map[string]string{"member": "Nobody", "pin": "2580"})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &result)
	assert.False(t, result.Valid)

	rec = do(t, h, http.MethodPost, "/api/validate-pin", map[string]string{"member": "Asha Rao", "pin": "2580"})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &result)
	assert.True(t, result.Valid)
	assert.True(t, result.IsAdmin)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)

	// Non-admins validate against the member PIN, not the admin one.
	rec = do(t, h, http.MethodPost, "/api/validate-pin", map[string]string{"member": "Kiran Kumar", "pin": "2580"})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &result)
	assert.False(t, result.Valid)

	rec = do(t, h, http.MethodPost, "/api/validate-pin", map[string]string{"member": "Kiran Kumar", "pin": "1379"})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &result)
	assert.True(t, result.Valid)
	assert.False(t, result.IsAdmin)

	rec = do(t, h, http.MethodPost, "/api/validate-pin", map[string]string{"member": "Asha Rao", "pin": "12"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

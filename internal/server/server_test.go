package server

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

	"github.com/sells-group/carbon-cli/internal/engine"
	"github.com/sells-group/carbon-cli/internal/factors"
	"github.com/sells-group/carbon-cli/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	reg := factors.Load()
	calc := engine.New(reg)

	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, st.Migrate(t.Context()))
	t.Cleanup(func() { st.Close() })

	srv := httptest.NewServer(New(calc, reg, st, 0).Router())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decodeJSON(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestCalculateStationary(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/calculate", map[string]any{
		"scope":     "scope_1",
		"fuel_type": "natural_gas",
		"quantity":  1000,
		"unit":      "therm",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body calculateResponse
	decodeJSON(t, resp, &body)
	require.Len(t, body.Results, 1)
	assert.InDelta(t, 5307.45, body.TotalCO2eKG, 0.5)
	assert.Equal(t, "stationary_combustion", string(body.Results[0].Scope1Category))
}

func TestCalculateScope2ExcludesMarketFromTotal(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/calculate", map[string]any{
		"scope":          "scope_2",
		"quantity":       10000,
		"unit":           "kWh",
		"grid_subregion": "ERCT",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body calculateResponse
	decodeJSON(t, resp, &body)
	require.Len(t, body.Results, 2)
	// Both methods are reported but only location-based counts
	assert.InDelta(t, body.Results[0].TotalCO2eKG, body.TotalCO2eKG, 0.001)
}

func TestCalculateValidationError(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/calculate", map[string]any{
		"scope":    "scope_1",
		"quantity": -5,
		"unit":     "therm",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCalculateUnresolvedFactor(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/calculate", map[string]any{
		"scope":           "scope_3",
		"scope3_category": 15,
		"quantity":        10,
		"unit":            "item",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestInventoryEndpointWithSave(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/inventory", map[string]any{
		"name": "FY2024",
		"year": 2024,
		"save": true,
		"activities": []map[string]any{
			{"scope": "scope_1", "fuel_type": "natural_gas", "quantity": 1000, "unit": "therm"},
			{"scope": "scope_2", "quantity": 10000, "unit": "kWh", "grid_subregion": "ERCT"},
			{"scope": "scope_1", "fuel_type": "antimatter", "quantity": 1, "unit": "gallon"},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body inventoryResponse
	decodeJSON(t, resp, &body)
	require.NotNil(t, body.Inventory)
	assert.NotEmpty(t, body.RunID)
	assert.Len(t, body.Inventory.Scope1.Results, 1)
	assert.Len(t, body.Inventory.Scope2Location.Results, 1)
	assert.Len(t, body.Inventory.Scope2Market.Results, 1)
	assert.Len(t, body.Inventory.Failures, 1)

	// Saved run is retrievable
	got, err := http.Get(srv.URL + "/v1/runs/" + body.RunID)
	require.NoError(t, err)
	defer got.Body.Close()
	assert.Equal(t, http.StatusOK, got.StatusCode)

	var run store.Run
	decodeJSON(t, got, &run)
	assert.Equal(t, "FY2024", run.Name)
	assert.Equal(t, 1, run.FailureCount)
}

func TestInventoryEndpointValidationFatal(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/inventory", map[string]any{
		"name": "bad",
		"activities": []map[string]any{
			{"scope": "scope_1", "fuel_type": "natural_gas", "quantity": 0, "unit": "therm"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInventoryEndpointRequiresActivities(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/inventory", map[string]any{"name": "empty"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFactorsSearch(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/factors?q=diesel&limit=5")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Count   int               `json:"count"`
		Factors []*factors.Factor `json:"factors"`
	}
	decodeJSON(t, resp, &body)
	require.NotZero(t, body.Count)
	assert.LessOrEqual(t, body.Count, 5)
	assert.Equal(t, "diesel", body.Factors[0].FuelType)
}

func TestFactorsUnknownSource(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/factors?source=wikipedia")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGWPLookup(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/gwp?gas=r-410a&assessment=ar5")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Value float64 `json:"value"`
	}
	decodeJSON(t, resp, &body)
	assert.Equal(t, 2088.0, body.Value)
}

func TestGWPUnknownGas(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/gwp?gas=unobtainium")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGWPListGases(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/gwp")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Assessment string     `json:"assessment"`
		Gases      []gwpEntry `json:"gases"`
	}
	decodeJSON(t, resp, &body)
	assert.Equal(t, "ar6", body.Assessment)
	assert.NotEmpty(t, body.Gases)
}

func TestRunsListAndDelete(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/inventory", map[string]any{
		"name": "FY2023",
		"year": 2023,
		"save": true,
		"activities": []map[string]any{
			{"scope": "scope_1", "fuel_type": "natural_gas", "quantity": 10, "unit": "therm"},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var saved inventoryResponse
	decodeJSON(t, resp, &saved)
	require.NotEmpty(t, saved.RunID)

	list, err := http.Get(srv.URL + "/v1/runs?year=2023")
	require.NoError(t, err)
	defer list.Body.Close()
	require.Equal(t, http.StatusOK, list.StatusCode)
	var listBody struct {
		Count int         `json:"count"`
		Runs  []store.Run `json:"runs"`
	}
	decodeJSON(t, list, &listBody)
	require.Equal(t, 1, listBody.Count)
	assert.Equal(t, saved.RunID, listBody.Runs[0].ID)

	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/runs/%s", srv.URL, saved.RunID), nil)
	require.NoError(t, err)
	del, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer del.Body.Close()
	assert.Equal(t, http.StatusOK, del.StatusCode)

	missing, err := http.Get(srv.URL + "/v1/runs/" + saved.RunID)
	require.NoError(t, err)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/carbon-cli/internal/engine"
	"github.com/sells-group/carbon-cli/internal/factors"
	"github.com/sells-group/carbon-cli/internal/gwp"
	"github.com/sells-group/carbon-cli/internal/store"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type calculateResponse struct {
	Results     []engine.Result `json:"results"`
	TotalCO2eKG float64         `json:"total_co2e_kg"`
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var a engine.Activity
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		writeError(w, http.StatusBadRequest, eris.Wrap(err, "server: decode activity"))
		return
	}
	if err := engine.Validate(0, a); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	results, err := s.calc.CalculateSingle(a)
	if err != nil {
		writeError(w, calcStatus(err), err)
		return
	}

	var total float64
	for _, res := range results {
		// The grand total convention: market-based Scope 2 is reported
		// but not summed alongside the location-based result.
		if res.Scope2Method == engine.MarketBased {
			continue
		}
		total += res.TotalCO2eKG
	}
	writeJSON(w, http.StatusOK, calculateResponse{Results: results, TotalCO2eKG: total})
}

type inventoryRequest struct {
	Name       string            `json:"name"`
	Year       int               `json:"year,omitempty"`
	Activities []engine.Activity `json:"activities"`
	Save       bool              `json:"save,omitempty"`
}

type inventoryResponse struct {
	RunID     string            `json:"run_id,omitempty"`
	Inventory *engine.Inventory `json:"inventory"`
}

func (s *Server) handleInventory(w http.ResponseWriter, r *http.Request) {
	var req inventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, eris.Wrap(err, "server: decode inventory request"))
		return
	}
	if len(req.Activities) == 0 {
		writeError(w, http.StatusBadRequest, eris.New("server: activities is required"))
		return
	}

	inv, err := s.calc.CalculateInventory(r.Context(), req.Activities, req.Name, req.Year)
	if err != nil {
		writeError(w, calcStatus(err), err)
		return
	}

	resp := inventoryResponse{Inventory: inv}
	if req.Save {
		if s.store == nil {
			writeError(w, http.StatusBadRequest, eris.New("server: run store is not configured"))
			return
		}
		run, err := s.store.SaveInventory(r.Context(), inv)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		resp.RunID = run.ID
		zap.L().Info("inventory saved", zap.String("run_id", run.ID))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleFactors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	src, ok := factors.ParseSource(q.Get("source"))
	if !ok {
		writeError(w, http.StatusBadRequest, eris.Errorf("server: unknown source %q", q.Get("source")))
		return
	}

	limit := 20
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, eris.Errorf("server: invalid limit %q", raw))
			return
		}
		limit = n
	}

	results := s.registry.Search(factors.Query{
		Text:         q.Get("q"),
		Source:       src,
		Category:     q.Get("category"),
		FuelType:     q.Get("fuel_type"),
		Region:       q.Get("region"),
		ActivityUnit: q.Get("unit"),
		Limit:        limit,
	})
	writeJSON(w, http.StatusOK, map[string]any{
		"count":   len(results),
		"factors": results,
	})
}

type gwpEntry struct {
	Gas   string  `json:"gas"`
	Value float64 `json:"value"`
}

func (s *Server) handleGWP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	assessment, err := gwp.ParseAssessment(q.Get("assessment"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if gas := q.Get("gas"); gas != "" {
		v, err := gwp.Lookup(gas, assessment)
		if err != nil {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"gas":        gas,
			"assessment": assessment,
			"value":      v,
		})
		return
	}

	gases := gwp.Gases(assessment)
	entries := make([]gwpEntry, 0, len(gases))
	for _, g := range gases {
		v, _ := gwp.Lookup(g, assessment)
		entries = append(entries, gwpEntry{Gas: g, Value: v})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"assessment": assessment,
		"gases":      entries,
	})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusBadRequest, eris.New("server: run store is not configured"))
		return
	}

	var filter store.RunFilter
	q := r.URL.Query()
	if raw := q.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, eris.Errorf("server: invalid year %q", raw))
			return
		}
		filter.Year = year
	}
	filter.Name = q.Get("name")

	runs, err := s.store.ListRuns(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"count": len(runs), "runs": runs})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusBadRequest, eris.New("server: run store is not configured"))
		return
	}

	run, err := s.store.GetRun(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrRunNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusBadRequest, eris.New("server: run store is not configured"))
		return
	}

	err := s.store.DeleteRun(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrRunNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

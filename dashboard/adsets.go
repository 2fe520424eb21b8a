package dashboard

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/predicto/predicto-ads-dashboard/facebook"
)

type adSetChange struct {
	AdSetID       string  `json:"adset_id"`
	AdName        string  `json:"ad_name"`
	NewBudget     float64 `json:"new_budget"`
	CurrentBudget float64 `json:"current_budget"`
	NewStatus     string  `json:"new_status"`
	CurrentStatus string  `json:"current_status"`
}

// update applies a batch of ad set changes posted by the dashboard page.
// Rows without an effective change (or without an ad set ID) are skipped
// rather than failed.
func (s *Server) update(w http.ResponseWriter, rq *http.Request) {
	if rq.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.adsets == nil {
		http.Error(w, "ad set updates are not configured", http.StatusServiceUnavailable)
		return
	}

	changes := []adSetChange{}
	if err := json.NewDecoder(rq.Body).Decode(&changes); err != nil {
		http.Error(w, fmt.Sprintf("invalid request (%v)", err), http.StatusBadRequest)
		return
	}

	updates := []facebook.Update{}
	for _, change := range changes {
		update := facebook.Changes(change.AdSetID, change.AdName, change.NewBudget, change.CurrentBudget, change.NewStatus, change.CurrentStatus)
		if update.AdSetID != "" && !update.Empty() {
			updates = append(updates, update)
		}
	}

	result := s.adsets.ApplyAll(rq.Context(), updates)

	info(fmt.Sprintf("applied %d ad set update(s), %d failed, %d skipped", result.Applied, result.Failed, len(changes)-len(updates)))

	response := struct {
		facebook.Result
		Skipped int `json:"skipped"`
	}{
		Result:  result,
		Skipped: len(changes) - len(updates),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

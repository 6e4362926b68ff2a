package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gridview/server/internal/service/multiview"
	"github.com/gridview/server/pkg/rest"
)

type activateCellResponse struct {
	CellID      string   `json:"cell_id"`
	EvictedCell string   `json:"evicted_cell,omitempty"`
	ActiveCells []string `json:"active_cells"`
}

func (c controller) activateCell(w http.ResponseWriter, r *http.Request) {
	cellID := chi.URLParam(r, "cell-id")

	evicted, err := c.multiviewService.ActivateCell(cellID)
	if err != nil {
		c.logger.DebugContext(r.Context(), "failed to activate cell", "error", err)
		c.writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": activateCellResponse{
		CellID:      cellID,
		EvictedCell: evicted,
		ActiveCells: c.multiviewService.ActiveCells(),
	}})
}

func (c controller) deactivateCell(w http.ResponseWriter, r *http.Request) {
	cellID := chi.URLParam(r, "cell-id")

	c.multiviewService.DeactivateCell(cellID)

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": c.multiviewService.ActiveCells()})
}

type poolResponse struct {
	ActiveCells []string `json:"active_cells"`
	IsFull      bool     `json:"is_full"`
}

func (c controller) getPool(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": poolResponse{
		ActiveCells: c.multiviewService.ActiveCells(),
		IsFull:      c.multiviewService.IsPoolFull(),
	}})
}

func (c controller) clearPool(w http.ResponseWriter, r *http.Request) {
	c.multiviewService.DeactivateAll()

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": []string{}})
}

type updatePlayerStateInput struct {
	Muted        bool     `json:"muted"`
	Volume       int      `json:"volume" validate:"gte=0,lte=100"`
	Playing      bool     `json:"playing"`
	CurrentTime  *float64 `json:"current_time"`
	PlaybackRate *float64 `json:"playback_rate"`
}

func (c controller) updatePlayerState(w http.ResponseWriter, r *http.Request) {
	cellID := chi.URLParam(r, "cell-id")

	var req updatePlayerStateInput
	if err := rest.ReadJSON(r, &req); err != nil {
		c.logger.DebugContext(r.Context(), "failed to read json", "error", err)
		rest.WriteJSON(w, http.StatusUnprocessableEntity, rest.Envelope{"error": err.Error()})
		return
	}

	if validationErrors, ok := c.validate.Validate(req); !ok {
		rest.WriteJSON(w, http.StatusBadRequest, rest.Envelope{"errors": validationErrors})
		return
	}

	state, err := c.multiviewService.UpdatePlayerState(&multiview.UpdatePlayerStateParams{
		CellID:       cellID,
		Muted:        req.Muted,
		Volume:       req.Volume,
		Playing:      req.Playing,
		CurrentTime:  req.CurrentTime,
		PlaybackRate: req.PlaybackRate,
	})
	if err != nil {
		c.logger.DebugContext(r.Context(), "failed to update player state", "error", err)
		c.writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": state})
}

type setMuteOthersInput struct {
	Enabled     bool   `json:"enabled"`
	FocusCellID string `json:"focus_cell_id"`
}

func (c controller) setMuteOthers(w http.ResponseWriter, r *http.Request) {
	var req setMuteOthersInput
	if err := rest.ReadJSON(r, &req); err != nil {
		c.logger.DebugContext(r.Context(), "failed to read json", "error", err)
		rest.WriteJSON(w, http.StatusUnprocessableEntity, rest.Envelope{"error": err.Error()})
		return
	}

	c.multiviewService.SetMuteOthers(req.Enabled, req.FocusCellID)

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": req.Enabled})
}

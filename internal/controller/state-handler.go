package controller

import (
	"net/http"

	"github.com/gridview/server/pkg/rest"
)

func (c controller) getState(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": c.multiviewService.Snapshot()})
}

func (c controller) saveState(w http.ResponseWriter, r *http.Request) {
	if err := c.multiviewService.Save(r.Context()); err != nil {
		c.logger.WarnContext(r.Context(), "failed to save state", "error", err)
		c.writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": "saved"})
}

type loadStateResponse struct {
	Loaded   bool `json:"loaded"`
	Snapshot any  `json:"snapshot"`
}

func (c controller) loadState(w http.ResponseWriter, r *http.Request) {
	loaded, err := c.multiviewService.Load(r.Context())
	if err != nil {
		c.logger.WarnContext(r.Context(), "failed to load state", "error", err)
		c.writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": loadStateResponse{
		Loaded:   loaded,
		Snapshot: c.multiviewService.Snapshot(),
	}})
}

func (c controller) reconcileState(w http.ResponseWriter, r *http.Request) {
	c.multiviewService.Reconcile()

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": c.multiviewService.Snapshot()})
}

func (c controller) startGesture(w http.ResponseWriter, r *http.Request) {
	c.multiviewService.BeginGesture()

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": true})
}

func (c controller) stopGesture(w http.ResponseWriter, r *http.Request) {
	c.multiviewService.EndGesture()

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": false})
}

type fetchMetadataInput struct {
	VideoIDs []string `json:"video_ids" validate:"required,min=1,max=32,dive,min=1"`
}

func (c controller) fetchMetadata(w http.ResponseWriter, r *http.Request) {
	var req fetchMetadataInput
	if err := rest.ReadJSON(r, &req); err != nil {
		c.logger.DebugContext(r.Context(), "failed to read json", "error", err)
		rest.WriteJSON(w, http.StatusUnprocessableEntity, rest.Envelope{"error": err.Error()})
		return
	}

	if validationErrors, ok := c.validate.Validate(req); !ok {
		rest.WriteJSON(w, http.StatusBadRequest, rest.Envelope{"errors": validationErrors})
		return
	}

	metadata := c.multiviewService.FetchMetadata(r.Context(), req.VideoIDs)

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": metadata})
}

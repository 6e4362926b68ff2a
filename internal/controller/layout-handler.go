package controller

import (
	"net/http"

	"github.com/gridview/server/internal/service/multiview"
	"github.com/gridview/server/pkg/rest"
)

func (c controller) encodeLayout(w http.ResponseWriter, r *http.Request) {
	includeContentIDs := r.URL.Query().Get("include-content") == "true"

	encoded, err := c.multiviewService.EncodeLayout(includeContentIDs)
	if err != nil {
		c.logger.WarnContext(r.Context(), "failed to encode layout", "error", err)
		c.writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": encoded})
}

type decodeLayoutInput struct {
	Encoded string `json:"encoded" validate:"required"`
}

type decodeLayoutResponse struct {
	Layout  []multiview.LayoutItem           `json:"layout"`
	Content map[string]multiview.CellContent `json:"content"`
}

func (c controller) decodeLayout(w http.ResponseWriter, r *http.Request) {
	var req decodeLayoutInput
	if err := rest.ReadJSON(r, &req); err != nil {
		c.logger.DebugContext(r.Context(), "failed to read json", "error", err)
		rest.WriteJSON(w, http.StatusUnprocessableEntity, rest.Envelope{"error": err.Error()})
		return
	}

	if validationErrors, ok := c.validate.Validate(req); !ok {
		rest.WriteJSON(w, http.StatusBadRequest, rest.Envelope{"errors": validationErrors})
		return
	}

	layout, content, err := c.multiviewService.DecodeLayout(req.Encoded)
	if err != nil {
		c.logger.DebugContext(r.Context(), "failed to decode layout", "error", err)
		rest.WriteJSON(w, http.StatusBadRequest, rest.Envelope{"error": err.Error()})
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": decodeLayoutResponse{
		Layout:  layout,
		Content: content,
	}})
}

func (c controller) importLayout(w http.ResponseWriter, r *http.Request) {
	var req decodeLayoutInput
	if err := rest.ReadJSON(r, &req); err != nil {
		c.logger.DebugContext(r.Context(), "failed to read json", "error", err)
		rest.WriteJSON(w, http.StatusUnprocessableEntity, rest.Envelope{"error": err.Error()})
		return
	}

	if validationErrors, ok := c.validate.Validate(req); !ok {
		rest.WriteJSON(w, http.StatusBadRequest, rest.Envelope{"errors": validationErrors})
		return
	}

	snapshot, err := c.multiviewService.ImportLayout(req.Encoded)
	if err != nil {
		c.logger.DebugContext(r.Context(), "failed to import layout", "error", err)
		rest.WriteJSON(w, http.StatusBadRequest, rest.Envelope{"error": err.Error()})
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": snapshot})
}

func (c controller) validateLayout(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": c.multiviewService.ValidateLayout()})
}

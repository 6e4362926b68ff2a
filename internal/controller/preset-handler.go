package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gridview/server/pkg/rest"
)

func (c controller) listPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := c.multiviewService.ListPresets(r.Context())
	if err != nil {
		c.logger.WarnContext(r.Context(), "failed to list presets", "error", err)
		c.writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": presets})
}

type savePresetInput struct {
	Name string `json:"name" validate:"required,max=64"`
}

func (c controller) savePreset(w http.ResponseWriter, r *http.Request) {
	var req savePresetInput
	if err := rest.ReadJSON(r, &req); err != nil {
		c.logger.DebugContext(r.Context(), "failed to read json", "error", err)
		rest.WriteJSON(w, http.StatusUnprocessableEntity, rest.Envelope{"error": err.Error()})
		return
	}

	if validationErrors, ok := c.validate.Validate(req); !ok {
		rest.WriteJSON(w, http.StatusBadRequest, rest.Envelope{"errors": validationErrors})
		return
	}

	preset, err := c.multiviewService.SavePreset(r.Context(), req.Name)
	if err != nil {
		c.logger.WarnContext(r.Context(), "failed to save preset", "error", err)
		c.writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, rest.Envelope{"data": preset})
}

func (c controller) applyPreset(w http.ResponseWriter, r *http.Request) {
	presetID := chi.URLParam(r, "preset-id")

	snapshot, err := c.multiviewService.ApplyPreset(r.Context(), presetID)
	if err != nil {
		c.logger.DebugContext(r.Context(), "failed to apply preset", "error", err)
		c.writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": snapshot})
}

func (c controller) deletePreset(w http.ResponseWriter, r *http.Request) {
	presetID := chi.URLParam(r, "preset-id")

	if err := c.multiviewService.DeletePreset(r.Context(), presetID); err != nil {
		c.logger.DebugContext(r.Context(), "failed to delete preset", "error", err)
		c.writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": presetID})
}

package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gridview/server/internal/service/multiview"
	"github.com/gridview/server/pkg/rest"
)

type addCellInput struct {
	W int `json:"w" validate:"required,gte=1"`
	H int `json:"h" validate:"required,gte=1"`
}

func (c controller) addCell(w http.ResponseWriter, r *http.Request) {
	var req addCellInput
	if err := rest.ReadJSON(r, &req); err != nil {
		c.logger.DebugContext(r.Context(), "failed to read json", "error", err)
		rest.WriteJSON(w, http.StatusUnprocessableEntity, rest.Envelope{"error": err.Error()})
		return
	}

	if validationErrors, ok := c.validate.Validate(req); !ok {
		rest.WriteJSON(w, http.StatusBadRequest, rest.Envelope{"errors": validationErrors})
		return
	}

	item, err := c.multiviewService.AddCell(&multiview.AddCellParams{W: req.W, H: req.H})
	if err != nil {
		c.logger.DebugContext(r.Context(), "failed to add cell", "error", err)
		c.writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, rest.Envelope{"data": item})
}

func (c controller) removeCell(w http.ResponseWriter, r *http.Request) {
	cellID := chi.URLParam(r, "cell-id")

	if err := c.multiviewService.RemoveCell(cellID); err != nil {
		c.logger.DebugContext(r.Context(), "failed to remove cell", "error", err)
		c.writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": cellID})
}

type moveCellInput struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c controller) moveCell(w http.ResponseWriter, r *http.Request) {
	cellID := chi.URLParam(r, "cell-id")

	var req moveCellInput
	if err := rest.ReadJSON(r, &req); err != nil {
		c.logger.DebugContext(r.Context(), "failed to read json", "error", err)
		rest.WriteJSON(w, http.StatusUnprocessableEntity, rest.Envelope{"error": err.Error()})
		return
	}

	item, err := c.multiviewService.MoveCell(&multiview.MoveCellParams{
		CellID: cellID,
		X:      req.X,
		Y:      req.Y,
	})
	if err != nil {
		c.logger.DebugContext(r.Context(), "failed to move cell", "error", err)
		c.writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": item})
}

type resizeCellInput struct {
	W int `json:"w" validate:"required,gte=1"`
	H int `json:"h" validate:"required,gte=1"`
}

func (c controller) resizeCell(w http.ResponseWriter, r *http.Request) {
	cellID := chi.URLParam(r, "cell-id")

	var req resizeCellInput
	if err := rest.ReadJSON(r, &req); err != nil {
		c.logger.DebugContext(r.Context(), "failed to read json", "error", err)
		rest.WriteJSON(w, http.StatusUnprocessableEntity, rest.Envelope{"error": err.Error()})
		return
	}

	if validationErrors, ok := c.validate.Validate(req); !ok {
		rest.WriteJSON(w, http.StatusBadRequest, rest.Envelope{"errors": validationErrors})
		return
	}

	item, err := c.multiviewService.ResizeCell(&multiview.ResizeCellParams{
		CellID: cellID,
		W:      req.W,
		H:      req.H,
	})
	if err != nil {
		c.logger.DebugContext(r.Context(), "failed to resize cell", "error", err)
		c.writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": item})
}

type assignContentInput struct {
	Kind        string `json:"kind" validate:"required,oneof=empty video chat"`
	VideoID     string `json:"video_id"`
	VideoSource string `json:"video_source" validate:"omitempty,oneof=youtube twitch"`
	ChatTab     int    `json:"chat_tab" validate:"gte=0"`
}

func (c controller) assignContent(w http.ResponseWriter, r *http.Request) {
	cellID := chi.URLParam(r, "cell-id")

	var req assignContentInput
	if err := rest.ReadJSON(r, &req); err != nil {
		c.logger.DebugContext(r.Context(), "failed to read json", "error", err)
		rest.WriteJSON(w, http.StatusUnprocessableEntity, rest.Envelope{"error": err.Error()})
		return
	}

	if validationErrors, ok := c.validate.Validate(req); !ok {
		rest.WriteJSON(w, http.StatusBadRequest, rest.Envelope{"errors": validationErrors})
		return
	}

	cell, err := c.multiviewService.AssignContent(&multiview.AssignContentParams{
		CellID:      cellID,
		Kind:        req.Kind,
		VideoID:     req.VideoID,
		VideoSource: req.VideoSource,
		ChatTab:     req.ChatTab,
	})
	if err != nil {
		c.logger.DebugContext(r.Context(), "failed to assign content", "error", err)
		c.writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": cell})
}

func (c controller) clearContent(w http.ResponseWriter, r *http.Request) {
	cellID := chi.URLParam(r, "cell-id")

	cell, err := c.multiviewService.ClearContent(cellID)
	if err != nil {
		c.logger.DebugContext(r.Context(), "failed to clear content", "error", err)
		c.writeServiceError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": cell})
}

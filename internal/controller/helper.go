package controller

import (
	"errors"
	"net/http"

	"github.com/gridview/server/internal/service/multiview"
	"github.com/gridview/server/pkg/rest"
)

// writeServiceError maps core errors onto statuses: capacity conditions are
// conflicts, missing things are 404s, protected things are forbidden.
func (c controller) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, multiview.ErrCellNotFound), errors.Is(err, multiview.ErrPresetNotFound):
		rest.WriteJSON(w, http.StatusNotFound, rest.Envelope{"error": err.Error()})
	case errors.Is(err, multiview.ErrNoFreeSpace), errors.Is(err, multiview.ErrCellLimitReached),
		errors.Is(err, multiview.ErrNotVideoCell):
		rest.WriteJSON(w, http.StatusConflict, rest.Envelope{"error": err.Error()})
	case errors.Is(err, multiview.ErrPresetProtected):
		rest.WriteJSON(w, http.StatusForbidden, rest.Envelope{"error": err.Error()})
	default:
		rest.WriteJSON(w, http.StatusInternalServerError, rest.Envelope{"error": err.Error()})
	}
}

package controller

import (
	"net/http"
	"strings"

	"github.com/gridview/server/internal/service/multiview"
)

// streamEvents upgrades the connection and forwards session events to it.
// The optional slices query param narrows the subscription, e.g.
// ?slices=layout,pool; absent means every slice.
func (c controller) streamEvents(w http.ResponseWriter, r *http.Request) {
	var slices []multiview.Slice
	if raw := r.URL.Query().Get("slices"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			slices = append(slices, multiview.Slice(strings.TrimSpace(name)))
		}
	}

	conn, err := c.upgrader.Upgrade(w, r, nil)
	if err != nil {
		c.logger.WarnContext(r.Context(), "failed to upgrade to websocket", "error", err)
		return
	}
	defer conn.Close()

	id, events := c.multiviewService.Subscribe(slices...)
	defer c.multiviewService.Unsubscribe(id)

	// reader goroutine: drain client frames so pings are answered and a
	// close frame unblocks the writer below
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}

			if err := conn.WriteJSON(ev); err != nil {
				c.logger.DebugContext(r.Context(), "failed to write event", "error", err)
				return
			}
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}

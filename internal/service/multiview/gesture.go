package multiview

import "time"

func (s *service) newGestureTimer() *time.Timer {
	return time.AfterFunc(s.gestureTimeout, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.endGestureLocked()
	})
}

// BeginGesture marks an interactive drag or resize in progress. While set,
// the rendering layer overlays embedded players so pointer events are not
// swallowed by nested content. A safety timer clears a stuck flag if the
// stop event is lost, e.g. pointer capture released outside the viewport.
func (s *service) BeginGesture() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gestureActive = true

	if s.gestureTimer != nil {
		s.gestureTimer.Stop()
	}
	s.gestureTimer = s.newGestureTimer()

	s.publish(SliceLayout, "gesture_started", nil)
}

// EndGesture lifts the overlay unconditionally.
func (s *service) EndGesture() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.endGestureLocked()
}

func (s *service) endGestureLocked() {
	if !s.gestureActive {
		return
	}

	s.gestureActive = false
	if s.gestureTimer != nil {
		s.gestureTimer.Stop()
		s.gestureTimer = nil
	}

	s.publish(SliceLayout, "gesture_ended", nil)
}

func (s *service) GestureActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.gestureActive
}

package multiview

import "context"

// FetchMetadata resolves video metadata for the given ids, best-effort:
// unresolvable ids are simply omitted, never blocking the caller. Resolved
// entries are also attached to matching content cells.
func (s *service) FetchMetadata(ctx context.Context, videoIDs []string) []VideoMetadata {
	results := make([]VideoMetadata, 0, len(videoIDs))

	for _, id := range videoIDs {
		data, err := s.metadata.Get(ctx, id)
		if err != nil {
			s.logger.DebugContext(ctx, "skipping unresolvable video", "video_id", id, "error", err)
			continue
		}

		results = append(results, VideoMetadata{
			ID:          id,
			Title:       data.Title,
			ChannelID:   data.AuthorURL,
			ChannelName: data.AuthorName,
			Thumbnail:   data.ThumbnailURL,
		})
	}

	s.attachMetadata(results)

	return results
}

func (s *service) attachMetadata(metadata []VideoMetadata) {
	if len(metadata) == 0 {
		return
	}

	byVideo := make(map[string]VideoMetadata, len(metadata))
	for _, m := range metadata {
		byVideo[m.ID] = m
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for id, cell := range s.content {
		if cell.Kind != CellKindVideo || cell.VideoID == "" {
			continue
		}

		if m, ok := byVideo[cell.VideoID]; ok {
			m := m
			cell.Metadata = &m
			s.content[id] = cell
			changed = true
		}
	}

	if changed {
		s.publish(SliceContent, "metadata_updated", nil)
	}
}

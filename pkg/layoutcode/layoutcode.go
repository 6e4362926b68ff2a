// Package layoutcode implements the compact, URL-safe string form of a
// multiview layout. Each cell is four characters (x, y, w, h mapped onto a
// 64-character alphabet), cells are comma-separated, and an optional suffix
// carries the cell content: "chat<tab>", "twitch<channel>", or an 11-character
// YouTube video id.
package layoutcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_."

const youtubeIDLength = 11

var ErrOutOfRange = errors.New("grid position out of range (0-63)")

const (
	KindEmpty = "empty"
	KindVideo = "video"
	KindChat  = "chat"
)

const (
	SourceYouTube = "youtube"
	SourceTwitch  = "twitch"
)

type Item struct {
	ID string
	X  int
	Y  int
	W  int
	H  int
}

type Content struct {
	ID          string
	Kind        string
	VideoID     string
	VideoSource string
	ChatTab     int
}

type Encoded struct {
	Encoded        string
	VideoCellCount int
}

type Decoded struct {
	Layout         []Item
	Content        map[string]Content
	VideoCellCount int
}

// Encode serializes layout and content into the shareable string form.
// When includeContentIDs is false, video ids are stripped so the result only
// describes geometry (the form presets are stored in).
func Encode(layout []Item, content map[string]Content, includeContentIDs bool) (Encoded, error) {
	parts := make([]string, 0, len(layout))
	videoCount := 0

	for _, item := range layout {
		if item.X < 0 || item.X > 63 || item.Y < 0 || item.Y > 63 || item.W < 0 || item.W > 63 || item.H < 0 || item.H > 63 {
			return Encoded{}, ErrOutOfRange
		}

		var b strings.Builder
		b.WriteByte(alphabet[item.X])
		b.WriteByte(alphabet[item.Y])
		b.WriteByte(alphabet[item.W])
		b.WriteByte(alphabet[item.H])

		cell, ok := content[item.ID]
		if !ok {
			// cells without a content entry count as video slots
			videoCount++
			parts = append(parts, b.String())
			continue
		}

		switch cell.Kind {
		case KindChat:
			b.WriteString("chat")
			b.WriteString(strconv.Itoa(cell.ChatTab))
		case KindVideo:
			videoCount++
			if includeContentIDs && cell.VideoID != "" {
				if cell.VideoSource == SourceTwitch {
					b.WriteString("twitch")
				}
				b.WriteString(cell.VideoID)
			}
		}

		parts = append(parts, b.String())
	}

	return Encoded{
		Encoded:        strings.Join(parts, ","),
		VideoCellCount: videoCount,
	}, nil
}

// Decode parses the shareable string form back into a layout. Cell ids do not
// survive encoding, so every decoded cell gets a fresh id from newID.
func Decode(encoded string, newID func() string) (Decoded, error) {
	result := Decoded{Content: map[string]Content{}}

	if strings.TrimSpace(encoded) == "" {
		return result, nil
	}

	for _, part := range strings.Split(encoded, ",") {
		if len(part) < 4 {
			return Decoded{}, fmt.Errorf("invalid layout part: %q", part)
		}

		x, err := decodeChar(part[0])
		if err != nil {
			return Decoded{}, err
		}
		y, err := decodeChar(part[1])
		if err != nil {
			return Decoded{}, err
		}
		w, err := decodeChar(part[2])
		if err != nil {
			return Decoded{}, err
		}
		h, err := decodeChar(part[3])
		if err != nil {
			return Decoded{}, err
		}

		id := newID()
		result.Layout = append(result.Layout, Item{ID: id, X: x, Y: y, W: w, H: h})

		extra := part[4:]
		switch {
		case strings.HasPrefix(extra, "chat"):
			tab, _ := strconv.Atoi(strings.TrimPrefix(extra, "chat"))
			result.Content[id] = Content{ID: id, Kind: KindChat, ChatTab: tab}
		case strings.HasPrefix(extra, "twitch"):
			result.Content[id] = Content{
				ID:          id,
				Kind:        KindVideo,
				VideoID:     strings.TrimPrefix(extra, "twitch"),
				VideoSource: SourceTwitch,
			}
			result.VideoCellCount++
		case len(extra) == youtubeIDLength:
			result.Content[id] = Content{
				ID:          id,
				Kind:        KindVideo,
				VideoID:     extra,
				VideoSource: SourceYouTube,
			}
			result.VideoCellCount++
		default:
			result.Content[id] = Content{ID: id, Kind: KindEmpty}
			result.VideoCellCount++
		}
	}

	return result, nil
}

func decodeChar(c byte) (int, error) {
	idx := strings.IndexByte(alphabet, c)
	if idx < 0 {
		return 0, fmt.Errorf("invalid character: %q", string(c))
	}

	return idx, nil
}

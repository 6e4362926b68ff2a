package layoutcode

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("cell%d", n)
	}
}

func TestEncodeDecodeRoundtrip(t *testing.T) {
	layout := []Item{
		{ID: "a", X: 0, Y: 0, W: 12, H: 24},
		{ID: "b", X: 12, Y: 0, W: 12, H: 24},
	}

	encoded, err := Encode(layout, nil, false)
	require.NoError(t, err)
	assert.Equal(t, "AAMY,MAMY", encoded.Encoded)
	assert.Equal(t, 2, encoded.VideoCellCount)

	decoded, err := Decode(encoded.Encoded, sequentialIDs())
	require.NoError(t, err)
	require.Len(t, decoded.Layout, 2)
	assert.Equal(t, 2, decoded.VideoCellCount)
	assert.Equal(t, Item{ID: "cell1", X: 0, Y: 0, W: 12, H: 24}, decoded.Layout[0])
	assert.Equal(t, Item{ID: "cell2", X: 12, Y: 0, W: 12, H: 24}, decoded.Layout[1])
}

func TestDecodeChatCell(t *testing.T) {
	decoded, err := Decode("AAUY,UAEYchat0", sequentialIDs())
	require.NoError(t, err)
	require.Len(t, decoded.Layout, 2)

	chat := decoded.Content[decoded.Layout[1].ID]
	assert.Equal(t, KindChat, chat.Kind)
	assert.Equal(t, 0, chat.ChatTab)
	assert.Equal(t, 1, decoded.VideoCellCount)
}

func TestEncodeWithVideoIDs(t *testing.T) {
	layout := []Item{{ID: "a", X: 0, Y: 0, W: 24, H: 24}}
	content := map[string]Content{
		"a": {ID: "a", Kind: KindVideo, VideoID: "dQw4w9WgXcQ", VideoSource: SourceYouTube},
	}

	encoded, err := Encode(layout, content, true)
	require.NoError(t, err)
	assert.Equal(t, "AAYYdQw4w9WgXcQ", encoded.Encoded)

	decoded, err := Decode(encoded.Encoded, sequentialIDs())
	require.NoError(t, err)
	cell := decoded.Content["cell1"]
	assert.Equal(t, KindVideo, cell.Kind)
	assert.Equal(t, "dQw4w9WgXcQ", cell.VideoID)
	assert.Equal(t, SourceYouTube, cell.VideoSource)
}

func TestEncodeTwitchCell(t *testing.T) {
	layout := []Item{{ID: "a", X: 0, Y: 0, W: 24, H: 24}}
	content := map[string]Content{
		"a": {ID: "a", Kind: KindVideo, VideoID: "somechannel", VideoSource: SourceTwitch},
	}

	encoded, err := Encode(layout, content, true)
	require.NoError(t, err)
	assert.Equal(t, "AAYYtwitchsomechannel", encoded.Encoded)

	decoded, err := Decode(encoded.Encoded, sequentialIDs())
	require.NoError(t, err)
	cell := decoded.Content["cell1"]
	assert.Equal(t, SourceTwitch, cell.VideoSource)
	assert.Equal(t, "somechannel", cell.VideoID)
}

func TestDecodeEmptyString(t *testing.T) {
	decoded, err := Decode("", sequentialIDs())
	require.NoError(t, err)
	assert.Empty(t, decoded.Layout)
	assert.Equal(t, 0, decoded.VideoCellCount)
}

func TestDecodeInvalidPart(t *testing.T) {
	_, err := Decode("AB", sequentialIDs())
	assert.Error(t, err)
}

func TestEncodeOutOfRange(t *testing.T) {
	layout := []Item{{ID: "a", X: 70, Y: 0, W: 1, H: 1}}
	_, err := Encode(layout, nil, false)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

package controller

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/gridview/server/internal/grid"
	"github.com/gridview/server/internal/service/multiview"
	"github.com/gridview/server/pkg/validator"
)

type iMultiviewService interface {
	Snapshot() multiview.Snapshot
	ValidateLayout() grid.Result
	Reconcile()

	AddCell(*multiview.AddCellParams) (multiview.LayoutItem, error)
	RemoveCell(string) error
	MoveCell(*multiview.MoveCellParams) (multiview.LayoutItem, error)
	ResizeCell(*multiview.ResizeCellParams) (multiview.LayoutItem, error)
	AssignContent(*multiview.AssignContentParams) (multiview.CellContent, error)
	ClearContent(string) (multiview.CellContent, error)

	ActivateCell(string) (string, error)
	DeactivateCell(string)
	DeactivateAll()
	ActiveCells() []string
	IsPoolFull() bool
	UpdatePlayerState(*multiview.UpdatePlayerStateParams) (multiview.PlayerState, error)
	SetMuteOthers(enabled bool, focusCellID string)

	BeginGesture()
	EndGesture()

	ListPresets(context.Context) ([]multiview.Preset, error)
	ApplyPreset(context.Context, string) (multiview.Snapshot, error)
	SavePreset(ctx context.Context, name string) (multiview.Preset, error)
	DeletePreset(context.Context, string) error

	EncodeLayout(includeContentIDs bool) (multiview.EncodedLayout, error)
	DecodeLayout(string) ([]multiview.LayoutItem, map[string]multiview.CellContent, error)
	ImportLayout(string) (multiview.Snapshot, error)

	Save(context.Context) error
	Load(context.Context) (bool, error)
	FetchMetadata(context.Context, []string) []multiview.VideoMetadata

	Subscribe(...multiview.Slice) (int, <-chan multiview.Event)
	Unsubscribe(int)
}

type controller struct {
	multiviewService iMultiviewService
	upgrader         websocket.Upgrader
	validate         *validator.Validator
	logger           *slog.Logger
}

func NewController(multiviewService iMultiviewService, logger *slog.Logger) *controller {
	return &controller{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		multiviewService: multiviewService,
		validate:         validator.NewValidator(),
		logger:           logger,
	}
}

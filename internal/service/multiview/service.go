package multiview

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gridview/server/internal/grid"
	"github.com/gridview/server/internal/repository/multiview"
	"github.com/gridview/server/pkg/randstr"
	"github.com/gridview/server/pkg/ytoembed"
)

var (
	ErrNoFreeSpace      = errors.New("no free space for the requested cell size")
	ErrCellLimitReached = errors.New("cell limit reached")
	ErrCellNotFound     = errors.New("cell not found")
	ErrNotVideoCell     = errors.New("cell has no video content")
	ErrPresetNotFound   = errors.New("preset not found")
	ErrPresetProtected  = errors.New("built-in presets cannot be deleted")
)

type iStateRepo interface {
	SetState(context.Context, *multiview.SetStateParams) error
	GetState(context.Context) (multiview.State, error)
	SetPreset(context.Context, *multiview.SetPresetParams) error
	GetPreset(context.Context, string) (multiview.Preset, error)
	GetPresets(context.Context) ([]multiview.Preset, error)
	RemovePreset(context.Context, string) error
}

type iMetadataClient interface {
	Get(ctx context.Context, videoID string) (*ytoembed.VideoData, error)
}

type iGenerator interface {
	GenerateRandomString(length int) string
}

type Config struct {
	Grid           grid.Config
	MaxCells       int
	MaxPlayers     int
	GestureTimeout time.Duration
}

const cellIDLength = 8

// service is the session object owning the whole multiview state. All
// mutation goes through its methods; the mutex serializes them so callers
// observe the same ordering a single event loop would deliver.
type service struct {
	mu sync.Mutex

	grid           grid.Config
	maxCells       int
	gestureTimeout time.Duration

	layout         []LayoutItem
	content        map[string]CellContent
	players        map[string]PlayerState
	pool           *playerPool
	muteOthers     bool
	activePresetID *string
	gestureActive  bool
	gestureTimer   *time.Timer

	stateRepo iStateRepo
	metadata  iMetadataClient
	generator iGenerator
	broker    *broker
	logger    *slog.Logger
}

func NewService(stateRepo iStateRepo, metadata iMetadataClient, cfg *Config, logger *slog.Logger) *service {
	gestureTimeout := cfg.GestureTimeout
	if gestureTimeout <= 0 {
		gestureTimeout = 3 * time.Second
	}

	maxPlayers := cfg.MaxPlayers
	if maxPlayers <= 0 {
		maxPlayers = 6
	}

	s := service{
		grid:           cfg.Grid,
		maxCells:       cfg.MaxCells,
		gestureTimeout: gestureTimeout,
		content:        make(map[string]CellContent),
		players:        make(map[string]PlayerState),
		pool:           newPlayerPool(maxPlayers),
		stateRepo:      stateRepo,
		metadata:       metadata,
		broker:         newBroker(),
		logger:         logger,
	}

	letterBytes := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_.")
	s.generator = randstr.New(letterBytes)

	return &s
}

func (s *service) newCellID() string {
	return s.generator.GenerateRandomString(cellIDLength)
}

// Snapshot returns a deep copy of the current session state, including the
// position-dependent size constraints the interactive layer needs.
func (s *service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *service) snapshotLocked() Snapshot {
	layout := make([]LayoutItem, len(s.layout))
	copy(layout, s.layout)

	content := make(map[string]CellContent, len(s.content))
	for id, cell := range s.content {
		content[id] = cell
	}

	players := make(map[string]PlayerState, len(s.players))
	for id, state := range s.players {
		players[id] = state
	}

	constraints := make(map[string]SizeConstraint, len(layout))
	for _, item := range layout {
		maxW, maxH := s.grid.Constraints(item.toGrid())
		constraints[item.ID] = SizeConstraint{MaxW: maxW, MaxH: maxH}
	}

	return Snapshot{
		Layout:         layout,
		Content:        content,
		PlayerStates:   players,
		ActiveCells:    s.pool.active(),
		MuteOthers:     s.muteOthers,
		ActivePresetID: s.activePresetID,
		GestureActive:  s.gestureActive,
		Constraints:    constraints,
	}
}

// ValidateLayout reports on the current arrangement without mutating it.
func (s *service) ValidateLayout() grid.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.grid.ValidateLayout(s.gridLayoutLocked(), s.maxCells)
}

func (s *service) gridLayoutLocked() []grid.Item {
	items := make([]grid.Item, len(s.layout))
	for i, item := range s.layout {
		items[i] = item.toGrid()
	}

	return items
}

func (s *service) findItemLocked(cellID string) (int, bool) {
	for i, item := range s.layout {
		if item.ID == cellID {
			return i, true
		}
	}

	return 0, false
}

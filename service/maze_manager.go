package service

import (
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/beka-birhanu/voxmaze/maze"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// Default dimensions used when a caller leaves them zero. 9x9x5 is the
	// size the interactive demo always used.
	defaultMazeWidth  = 9
	defaultMazeHeight = 9
	defaultMazeDepth  = 5

	// maxLiveMazes caps the registry. Mazes live until deleted, so an
	// unbounded map would grow with every create.
	maxLiveMazes = 64
)

var (
	// ErrMazeNotFound indicates the given ID is not in the registry.
	ErrMazeNotFound = errors.New("maze not found")

	// ErrRegistryFull indicates the registry reached maxLiveMazes.
	ErrRegistryFull = errors.New("too many live mazes")
)

// MazeFactory builds a fully generated maze. A zero seed means the factory
// seeds itself.
type MazeFactory func(width, height, depth int, seed int64) (*maze.Grid, error)

// SolveFunc finds the shortest path between two cells of a maze.
type SolveFunc func(g *maze.Grid, start, end maze.CellPosition) ([]maze.CellPosition, error)

// MazeManager keeps generated mazes in memory, keyed by ID. Nothing
// survives the process; the registry is session bookkeeping, not storage.
type MazeManager struct {
	mazes   map[uuid.UUID]*maze.Grid
	factory MazeFactory
	solve   SolveFunc
	logger  *logrus.Entry
	sync.RWMutex
}

// Config holds dependencies for creating a MazeManager. Nil fields fall
// back to the package defaults.
type Config struct {
	Factory MazeFactory
	Solver  SolveFunc
	Logger  *logrus.Entry
}

// NewMazeManager creates a manager with an empty registry.
func NewMazeManager(c *Config) (*MazeManager, error) {
	if c == nil {
		c = &Config{}
	}

	factory := c.Factory
	if factory == nil {
		factory = DefaultMazeFactory
	}
	solve := c.Solver
	if solve == nil {
		solve = maze.Solve
	}
	logger := c.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	return &MazeManager{
		mazes:   make(map[uuid.UUID]*maze.Grid),
		factory: factory,
		solve:   solve,
		logger:  logger,
	}, nil
}

// DefaultMazeFactory creates a grid and carves a perfect maze into it. A
// nonzero seed pins the random stream so the same arguments reproduce the
// same maze.
func DefaultMazeFactory(width, height, depth int, seed int64) (*maze.Grid, error) {
	grid, err := maze.New(width, height, depth)
	if err != nil {
		return nil, err
	}

	var rng maze.Rand
	if seed != 0 {
		rng = rand.New(rand.NewPCG(uint64(seed), 0))
	}
	if err := maze.NewGenerator(rng).Generate(grid); err != nil {
		return nil, err
	}
	return grid, nil
}

// Create generates a maze and registers it under a fresh ID. Zero
// dimensions fall back to the defaults; generation runs outside the
// registry lock.
func (m *MazeManager) Create(width, height, depth int, seed int64) (uuid.UUID, error) {
	if width == 0 {
		width = defaultMazeWidth
	}
	if height == 0 {
		height = defaultMazeHeight
	}
	if depth == 0 {
		depth = defaultMazeDepth
	}

	grid, err := m.factory(width, height, depth, seed)
	if err != nil {
		m.logger.Errorf("creating %dx%dx%d maze: %s", width, height, depth, err)
		return uuid.Nil, err
	}

	id, err := m.register(grid)
	if err != nil {
		return uuid.Nil, err
	}

	m.logger.Infof("generated %dx%dx%d maze %s", width, height, depth, id)
	return id, nil
}

// register stores the grid under a fresh unique ID.
func (m *MazeManager) register(grid *maze.Grid) (uuid.UUID, error) {
	m.Lock()
	defer m.Unlock()

	if len(m.mazes) >= maxLiveMazes {
		return uuid.Nil, ErrRegistryFull
	}

	id := uuid.New()
	for {
		if _, ok := m.mazes[id]; !ok {
			break
		}
		id = uuid.New()
	}

	m.mazes[id] = grid
	return id, nil
}

// Grid returns the maze registered under the given ID. The returned grid
// is shared with every other caller and must be treated as read-only.
func (m *MazeManager) Grid(id uuid.UUID) (*maze.Grid, error) {
	m.RLock()
	defer m.RUnlock()

	grid, ok := m.mazes[id]
	if !ok {
		return nil, ErrMazeNotFound
	}
	return grid, nil
}

// Solve runs a fresh shortest-path search from the maze's start to its
// end. A generated maze always has exactly one such path, so a solver
// error here means the maze was corrupted.
func (m *MazeManager) Solve(id uuid.UUID) ([]maze.CellPosition, error) {
	grid, err := m.Grid(id)
	if err != nil {
		return nil, err
	}

	path, err := m.solve(grid, grid.Start(), grid.End())
	if err != nil {
		m.logger.Errorf("solving maze %s: %s", id, err)
		return nil, err
	}
	return path, nil
}

// Delete drops the maze registered under the given ID.
func (m *MazeManager) Delete(id uuid.UUID) error {
	m.Lock()
	defer m.Unlock()

	if _, ok := m.mazes[id]; !ok {
		return ErrMazeNotFound
	}

	delete(m.mazes, id)
	return nil
}

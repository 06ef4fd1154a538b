package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/voxmaze/maze"
	"github.com/beka-birhanu/voxmaze/service"
	"github.com/beka-birhanu/voxmaze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MazeController manages maze resources over REST.
type MazeController struct {
	manager i.MazeManager
	logger  *logrus.Entry
}

// NewMazeController initializes a MazeController.
func NewMazeController(manager i.MazeManager, logger *logrus.Entry) (*MazeController, error) {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	return &MazeController{
		manager: manager,
		logger:  logger,
	}, nil
}

// RegisterRoutes registers the maze routes.
func (c *MazeController) RegisterRoutes(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", c.create)
		mazes.GET("/:id", c.get)
		mazes.GET("/:id/solution", c.solution)
		mazes.GET("/:id/ascii", c.ascii)
		mazes.DELETE("/:id", c.remove)
	}
}

// mazeID parses the :id route parameter. On failure it writes the error
// response and reports false.
func mazeID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

// create handles maze generation requests.
func (c *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := c.manager.Create(request.Width, request.Height, request.Depth, request.Seed)
	switch {
	case errors.Is(err, maze.ErrInvalidDimension):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, service.ErrRegistryFull):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.logger.Errorf("creating maze: %s", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while creating maze"})
		return
	}

	grid, err := c.manager.Grid(id)
	if err != nil {
		c.logger.Errorf("reading back maze %s: %s", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while creating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(id, grid))
}

// get returns the wall-and-dimension view of a maze.
func (c *MazeController) get(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	grid, err := c.manager.Grid(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(id, grid))
}

// solution returns the shortest start-to-end path of a maze.
func (c *MazeController) solution(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	path, err := c.manager.Solve(id)
	switch {
	case errors.Is(err, service.ErrMazeNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.logger.Errorf("solving maze %s: %s", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while solving maze"})
		return
	}

	ctx.JSON(http.StatusOK, newSolutionResponse(id, path))
}

// ascii returns the layered text rendering of a maze with its solution
// overlaid.
func (c *MazeController) ascii(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	grid, err := c.manager.Grid(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	path, err := c.manager.Solve(id)
	if err != nil {
		c.logger.Errorf("solving maze %s: %s", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while rendering maze"})
		return
	}

	ctx.String(http.StatusOK, grid.Render(path))
}

// remove drops a maze from the registry.
func (c *MazeController) remove(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	if err := c.manager.Delete(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

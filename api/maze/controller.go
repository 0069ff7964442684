package mazeapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yared-h/maze-quest/game"
	"github.com/yared-h/maze-quest/maze"
)

// Controller serves maze generation requests. It is stateless: every
// request generates a fresh maze and nothing is retained afterward.
type Controller struct {
	logger *logrus.Logger
}

// NewController initializes a maze Controller.
func NewController(logger *logrus.Logger) *Controller {
	return &Controller{logger: logger}
}

// Register registers the controller's routes.
func (c *Controller) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", c.generate)
	}
}

// generate handles maze creation requests.
func (c *Controller) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := game.Generate(game.Algorithm(request.Algorithm), request.Height, request.Width)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.logger.WithFields(logrus.Fields{
		"height":    request.Height,
		"width":     request.Width,
		"algorithm": request.Algorithm,
		"solvable":  m.Solvable(),
	}).Info("generated maze")

	ctx.JSON(http.StatusCreated, toResponse(m))
}

func toResponse(m *maze.Maze) GenerateResponse {
	resp := GenerateResponse{
		ID:       uuid.New(),
		Height:   m.Height(),
		Width:    m.Width(),
		Start:    toPosition(m.Start()),
		End:      toPosition(m.End()),
		Solvable: m.Solvable(),
		Lines:    m.Render(nil, nil),
	}
	for _, p := range m.ShortestPath() {
		resp.ShortestPath = append(resp.ShortestPath, toPosition(p))
	}
	return resp
}

func toPosition(p maze.CellPosition) Position {
	return Position{X: p.X, Y: p.Y}
}

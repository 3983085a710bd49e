package tracker

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers provides HTTP handlers for the tracker API
type Handlers struct {
	service *Service
	logger  *zap.Logger
}

// NewHandlers creates new tracker handlers
func NewHandlers(service *Service, logger *zap.Logger) *Handlers {
	return &Handlers{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the tracker routes on the /api group
func (h *Handlers) RegisterRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.ListUsers)
		users.POST("/:id/exercises", h.AddExercise)
		users.GET("/:id/logs", h.GetLog)
	}
}

// CreateUser handles POST /api/users
func (h *Handlers) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBind(&req); err != nil && c.ContentType() != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /api/users
func (h *Handlers) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, users)
}

// AddExercise handles POST /api/users/:id/exercises
func (h *Handlers) AddExercise(c *gin.Context) {
	userID := c.Param("id")

	in, ok := h.bindExerciseInput(c)
	if !ok {
		return
	}

	exercise, err := h.service.AddExercise(c.Request.Context(), userID, in)
	if err != nil {
		h.respondError(c, err, "Failed to add exercise", zap.String("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, exercise)
}

// GetLog handles GET /api/users/:id/logs
func (h *Handlers) GetLog(c *gin.Context) {
	userID := c.Param("id")

	q := LogQuery{
		From:  c.Query("from"),
		To:    c.Query("to"),
		Limit: c.Query("limit"),
	}

	log, err := h.service.GetLog(c.Request.Context(), userID, q)
	if err != nil {
		h.respondError(c, err, "Failed to get log", zap.String("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, log)
}

// bindExerciseInput reads the exercise fields from either a JSON body or an
// urlencoded form. Duration stays loosely typed until the coercion layer; a
// form always delivers it as a string, JSON may deliver a number.
func (h *Handlers) bindExerciseInput(c *gin.Context) (*ExerciseInput, bool) {
	contentType := c.ContentType()
	if strings.Contains(contentType, "json") {
		var in ExerciseInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return nil, false
		}
		return &in, true
	}

	in := &ExerciseInput{
		Description: c.PostForm("description"),
		Date:        c.PostForm("date"),
	}
	if duration, ok := c.GetPostForm("duration"); ok {
		in.Duration = duration
	}
	return in, true
}

// respondError maps tracker error kinds to HTTP statuses. Storage and
// unclassified errors become a generic 500 with no internal detail.
func (h *Handlers) respondError(c *gin.Context, err error, msg string, fields ...zap.Field) {
	switch ErrorKind(err) {
	case ErrorKindMissingField, ErrorKindInvalidNumber:
		c.JSON(http.StatusBadRequest, gin.H{"error": trackerMessage(err)})
	case ErrorKindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": trackerMessage(err)})
	default:
		h.logger.Error(msg, append(fields, zap.Error(err))...)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}

func trackerMessage(err error) string {
	var te *TrackerError
	if errors.As(err, &te) {
		return te.Message
	}
	return "server error"
}

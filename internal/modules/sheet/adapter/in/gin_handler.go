package in

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	sheetin "healthlog/internal/modules/sheet/port/in"
	apperrors "healthlog/internal/platform/errors"
)

// GinHandler serves the spreadsheet script contract: GET lists every row,
// POST appends one JSON object.
type GinHandler struct {
	usecase sheetin.Usecase
}

func NewGinHandler(usecase sheetin.Usecase) GinHandler {
	return GinHandler{usecase: usecase}
}

func (h GinHandler) Register(r gin.IRoutes, path string) {
	r.GET(path, h.List)
	r.POST(path, h.Append)
}

func (h GinHandler) List(c *gin.Context) {
	rows, err := h.usecase.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h GinHandler) Append(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": "error", "error": err.Error()})
		return
	}
	if err := h.usecase.Append(c.Request.Context(), payload); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, apperrors.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"result": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": "success"})
}

package in

import (
	"io"

	"github.com/gin-gonic/gin"

	"healthlog/internal/modules/proxy/dto"
	proxyin "healthlog/internal/modules/proxy/port/in"
)

type GinHandler struct {
	usecase proxyin.Usecase
}

func NewGinHandler(usecase proxyin.Usecase) GinHandler {
	return GinHandler{usecase: usecase}
}

// Register mounts the proxy on path for every method; unsupported methods get
// a 405 from the usecase. Any only covers the standard methods, so the rest
// reach the handler through NoRoute.
func (h GinHandler) Register(r *gin.Engine, path string) {
	r.Any(path, h.Handle)
	r.NoRoute(func(c *gin.Context) {
		if c.Request.URL.Path == path {
			h.Handle(c)
		}
	})
}

func (h GinHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.write(c, dto.Failure(err))
		return
	}
	h.write(c, h.usecase.Handle(c.Request.Context(), c.Request.Method, body))
}

func (h GinHandler) write(c *gin.Context, reply dto.Reply) {
	c.Data(reply.Status, reply.ContentType, reply.Body)
}

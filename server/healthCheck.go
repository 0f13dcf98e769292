package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type healthCheckResponse struct {
	Ok      bool   `json:"ok"`
	Site    string `json:"site"`
	Version string `json:"version,omitempty"`
}

func (s *Server) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, healthCheckResponse{
		Ok:      true,
		Site:    s.indexer.Site(),
		Version: s.Params.Version,
	})
}

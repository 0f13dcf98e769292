package server

import (
	"github.com/gin-gonic/gin"

	"github.com/sp0x/nyaarss/indexer/search"
)

func (s *Server) setupRoutes(r *gin.Engine) {
	searchGroup := r.Group("search")
	{
		searchGroup.GET("/single", s.searchHandler(search.ModeSingle))
		searchGroup.GET("/batch", s.searchHandler(search.ModeBatch))
		searchGroup.GET("/movie", s.searchHandler(search.ModeMovie))
	}
	r.GET("/health", s.HealthCheck)
}

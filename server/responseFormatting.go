package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sp0x/nyaarss/indexer/search"
	"github.com/sp0x/nyaarss/server/rss"
)

const formatJSON = "json"

type errorResponse struct {
	Error string `json:"error"`
}

func errorOutput(c *gin.Context, code int, err error) {
	c.AbortWithStatusJSON(code, errorResponse{Error: err.Error()})
}

func jsonOutput(c *gin.Context, releases []search.Release) {
	if releases == nil {
		releases = []search.Release{}
	}
	c.JSON(http.StatusOK, releases)
}

func feedOutput(c *gin.Context, site, name, format string, releases []search.Release) {
	err := rss.SendRssFeed(site, name, format, releases, c)
	if err != nil {
		errorOutput(c, http.StatusInternalServerError, err)
	}
}

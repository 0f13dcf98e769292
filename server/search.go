package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sp0x/nyaarss/indexer/search"
	"github.com/sp0x/nyaarss/server/rss"
)

func (s *Server) searchHandler(mode search.Mode) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, err := parseQuery(c)
		if err != nil {
			errorOutput(c, http.StatusBadRequest, err)
			return
		}
		format := c.DefaultQuery("format", formatJSON)
		if format != formatJSON && format != rss.FormatRss && format != rss.FormatAtom {
			errorOutput(c, http.StatusBadRequest, fmt.Errorf("unsupported format %q", format))
			return
		}
		ctx := c.Request.Context()
		var releases []search.Release
		switch mode {
		case search.ModeSingle:
			releases = s.indexer.Single(ctx, query)
		case search.ModeBatch:
			releases = s.indexer.Batch(ctx, query)
		case search.ModeMovie:
			releases = s.indexer.Movie(ctx, query)
		}
		if format == formatJSON {
			jsonOutput(c, releases)
			return
		}
		feedOutput(c, s.indexer.Site(), fmt.Sprintf("%s %s", mode, query.Title()), format, releases)
	}
}

// parseQuery reads the search request out of the url query.
func parseQuery(c *gin.Context) (*search.Query, error) {
	query := &search.Query{
		Titles:     c.QueryArray("title"),
		Exclusions: c.QueryArray("exclude"),
	}
	var err error
	if query.Episode, err = intParam(c, "episode"); err != nil {
		return nil, err
	}
	if query.Resolution, err = intParam(c, "resolution"); err != nil {
		return nil, err
	}
	return query, nil
}

func intParam(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return value, nil
}

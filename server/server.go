package server

import (
	"fmt"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/sp0x/nyaarss/config"
	"github.com/sp0x/nyaarss/indexer"
)

type Server struct {
	indexer indexer.Indexer
	config  config.Config
	Params  Params
}

type Params struct {
	Port    int
	Version string
	Pprof   bool
}

func NewServer(conf config.Config, ix indexer.Indexer) *Server {
	s := &Server{
		indexer: ix,
		config:  conf,
	}
	s.Params = Params{
		Port:  conf.GetInt("port"),
		Pprof: conf.GetBool("pprof"),
	}
	if s.Params.Port == 0 {
		s.Params.Port = config.DefaultPort
	}
	return s
}

// Handler builds the gin engine with all the routes set up.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(log.StandardLogger()))
	s.setupRoutes(r)
	if s.Params.Pprof {
		pprof.Register(r)
	}
	return r
}

// Listen serves the search routes until the server fails.
func (s *Server) Listen() error {
	log.WithFields(log.Fields{"port": s.Params.Port, "site": s.indexer.Site(), "version": s.Params.Version}).
		Info("Starting server")
	return s.Handler().Run(fmt.Sprintf(":%d", s.Params.Port))
}

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/onsi/gomega"
	"github.com/stretchr/testify/require"

	configMocks "github.com/sp0x/nyaarss/config/mocks"
	"github.com/sp0x/nyaarss/indexer/mocks"
	"github.com/sp0x/nyaarss/indexer/search"
)

const testSite = "https://nyaa.example"

func newTestServer(t *testing.T, ctrl *gomock.Controller, ix *mocks.MockIndexer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := configMocks.NewMockConfig(ctrl)
	cfg.EXPECT().GetInt("port").Return(0)
	cfg.EXPECT().GetBool("pprof").Return(false)
	s := NewServer(cfg, ix)
	require.Equal(t, 5000, s.Params.Port)
	return s.Handler()
}

func serve(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestServer_SingleShouldPassTheQueryThrough(t *testing.T) {
	g := gomega.NewWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ix := mocks.NewMockIndexer(ctrl)
	ix.EXPECT().Single(gomock.Any(), &search.Query{
		Titles:     []string{"Show", "Alt"},
		Episode:    5,
		Resolution: 1080,
		Exclusions: []string{"HEVC"},
	}).Return([]search.Release{{Title: "Show - 05", Hash: "aaa"}})
	r := newTestServer(t, ctrl, ix)

	w := serve(r, "/search/single?title=Show&title=Alt&episode=5&resolution=1080&exclude=HEVC")

	g.Expect(w.Code).To(gomega.Equal(http.StatusOK))
	g.Expect(w.Header().Get(requestIDHeader)).ToNot(gomega.BeEmpty())
	var got []search.Release
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	g.Expect(got).To(gomega.HaveLen(1))
	g.Expect(got[0].Hash).To(gomega.Equal("aaa"))
}

func TestServer_EmptyResultsShouldBeAnEmptyList(t *testing.T) {
	g := gomega.NewWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ix := mocks.NewMockIndexer(ctrl)
	ix.EXPECT().Batch(gomock.Any(), gomock.Any()).Return(nil)
	r := newTestServer(t, ctrl, ix)

	w := serve(r, "/search/batch?title=Show")

	g.Expect(w.Code).To(gomega.Equal(http.StatusOK))
	g.Expect(w.Body.String()).To(gomega.Equal("[]"))
}

func TestServer_ShouldRejectBadParameters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ix := mocks.NewMockIndexer(ctrl)
	r := newTestServer(t, ctrl, ix)

	for _, target := range []string{
		"/search/single?title=Show&episode=five",
		"/search/movie?title=Show&resolution=hd",
		"/search/batch?title=Show&format=csv",
	} {
		t.Run(target, func(t *testing.T) {
			w := serve(r, target)
			require.Equal(t, http.StatusBadRequest, w.Code)
			var got errorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			require.NotEmpty(t, got.Error)
		})
	}
}

func TestServer_MovieShouldRenderFeeds(t *testing.T) {
	g := gomega.NewWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ix := mocks.NewMockIndexer(ctrl)
	ix.EXPECT().Movie(gomock.Any(), gomock.Any()).
		Return([]search.Release{{Title: "Show Movie", Hash: "ccc", Link: "https://nyaa.example/3.torrent"}}).
		Times(2)
	ix.EXPECT().Site().Return(testSite).AnyTimes()
	r := newTestServer(t, ctrl, ix)

	w := serve(r, "/search/movie?title=Show&format=rss")
	g.Expect(w.Code).To(gomega.Equal(http.StatusOK))
	g.Expect(w.Header().Get("Content-Type")).To(gomega.HavePrefix("application/rss+xml"))
	g.Expect(w.Body.String()).To(gomega.ContainSubstring("Show Movie"))

	w = serve(r, "/search/movie?title=Show&format=atom")
	g.Expect(w.Header().Get("Content-Type")).To(gomega.HavePrefix("application/atom+xml"))
}

func TestServer_HealthCheck(t *testing.T) {
	g := gomega.NewWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ix := mocks.NewMockIndexer(ctrl)
	ix.EXPECT().Site().Return(testSite)
	gin.SetMode(gin.TestMode)
	cfg := configMocks.NewMockConfig(ctrl)
	cfg.EXPECT().GetInt("port").Return(8080)
	cfg.EXPECT().GetBool("pprof").Return(false)
	s := NewServer(cfg, ix)
	s.Params.Version = "1.2.3"

	w := serve(s.Handler(), "/health")

	g.Expect(w.Code).To(gomega.Equal(http.StatusOK))
	var got healthCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	g.Expect(got.Ok).To(gomega.BeTrue())
	g.Expect(got.Site).To(gomega.Equal(testSite))
	g.Expect(got.Version).To(gomega.Equal("1.2.3"))
}

func TestRequestID_ShouldKeepIncomingIds(t *testing.T) {
	g := gomega.NewWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ix := mocks.NewMockIndexer(ctrl)
	ix.EXPECT().Site().Return(testSite)
	r := newTestServer(t, ctrl, ix)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	r.ServeHTTP(w, req)

	g.Expect(w.Header().Get(requestIDHeader)).To(gomega.Equal("abc-123"))
}

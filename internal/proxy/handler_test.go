package proxy

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"

	"tube_analytics/internal/source/youtube"
)

type ProxyTestSuite struct {
	suite.Suite

	upstream *httptest.Server
	respond  func(w http.ResponseWriter)

	mu       sync.Mutex
	lastPath string
	lastQry  url.Values

	app    *fiber.App
	logger *slog.Logger
}

func (s *ProxyTestSuite) SetupTest() {
	s.mu.Lock()
	s.lastPath, s.lastQry = "", nil
	s.mu.Unlock()

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.respond = func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"items":[]}`)
	}

	s.upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.lastPath = r.URL.Path
		s.lastQry = r.URL.Query()
		s.mu.Unlock()
		s.respond(w)
	}))

	s.app = s.newApp(s.upstream.URL)
}

func (s *ProxyTestSuite) TearDownTest() {
	s.upstream.Close()
}

func TestProxyTestSuite(t *testing.T) {
	suite.Run(t, new(ProxyTestSuite))
}

func (s *ProxyTestSuite) newApp(baseURL string) *fiber.App {
	client := youtube.New(youtube.Config{BaseURL: baseURL, APIKey: "server-key"}, s.logger)
	return New(NewHandler(client, s.logger), Config{}, s.logger)
}

func (s *ProxyTestSuite) last() (string, url.Values) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPath, s.lastQry
}

func (s *ProxyTestSuite) get(app *fiber.App, target string) (int, []byte) {
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	s.Require().NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, body
}

func (s *ProxyTestSuite) TestForward_MissingEndpoint() {
	status, body := s.get(s.app, "/api/youtube?part=snippet")

	s.Equal(http.StatusBadRequest, status)
	s.JSONEq(`{"error":"Endpoint required"}`, string(body))
	path, _ := s.last()
	s.Empty(path)
}

func (s *ProxyTestSuite) TestForward_InvalidEndpointIsRejected() {
	for _, endpoint := range []string{"../../oauth2/v1/x", "videos/abc", "search%3Fq=1", "v1.2"} {
		status, body := s.get(s.app, "/api/youtube?endpoint="+url.QueryEscape(endpoint))

		s.Equal(http.StatusBadRequest, status, endpoint)
		s.JSONEq(`{"error":"Invalid endpoint"}`, string(body))
	}
	path, _ := s.last()
	s.Empty(path)
}

func (s *ProxyTestSuite) TestForward_PassesParamsAndKey() {
	upstreamBody := `{"kind":"youtube#videoListResponse","items":[{"id":"abc"}]}`
	s.respond = func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, upstreamBody)
	}

	status, body := s.get(s.app, "/api/youtube?endpoint=videos&part=snippet&id=abc")

	s.Equal(http.StatusOK, status)
	s.Equal(upstreamBody, string(body))
	path, qry := s.last()
	s.Equal("/videos", path)
	s.Equal("snippet", qry.Get("part"))
	s.Equal("abc", qry.Get("id"))
	s.Equal("server-key", qry.Get("key"))
	s.False(qry.Has("endpoint"))
}

func (s *ProxyTestSuite) TestForward_ClientKeyIsReplaced() {
	s.get(s.app, "/api/youtube?endpoint=search&q=go&key=client-key")

	_, qry := s.last()
	s.Equal([]string{"server-key"}, qry["key"])
}

func (s *ProxyTestSuite) TestForward_UpstreamErrorIsMirrored() {
	s.respond = func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":{"code":403,"message":"quota exceeded"}}`)
	}

	status, body := s.get(s.app, "/api/youtube?endpoint=search&q=go")

	s.Equal(http.StatusForbidden, status)

	var envelope struct {
		Error struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		} `json:"error"`
		Status int `json:"status"`
	}
	s.Require().NoError(json.Unmarshal(body, &envelope))
	s.Equal(http.StatusForbidden, envelope.Status)
	s.Equal("quota exceeded", envelope.Error.Error.Message)
}

func (s *ProxyTestSuite) TestForward_PlainTextErrorBody() {
	s.respond = func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "bad gateway")
	}

	status, body := s.get(s.app, "/api/youtube?endpoint=videos")

	s.Equal(http.StatusBadGateway, status)
	s.JSONEq(`{"error":"bad gateway","status":502}`, string(body))
}

func (s *ProxyTestSuite) TestForward_TransportErrorIs500() {
	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	status, body := s.get(s.newApp(deadURL), "/api/youtube?endpoint=videos")

	s.Equal(http.StatusInternalServerError, status)

	var envelope map[string]any
	s.Require().NoError(json.Unmarshal(body, &envelope))
	s.Equal(float64(http.StatusInternalServerError), envelope["status"])
	s.NotEmpty(envelope["error"])
}

func (s *ProxyTestSuite) TestHealth() {
	status, body := s.get(s.app, "/healthz")

	s.Equal(http.StatusOK, status)
	s.JSONEq(`{"status":"ok"}`, string(body))
}

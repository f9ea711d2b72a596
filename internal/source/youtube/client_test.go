package youtube

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"tube_analytics/internal/domain"
)

type ClientTestSuite struct {
	suite.Suite

	server *httptest.Server

	mu       sync.Mutex
	requests []*http.Request
	routes   map[string]string
	status   int

	client *Client
	logger *slog.Logger
}

func (s *ClientTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.requests = nil
	s.routes = map[string]string{}
	s.respondWith(http.StatusOK)

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r)
		body, ok := s.routes[r.URL.Path]
		status := s.status
		s.mu.Unlock()

		if !ok {
			body = `{"items":[]}`
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))

	s.client = New(Config{BaseURL: s.server.URL + "/", APIKey: "test-key"}, s.logger)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) route(path, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[path] = body
}

func (s *ClientTestSuite) respondWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

func (s *ClientTestSuite) recorded() []*http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*http.Request(nil), s.requests...)
}

func (s *ClientTestSuite) lastQuery() url.Values {
	reqs := s.recorded()
	s.Require().NotEmpty(reqs)
	return reqs[len(reqs)-1].URL.Query()
}

const channelBody = `{"items":[{
	"id":"UCabc",
	"snippet":{"title":"Creator","description":"d","customUrl":"@creator","publishedAt":"2020-01-01T00:00:00Z",
		"thumbnails":{"default":{"url":"d.jpg"},"high":{"url":"h.jpg"}}},
	"statistics":{"subscriberCount":"1500","viewCount":"90000","videoCount":"30"}
}]}`

func (s *ClientTestSuite) TestGet_AttachesKeyAndHeaders() {
	s.route("/videos", `{"items":[{"id":"x"}]}`)

	body, err := s.client.Get(context.Background(), "videos", url.Values{"id": {"x"}, "key": {"other"}})

	s.Require().NoError(err)
	s.JSONEq(`{"items":[{"id":"x"}]}`, string(body))

	req := s.recorded()[0]
	s.Equal("/videos", req.URL.Path)
	s.Equal("x", req.URL.Query().Get("id"))
	s.Equal([]string{"test-key"}, req.URL.Query()["key"])
	s.Equal("application/json", req.Header.Get("Accept"))
	s.Equal("TubeAnalytics/1.0", req.Header.Get("User-Agent"))
}

func (s *ClientTestSuite) TestGet_DoesNotMutateParams() {
	params := url.Values{"id": {"x"}}

	_, err := s.client.Get(context.Background(), "videos", params)

	s.Require().NoError(err)
	s.False(params.Has("key"))
}

func (s *ClientTestSuite) TestGet_NonSuccessIsRequestFailure() {
	s.respondWith(http.StatusForbidden)
	s.route("/search", `{"error":{"code":403,"message":"quotaExceeded"}}`)

	_, err := s.client.Get(context.Background(), "search", nil)

	var rf *RequestFailure
	s.Require().ErrorAs(err, &rf)
	s.Equal(http.StatusForbidden, rf.StatusCode)
	s.Equal("search", rf.Endpoint)
	s.Equal("quotaExceeded", rf.Message())
	s.Contains(rf.Error(), "status 403")
}

func (s *ClientTestSuite) TestGet_TransportFailure() {
	s.server.Close()

	_, err := s.client.Get(context.Background(), "videos", nil)

	var rf *RequestFailure
	s.Require().ErrorAs(err, &rf)
	s.Zero(rf.StatusCode)
	s.NotEmpty(rf.Message())
}

func (s *ClientTestSuite) TestGet_InvalidJSONIsMalformed() {
	s.route("/videos", `<html>`)

	_, err := s.client.Get(context.Background(), "videos", nil)

	s.ErrorIs(err, ErrMalformedResponse)
}

func (s *ClientTestSuite) TestGet_InvalidEndpoint() {
	for _, endpoint := range []string{"/", "", "../../oauth2/v1/x", "videos?id=1", "channels/UCabc"} {
		_, err := s.client.Get(context.Background(), endpoint, nil)
		s.ErrorIs(err, ErrInvalidEndpoint, endpoint)
	}
	s.Empty(s.recorded())
}

func (s *ClientTestSuite) TestGetChannelStats() {
	s.route("/channels", channelBody)

	channel, err := s.client.GetChannelStats(context.Background(), "UCabc")

	s.Require().NoError(err)
	s.Equal("UCabc", s.lastQuery().Get("id"))
	s.Equal("snippet,statistics,contentDetails", s.lastQuery().Get("part"))
	s.Equal(domain.Channel{
		ID:              "UCabc",
		Title:           "Creator",
		Description:     "d",
		CustomURL:       "@creator",
		PublishedAt:     "2020-01-01T00:00:00Z",
		Thumbnails:      domain.Thumbnails{Default: "d.jpg", Medium: "d.jpg", High: "h.jpg"},
		SubscriberCount: "1500",
		ViewCount:       "90000",
		VideoCount:      "30",
	}, *channel)
}

func (s *ClientTestSuite) TestGetChannelStats_EmptyItemsIsNotFound() {
	_, err := s.client.GetChannelStats(context.Background(), "UCmissing")
	s.ErrorIs(err, ErrNotFound)
}

func (s *ClientTestSuite) TestGetChannelStats_MissingSnippetIsMalformed() {
	s.route("/channels", `{"items":[{"id":"UCabc"}]}`)

	_, err := s.client.GetChannelStats(context.Background(), "UCabc")

	s.ErrorIs(err, ErrMalformedResponse)
}

func (s *ClientTestSuite) TestResolveChannel() {
	s.route("/channels", channelBody)

	cases := []struct {
		input string
		key   string
		value string
	}{
		{"https://www.youtube.com/channel/UCabc123", "id", "UCabc123"},
		{"https://youtube.com/@creator", "forHandle", "@creator"},
		{"https://youtube.com/c/legacy", "forHandle", "@legacy"},
		{"@creator", "forHandle", "@creator"},
		{"UCraw", "id", "UCraw"},
	}

	for _, tc := range cases {
		_, err := s.client.ResolveChannel(context.Background(), tc.input)
		s.Require().NoError(err, tc.input)
		s.Equal(tc.value, s.lastQuery().Get(tc.key), tc.input)
	}
}

func (s *ClientTestSuite) TestGetVideoStats() {
	s.route("/videos", `{"items":[{
		"id":"dQw4w9WgXcQ",
		"snippet":{"title":"Clip","channelTitle":"Creator","tags":["a","b"]},
		"statistics":{"viewCount":"100","likeCount":"10"},
		"contentDetails":{"duration":"PT3M2S"}
	}]}`)

	video, err := s.client.GetVideoStats(context.Background(), "dQw4w9WgXcQ")

	s.Require().NoError(err)
	s.Equal("dQw4w9WgXcQ", s.lastQuery().Get("id"))
	s.Equal("100", video.ViewCount)
	s.Equal("10", video.LikeCount)
	s.Equal("0", video.CommentCount)
	s.Equal("PT3M2S", video.Duration)
	s.Equal([]string{"a", "b"}, video.Tags)
}

func (s *ClientTestSuite) TestGetVideoStats_NotFound() {
	_, err := s.client.GetVideoStats(context.Background(), "missing")
	s.ErrorIs(err, ErrNotFound)
}

func (s *ClientTestSuite) TestGetChannelVideos() {
	s.route("/search", `{"items":[
		{"id":{"kind":"youtube#video","videoId":"v1"},"snippet":{"title":"One"}},
		{"id":{"kind":"youtube#video"},"snippet":{"title":"No id"}},
		{"id":{"kind":"youtube#video","videoId":"v2"},"snippet":{"title":"Two"}}
	]}`)

	results, err := s.client.GetChannelVideos(context.Background(), "UCabc", 0)

	s.Require().NoError(err)
	q := s.lastQuery()
	s.Equal("UCabc", q.Get("channelId"))
	s.Equal("date", q.Get("order"))
	s.Equal("video", q.Get("type"))
	s.Equal("10", q.Get("maxResults"))
	s.Len(results, 2)
	s.Equal("v1", results[0].ID)
	s.Equal("v2", results[1].ID)
}

func (s *ClientTestSuite) TestGetTrendingVideos_Defaults() {
	s.route("/videos", `{"items":[{"id":"t1","snippet":{"title":"Hot"}},{"id":"t2"}]}`)

	videos, err := s.client.GetTrendingVideos(context.Background(), "", 0)

	s.Require().NoError(err)
	q := s.lastQuery()
	s.Equal("mostPopular", q.Get("chart"))
	s.Equal("ID", q.Get("regionCode"))
	s.Equal("20", q.Get("maxResults"))
	s.Len(videos, 1)
	s.Equal("t1", videos[0].ID)
}

func (s *ClientTestSuite) TestSearch_ChannelType() {
	s.route("/search", `{"items":[{"id":{"kind":"youtube#channel","channelId":"UCx"},"snippet":{"title":"Chan"}}]}`)

	results, err := s.client.Search(context.Background(), "golang", domain.ResultChannel, 5)

	s.Require().NoError(err)
	s.Equal("channel", s.lastQuery().Get("type"))
	s.Equal("golang", s.lastQuery().Get("q"))
	s.Require().Len(results, 1)
	s.Equal(domain.ResultChannel, results[0].Type)
	s.Equal("UCx", results[0].ID)
}

func (s *ClientTestSuite) TestSearchVideosWithStats() {
	s.route("/search", `{"items":[
		{"id":{"kind":"youtube#video","videoId":"v1"},"snippet":{"title":"One"}},
		{"id":{"kind":"youtube#video","videoId":"v2"},"snippet":{"title":"Two"}}
	]}`)
	s.route("/videos", `{"items":[
		{"id":"v1","snippet":{"title":"One"},"statistics":{"viewCount":"5"}},
		{"id":"v2","snippet":{"title":"Two"},"statistics":{"viewCount":"7"}}
	]}`)

	videos, err := s.client.SearchVideosWithStats(context.Background(), "golang", 100)

	s.Require().NoError(err)
	reqs := s.recorded()
	s.Require().Len(reqs, 2)
	s.Equal("50", reqs[0].URL.Query().Get("maxResults"))
	s.Equal("v1,v2", reqs[1].URL.Query().Get("id"))
	s.Len(videos, 2)
	s.Equal("7", videos[1].ViewCount)
}

func (s *ClientTestSuite) TestSearchVideosWithStats_NoResultsSkipsBatch() {
	videos, err := s.client.SearchVideosWithStats(context.Background(), "nothing", 10)

	s.Require().NoError(err)
	s.Empty(videos)
	s.Len(s.recorded(), 1)
}

func (s *ClientTestSuite) TestSearch_UpstreamFailureIsWrapped() {
	s.respondWith(http.StatusInternalServerError)

	_, err := s.client.Search(context.Background(), "golang", domain.ResultVideo, 5)

	var rf *RequestFailure
	s.True(errors.As(err, &rf))
	s.Equal(http.StatusInternalServerError, rf.StatusCode)
}

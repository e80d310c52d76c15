package beyond_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/beyondvtt/vtt-importer/internal/clients/beyond"
	"github.com/beyondvtt/vtt-importer/internal/errors"
)

type ClientTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *ClientTestSuite) newClient(handler http.HandlerFunc) (beyond.Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client, err := beyond.New(&beyond.Config{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	s.Require().NoError(err)
	return client, server
}

func (s *ClientTestSuite) TestGetCharacter() {
	client, server := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/character/7001", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 7001,
			"success": true,
			"data": {
				"id": 7001,
				"name": "Sister Annika",
				"baseHitPoints": 27,
				"classes": [
					{"level": 5, "definition": {"id": 5, "name": "Cleric"}}
				]
			}
		}`))
	})
	defer server.Close()

	char, err := client.GetCharacter(s.ctx, "7001")
	s.Require().NoError(err)
	s.Equal(7001, char.ID)
	s.Equal("Sister Annika", char.Name)
	s.Equal(27, char.BaseHitPoints)
	s.Require().Len(char.Classes, 1)
	s.Equal("Cleric", char.Classes[0].Definition.Name)
}

func (s *ClientTestSuite) TestGetCharacter_StatusMapping() {
	testCases := []struct {
		name   string
		status int
		check  func(err error) bool
	}{
		{name: "not found", status: http.StatusNotFound, check: errors.IsNotFound},
		{name: "private character", status: http.StatusForbidden, check: errors.IsUnauthenticated},
		{name: "rate limited", status: http.StatusTooManyRequests, check: errors.IsUnavailable},
		{name: "server error", status: http.StatusInternalServerError, check: errors.IsUnavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			client, server := s.newClient(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})
			defer server.Close()

			_, err := client.GetCharacter(s.ctx, "7001")
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected code for status %d: %v", tc.status, err)
		})
	}
}

func (s *ClientTestSuite) TestGetCharacter_EmptyData() {
	client, server := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 7001, "success": false, "message": "gone"}`))
	})
	defer server.Close()

	_, err := client.GetCharacter(s.ctx, "7001")
	s.True(errors.IsNotFound(err))
}

func (s *ClientTestSuite) TestGetCharacter_MalformedBody() {
	client, server := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})
	defer server.Close()

	_, err := client.GetCharacter(s.ctx, "7001")
	s.Error(err)
}

func (s *ClientTestSuite) TestGetCharacter_EmptyID() {
	client, err := beyond.New(nil)
	s.Require().NoError(err)

	_, err = client.GetCharacter(s.ctx, "")
	s.True(errors.IsInvalidArgument(err))
}

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamhub-io/teamhub-client/pkg/teamhub"
)

func TestProjectsClient_List(t *testing.T) {
	t.Run("lists active projects", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/1234567/projects.json", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Empty(t, request.URL.Query().Get("status"))

			writer.Header().Set("Content-Type", "application/json")
			writer.Header().Set("X-Total-Count", "2")
			_ = json.NewEncoder(writer).Encode([]teamhub.Project{
				{ID: 1, Name: "Launch plan", Status: "active"},
				{ID: 2, Name: "Marketing site", Status: "active"},
			})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		result, err := client.Projects().List(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, result.Items, 2)
		assert.Equal(t, "Launch plan", result.Items[0].Name)
		assert.Equal(t, 2, result.TotalCount)
		assert.False(t, result.Truncated)
	})

	t.Run("passes status filter", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "archived", request.URL.Query().Get("status"))

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode([]teamhub.Project{})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		result, err := client.Projects().List(context.Background(), &teamhub.ProjectListOptions{Status: "archived"})
		require.NoError(t, err)
		assert.Empty(t, result.Items)
	})
}

func TestProjectsClient_Get(t *testing.T) {
	tests := []TestGetOperation[teamhub.Project]{
		{
			Name:         "successful get",
			ID:           42,
			ExpectedPath: "/1234567/projects/42.json",
			StatusCode:   http.StatusOK,
			Response: &teamhub.Project{
				ID:        42,
				Status:    "active",
				Name:      "Launch plan",
				CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			Name:         "project not found",
			ID:           999,
			ExpectedPath: "/1234567/projects/999.json",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
			ErrMessage:   "getting project",
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, int64) (*teamhub.Project, error) {
		return c.Projects().Get
	})
}

func TestProjectsClient_Create(t *testing.T) {
	tests := []TestCreateOperation[teamhub.ProjectCreateRequest, teamhub.Project]{
		{
			Name: "successful create",
			Request: &teamhub.ProjectCreateRequest{
				Name:        "Launch plan",
				Description: "Q4 launch",
			},
			ExpectedPath: "/1234567/projects.json",
			StatusCode:   http.StatusCreated,
			Response:     &teamhub.Project{ID: 42, Name: "Launch plan"},
		},
		{
			Name:         "validation error",
			Request:      &teamhub.ProjectCreateRequest{},
			ExpectedPath: "/1234567/projects.json",
			StatusCode:   http.StatusUnprocessableEntity,
			WantErr:      true,
			ErrMessage:   "creating project",
		},
	}

	RunCreateTests(t, tests, func(c *Client) func(context.Context, *teamhub.ProjectCreateRequest) (*teamhub.Project, error) {
		return c.Projects().Create
	}, func(request *http.Request) (*teamhub.ProjectCreateRequest, error) {
		var body teamhub.ProjectCreateRequest
		err := json.NewDecoder(request.Body).Decode(&body)

		return &body, err
	})
}

func TestProjectsClient_Update(t *testing.T) {
	t.Run("sends only changed fields", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/1234567/projects/42.json", request.URL.Path)
			assert.Equal(t, "PUT", request.Method)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "Renamed", body["name"])
			assert.NotContains(t, body, "description")

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(teamhub.Project{ID: 42, Name: "Renamed"})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		project, err := client.Projects().Update(context.Background(), 42, &teamhub.ProjectUpdateRequest{
			Name: StringPtr("Renamed"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", project.Name)
	})
}

func TestProjectsClient_Trash(t *testing.T) {
	t.Run("successful trash", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/1234567/projects/42.json", request.URL.Path)
			assert.Equal(t, "DELETE", request.Method)
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		err := client.Projects().Trash(context.Background(), 42)
		assert.NoError(t, err)
	})

	t.Run("forbidden", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(writer).Encode(map[string]string{
				"error": "Only admins can trash projects",
			})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		err := client.Projects().Trash(context.Background(), 42)
		require.Error(t, err)
		assert.True(t, teamhub.IsForbidden(err))
		assert.Contains(t, err.Error(), "Only admins can trash projects")
	})
}

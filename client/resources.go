package client

import (
	"context"
	"net/http"
	"net/url"
)

// Register creates an account and keeps the returned token for later calls.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var res AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &res); err != nil {
		return nil, err
	}
	c.SetToken(res.Token)
	return &res, nil
}

// Login authenticates and keeps the returned token for later calls.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var res AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &res); err != nil {
		return nil, err
	}
	c.SetToken(res.Token)
	return &res, nil
}

func (c *Client) ListTeams(ctx context.Context, page, limit int) (*TeamPage, error) {
	var res TeamPage
	if err := c.do(ctx, http.MethodGet, "/teams", pageQuery(page, limit), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateTeam(ctx context.Context, req TeamRequest) (*TeamMember, error) {
	var res TeamMember
	if err := c.do(ctx, http.MethodPost, "/teams", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateTeam(ctx context.Context, id string, patch TeamPatch) (*TeamMember, error) {
	var res TeamMember
	if err := c.do(ctx, http.MethodPut, "/teams/"+url.PathEscape(id), nil, patch, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteTeam(ctx context.Context, id string) (string, error) {
	return c.remove(ctx, "/teams/"+url.PathEscape(id))
}

func (c *Client) ListProjects(ctx context.Context, page, limit int) (*ProjectPage, error) {
	var res ProjectPage
	if err := c.do(ctx, http.MethodGet, "/projects", pageQuery(page, limit), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateProject(ctx context.Context, req ProjectRequest) (*Project, error) {
	var res Project
	if err := c.do(ctx, http.MethodPost, "/projects", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*Project, error) {
	var res Project
	if err := c.do(ctx, http.MethodPut, "/projects/"+url.PathEscape(id), nil, patch, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) (string, error) {
	return c.remove(ctx, "/projects/"+url.PathEscape(id))
}

func (c *Client) ListTasks(ctx context.Context, filter TaskFilter, page, limit int) (*TaskPage, error) {
	q := pageQuery(page, limit)
	for key, value := range map[string]string{
		"project":        filter.Project,
		"status":         filter.Status,
		"assignedMember": filter.AssignedMember,
		"search":         filter.Search,
		"startDate":      filter.StartDate,
		"endDate":        filter.EndDate,
	} {
		if value != "" {
			q.Set(key, value)
		}
	}

	var res TaskPage
	if err := c.do(ctx, http.MethodGet, "/tasks", q, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// TaskSuggestions returns up to ten task titles starting with search.
func (c *Client) TaskSuggestions(ctx context.Context, search string) ([]string, error) {
	titles := []string{}
	if search == "" {
		return titles, nil
	}
	if err := c.do(ctx, http.MethodGet, "/tasks/suggestions", url.Values{"search": {search}}, nil, &titles); err != nil {
		return nil, err
	}
	return titles, nil
}

func (c *Client) CreateTask(ctx context.Context, req TaskRequest) (*Task, error) {
	var res Task
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, patch TaskPatch) (*Task, error) {
	var res Task
	if err := c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id), nil, patch, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) (string, error) {
	return c.remove(ctx, "/tasks/"+url.PathEscape(id))
}

func (c *Client) remove(ctx context.Context, path string) (string, error) {
	var res messageResponse
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

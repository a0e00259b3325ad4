package jenkins

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"buildcard/internal/domain/ports"
)

const defaultDepth = 50

const buildTree = "number,url,result,building,timestamp,duration,displayName,description," +
	"actions[_class,causes[shortDescription],totalCount,failCount,skipCount]," +
	"changeSets[items[author[fullName]]],culprits[fullName]"

// Client reads job history from the Jenkins JSON API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	withAuth   func(req *http.Request)
	depth      int
	logger     ports.Logger
}

var _ ports.RunSource = (*Client)(nil)

// NewClient creates a Jenkins client fetching depth builds per job.
func NewClient(baseURL string, timeout time.Duration, depth int, logger ports.Logger) *Client {
	if depth <= 0 {
		depth = defaultDepth
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		depth:      depth,
		logger:     logger,
	}
}

// WithBasicAuth sets the credentials sent with every request.
func (c *Client) WithBasicAuth(username, token string) *Client {
	if username == "" && token == "" {
		return c
	}
	c.withAuth = func(req *http.Request) {
		req.SetBasicAuth(username, token)
	}
	return c
}

// WithHTTPClient sets the HTTP client.
func (c *Client) WithHTTPClient(client *http.Client) *Client {
	c.httpClient = client
	return c
}

// Run returns one build of a job. A number <= 0 selects the newest build.
func (c *Client) Run(ctx context.Context, jobPath string, number int) (ports.Run, error) {
	h, err := c.history(ctx, jobPath)
	if err != nil {
		return nil, err
	}

	var b *build
	if number <= 0 {
		b = h.newest()
	} else {
		b = h.byNumber(number)
	}
	if b == nil {
		return nil, fmt.Errorf("%s #%d: %w", jobPath, number, ports.ErrBuildNotFound)
	}
	return b, nil
}

// Runs returns the fetched history of a job, newest first.
func (c *Client) Runs(ctx context.Context, jobPath string) ([]ports.Run, error) {
	h, err := c.history(ctx, jobPath)
	if err != nil {
		return nil, err
	}

	runs := make([]ports.Run, 0, len(h.builds))
	for i := len(h.builds) - 1; i >= 0; i-- {
		runs = append(runs, h.builds[i])
	}
	return runs, nil
}

func (c *Client) history(ctx context.Context, jobPath string) (*history, error) {
	job, err := c.fetchJob(ctx, jobPath)
	if err != nil {
		return nil, err
	}
	h := newHistory(job)
	c.logger.Debug(ctx, "fetched job history", "job", jobPath, "builds", len(h.builds))
	return h, nil
}

func (c *Client) fetchJob(ctx context.Context, jobPath string) (jobResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return jobResponse{}, fmt.Errorf("parse base url: %w", err)
	}

	u = u.JoinPath("/job/", parseJobPath(jobPath), "/api/json")
	q := u.Query()
	q.Set("tree", fmt.Sprintf("fullDisplayName,url,firstBuild[number],builds[%s]{0,%d}", buildTree, c.depth))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return jobResponse{}, fmt.Errorf("create request: %w", err)
	}
	if c.withAuth != nil {
		c.withAuth(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return jobResponse{}, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return jobResponse{}, fmt.Errorf("job %s: %w", jobPath, ports.ErrBuildNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return jobResponse{}, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	var job jobResponse
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return jobResponse{}, fmt.Errorf("decode response: %w", err)
	}
	return job, nil
}

// parseJobPath turns "folder/app" into "folder/job/app".
func parseJobPath(jobPath string) string {
	parts := strings.Split(strings.Trim(path.Clean("/"+jobPath), "/"), "/")
	return strings.Join(parts, "/job/")
}

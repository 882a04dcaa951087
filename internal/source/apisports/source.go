package apisports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sports_syncer/internal/domain"
)

const (
	SourceID   = "api-sports"
	SourceName = "API-Football"

	headerKey  = "x-rapidapi-key"
	headerHost = "x-rapidapi-host"
)

// ErrMissingAPIKey is returned before any request when no key is configured.
var ErrMissingAPIKey = errors.New("sports api key not configured")

// APIError reports a non-2xx response or an error list in the body.
type APIError struct {
	Path       string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 && e.StatusCode/100 != 2 {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: api error: %s", e.Path, e.Message)
}

// Config holds sports API client configuration.
type Config struct {
	BaseURL        string
	APIKey         string
	Host           string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client is a thin GET-only client for the sports-data API.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	host           string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new sports API client.
func New(cfg Config, logger *slog.Logger) *Client {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:         cfg.APIKey,
		host:           cfg.Host,
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", SourceID),
	}
}

// ID returns the source identifier.
func (c *Client) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (c *Client) Name() string {
	return SourceName
}

// Countries fetches every country known to the API.
func (c *Client) Countries(ctx context.Context) ([]domain.Country, error) {
	var entries []APICountry
	if err := c.get(ctx, "/countries", nil, &entries); err != nil {
		return nil, err
	}

	countries := make([]domain.Country, 0, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			c.logger.Warn("skipping country without name")
			continue
		}
		countries = append(countries, domain.Country{
			Name: e.Name,
			Code: e.Code,
			Flag: e.Flag,
		})
	}
	return countries, nil
}

// Leagues fetches the leagues running in the given season.
func (c *Client) Leagues(ctx context.Context, season int) ([]domain.League, error) {
	q := url.Values{}
	q.Set("season", strconv.Itoa(season))

	var entries []APILeagueEntry
	if err := c.get(ctx, "/leagues", q, &entries); err != nil {
		return nil, err
	}

	leagues := make([]domain.League, 0, len(entries))
	for _, e := range entries {
		if e.League.ID == 0 {
			continue
		}
		league := domain.League{
			ID:          e.League.ID,
			Name:        e.League.Name,
			Type:        e.League.Type,
			Logo:        e.League.Logo,
			CountryName: e.Country.Name,
			Season:      season,
		}
		if e.Country.Name != "" {
			league.Country = &domain.Country{
				Name: e.Country.Name,
				Code: e.Country.Code,
				Flag: e.Country.Flag,
			}
		}
		leagues = append(leagues, league)
	}
	return leagues, nil
}

// Teams fetches the teams of one league season.
func (c *Client) Teams(ctx context.Context, leagueID int64, season int) ([]domain.Team, error) {
	q := url.Values{}
	q.Set("league", strconv.FormatInt(leagueID, 10))
	q.Set("season", strconv.Itoa(season))

	var entries []APITeamEntry
	if err := c.get(ctx, "/teams", q, &entries); err != nil {
		return nil, err
	}

	teams := make([]domain.Team, 0, len(entries))
	for _, e := range entries {
		if e.Team.ID == 0 {
			continue
		}
		teams = append(teams, domain.Team{
			ID:       e.Team.ID,
			Name:     e.Team.Name,
			Code:     e.Team.Code,
			Country:  e.Team.Country,
			Founded:  e.Team.Founded,
			Logo:     e.Team.Logo,
			LeagueID: leagueID,
			Season:   season,
		})
	}
	return teams, nil
}

// Status returns the account status, including today's request quota.
func (c *Client) Status(ctx context.Context) (*APIStatus, error) {
	var status APIStatus
	if err := c.get(ctx, "/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var env *Envelope
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		env, err = c.doRequest(ctx, path, u)
		if err == nil {
			break
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode/100 == 4 {
			return err
		}

		if attempt == c.maxAttempts {
			if c.maxAttempts > 1 {
				return fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
			}
			return err
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"path", path,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	if msg := env.errorText(); msg != "" {
		return &APIError{Path: path, StatusCode: http.StatusOK, Message: msg}
	}

	if err := json.Unmarshal(env.Response, out); err != nil {
		return fmt.Errorf("%s: decode response payload: %w", path, err)
	}

	c.logger.Debug("fetched", "path", path, "results", env.Results)
	return nil
}

func (c *Client) doRequest(ctx context.Context, path, u string) (*Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "SportsSyncer/1.0")
	req.Header.Set(headerKey, c.apiKey)
	req.Header.Set(headerHost, c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &APIError{Path: path, StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &env, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

// Package gateway is the HTTP client for the team-builder backend. It
// attaches the session's bearer token to every call and turns error answers
// into *APIError values that match the domain sentinels.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pokearena/teambuilder/internal/core/domain"
	"github.com/pokearena/teambuilder/internal/core/ports"
)

const maxErrorBody = 64 << 10

const (
	endpointCreateTeam = "create_team"
	endpointAddPokemon = "add_pokemon"
)

var _ ports.Gateway = (*Client)(nil)

// Client implements ports.Gateway over net/http.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	tokens  ports.TokenSource
	log     zerolog.Logger
}

// TokenFunc adapts a function to ports.TokenSource. It lets the client be
// built before the session that will hand out the token.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client. Its Timeout wins over
// the one passed to New.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New returns a Client rooted at baseURL. tokens may be nil for a client that
// only calls the /auth endpoints.
func New(baseURL string, timeout time.Duration, tokens ports.TokenSource, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("gateway: parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("gateway: base url %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) Login(ctx context.Context, in ports.LoginInput) (*domain.AuthResult, error) {
	var out domain.AuthResult
	if err := c.do(ctx, call{endpoint: "login", method: http.MethodPost, path: []string{"auth", "login"}, body: in, auth: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, in ports.RegisterInput) (*domain.AuthResult, error) {
	var out domain.AuthResult
	if err := c.do(ctx, call{endpoint: "register", method: http.MethodPost, path: []string{"auth", "register"}, body: in, auth: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListPokemons(ctx context.Context, query url.Values) (*domain.PokedexPage, error) {
	var out domain.PokedexPage
	if err := c.do(ctx, call{endpoint: "list_pokemons", method: http.MethodGet, path: []string{"pokemons"}, query: query}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListTeams(ctx context.Context) ([]domain.Team, error) {
	var out []domain.Team
	if err := c.do(ctx, call{endpoint: "list_teams", method: http.MethodGet, path: []string{"teams"}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListCommunityTeams(ctx context.Context) ([]domain.Team, error) {
	var out []domain.Team
	if err := c.do(ctx, call{endpoint: "community_teams", method: http.MethodGet, path: []string{"teams", "community"}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type createTeamRequest struct {
	Name     string   `json:"name"`
	Pokemons []string `json:"pokemons"`
}

func (c *Client) CreateTeam(ctx context.Context, name string) (*domain.Team, error) {
	var out domain.Team
	body := createTeamRequest{Name: name, Pokemons: []string{}}
	if err := c.do(ctx, call{endpoint: endpointCreateTeam, method: http.MethodPost, path: []string{"teams"}, body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type addPokemonRequest struct {
	PokemonID string `json:"pokemonId"`
}

func (c *Client) AddPokemon(ctx context.Context, teamID, pokemonID string) (*domain.Team, error) {
	var out domain.Team
	req := call{
		endpoint: endpointAddPokemon,
		method:   http.MethodPut,
		path:     []string{"teams", teamID, "add"},
		body:     addPokemonRequest{PokemonID: pokemonID},
	}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTeam(ctx context.Context, teamID string) error {
	return c.do(ctx, call{endpoint: "delete_team", method: http.MethodDelete, path: []string{"teams", teamID}}, nil)
}

func (c *Client) DeleteAllTeams(ctx context.Context) error {
	return c.do(ctx, call{endpoint: "delete_all_teams", method: http.MethodDelete, path: []string{"teams"}}, nil)
}

func (c *Client) GetProfile(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, call{endpoint: "get_profile", method: http.MethodGet, path: []string{"users", "profile"}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, in ports.ProfileUpdateInput) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, call{endpoint: "update_profile", method: http.MethodPut, path: []string{"users", "profile"}, body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type call struct {
	endpoint string
	method   string
	path     []string
	query    url.Values
	body     any
	auth     bool
}

func (c *Client) do(ctx context.Context, r call, out any) (err error) {
	start := time.Now()
	status := 0
	defer func() {
		RequestsTotal.WithLabelValues(r.endpoint, codeLabel(status)).Inc()
		RequestDuration.WithLabelValues(r.endpoint).Observe(time.Since(start).Seconds())
		var ev *zerolog.Event
		if err != nil {
			ev = c.log.Warn().Err(err)
		} else {
			ev = c.log.Debug()
		}
		ev.Str("endpoint", r.endpoint).Int("status", status).Dur("took", time.Since(start)).Msg("backend call")
	}()

	req, err := c.newRequest(ctx, r)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", r.endpoint, ctxErr)
		}
		return fmt.Errorf("%s: %w: %w", r.endpoint, domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	if resp.StatusCode >= 400 {
		return c.apiError(r, resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", r.endpoint, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, r call) (*http.Request, error) {
	segments := make([]string, len(r.path))
	for i, s := range r.path {
		segments[i] = url.PathEscape(s)
	}
	u := c.baseURL.JoinPath(segments...)
	if len(r.query) > 0 {
		u.RawQuery = r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		raw, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", r.endpoint, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", r.endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

func (c *Client) apiError(r call, resp *http.Response) error {
	apiErr := &APIError{Endpoint: r.endpoint, Status: resp.StatusCode, auth: r.auth}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}
	var eb errorBody
	if json.Unmarshal(raw, &eb) == nil {
		apiErr.Message = eb.text()
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}

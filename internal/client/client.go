// Package client is a typed Go client for the catalog API, used by the
// storefront and admin tooling. It speaks the API's response envelope,
// carries the bearer token obtained from login, and guards list queries
// with request-sequence tokens so a slow response never overwrites the
// result of a newer query.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"streamhub-backend/internal/models"
)

// ErrSuperseded marks a response that arrived after a newer request for the
// same view was issued. Callers should drop the result.
var ErrSuperseded = errors.New("client: response superseded by a newer request")

// APIError is a non-2xx response decoded from the API envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// requestSequence issues monotonically increasing tokens. A token is current
// only while no newer token has been issued.
type requestSequence struct {
	issued atomic.Uint64
}

func (s *requestSequence) next() uint64 {
	return s.issued.Add(1)
}

func (s *requestSequence) current(token uint64) bool {
	return s.issued.Load() == token
}

type Client struct {
	baseURL string
	httpc   *http.Client
	token   string

	browseSeq requestSequence
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithToken sets a pre-obtained bearer token, e.g. one restored from the
// previous admin session.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the bearer token currently attached to requests.
func (c *Client) Token() string { return c.token }

type loginResult struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Login authenticates against the given role ("USER" or "ADMIN") and keeps
// the returned token on the client for subsequent requests.
func (c *Client) Login(ctx context.Context, email, password, role string) (*models.User, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
		"type":     role,
	}

	var result loginResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/user/login", nil, body, &result); err != nil {
		return nil, err
	}

	c.token = result.Token
	return &result.User, nil
}

// BrowseFilter narrows the movie listing. Nil fields are unfiltered; set
// fields combine with AND semantics.
type BrowseFilter struct {
	CategoryID *uint
	HostID     *uint
}

// BrowseMovies lists movies matching the filter. When another BrowseMovies
// call is issued while this one is in flight, the stale response is dropped
// and ErrSuperseded is returned.
func (c *Client) BrowseMovies(ctx context.Context, filter BrowseFilter) ([]models.Movie, error) {
	token := c.browseSeq.next()

	query := url.Values{}
	if filter.CategoryID != nil {
		query.Set("categoryId", strconv.FormatUint(uint64(*filter.CategoryID), 10))
	}
	if filter.HostID != nil {
		query.Set("hostId", strconv.FormatUint(uint64(*filter.HostID), 10))
	}

	var movies []models.Movie
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/movie/", query, nil, &movies); err != nil {
		return nil, err
	}
	if !c.browseSeq.current(token) {
		return nil, ErrSuperseded
	}
	return movies, nil
}

func (c *Client) GetMovie(ctx context.Context, id uint) (*models.Movie, error) {
	var movie models.Movie
	path := "/api/v1/movie/" + strconv.FormatUint(uint64(id), 10)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/category/", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) ListHosts(ctx context.Context) ([]models.Host, error) {
	var hosts []models.Host
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/host/", nil, nil, &hosts); err != nil {
		return nil, err
	}
	return hosts, nil
}

func (c *Client) CreateCategory(ctx context.Context, name, description string) (*models.Category, error) {
	body := map[string]string{"name": name, "description": description}
	var category models.Category
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/category/", nil, body, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id uint, name, description string) (*models.Category, error) {
	body := map[string]string{"name": name, "description": description}
	var category models.Category
	path := "/api/v1/category/" + strconv.FormatUint(uint64(id), 10)
	if err := c.doJSON(ctx, http.MethodPut, path, nil, body, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id uint) error {
	path := "/api/v1/category/" + strconv.FormatUint(uint64(id), 10)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) CreateHost(ctx context.Context, name, bio string) (*models.Host, error) {
	body := map[string]string{"name": name, "bio": bio}
	var host models.Host
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/host/", nil, body, &host); err != nil {
		return nil, err
	}
	return &host, nil
}

func (c *Client) UpdateHost(ctx context.Context, id uint, name, bio string) (*models.Host, error) {
	body := map[string]string{"name": name, "bio": bio}
	var host models.Host
	path := "/api/v1/host/" + strconv.FormatUint(uint64(id), 10)
	if err := c.doJSON(ctx, http.MethodPut, path, nil, body, &host); err != nil {
		return nil, err
	}
	return &host, nil
}

func (c *Client) DeleteHost(ctx context.Context, id uint) error {
	path := "/api/v1/host/" + strconv.FormatUint(uint64(id), 10)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) DeleteMovie(ctx context.Context, id uint) error {
	path := "/api/v1/movie/" + strconv.FormatUint(uint64(id), 10)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

// MovieForm is the multipart payload for creating or updating a movie.
// On update, empty string fields are omitted and keep their stored value;
// a nil HostIDs leaves the host links untouched.
type MovieForm struct {
	Title             string
	CategoryID        *uint
	Description       string
	VideoURL          string
	Duration          string
	ReleaseYear       string
	Rating            string
	Cast              string
	Director          string
	Show              string
	ProductsReviewed  string
	KeyHighlights     string
	AdditionalContext string
	HostIDs           []uint

	// ThumbnailName and Thumbnail carry the image file; both empty/nil
	// means no thumbnail part is sent.
	ThumbnailName string
	Thumbnail     io.Reader
}

func (c *Client) CreateMovie(ctx context.Context, form MovieForm) (*models.Movie, error) {
	var movie models.Movie
	if err := c.doMultipart(ctx, http.MethodPost, "/api/v1/movie/", form, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

func (c *Client) UpdateMovie(ctx context.Context, id uint, form MovieForm) (*models.Movie, error) {
	var movie models.Movie
	path := "/api/v1/movie/" + strconv.FormatUint(uint64(id), 10)
	if err := c.doMultipart(ctx, http.MethodPut, path, form, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

type envelope struct {
	OK      bool            `json:"ok"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, query, reader, contentType, out)
}

func (c *Client) doMultipart(ctx context.Context, method, path string, form MovieForm, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":              form.Title,
		"description":        form.Description,
		"video_url":          form.VideoURL,
		"duration":           form.Duration,
		"release_year":       form.ReleaseYear,
		"rating":             form.Rating,
		"cast":               form.Cast,
		"director":           form.Director,
		"show":               form.Show,
		"products_reviewed":  form.ProductsReviewed,
		"key_highlights":     form.KeyHighlights,
		"additional_context": form.AdditionalContext,
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(name, value); err != nil {
			return err
		}
	}
	if form.CategoryID != nil {
		if err := writer.WriteField("categoryId", strconv.FormatUint(uint64(*form.CategoryID), 10)); err != nil {
			return err
		}
	}
	if form.HostIDs != nil {
		encoded, err := json.Marshal(form.HostIDs)
		if err != nil {
			return err
		}
		if err := writer.WriteField("hostIds", string(encoded)); err != nil {
			return err
		}
	}
	if form.Thumbnail != nil {
		part, err := writer.CreateFormFile("thumbnail", form.ThumbnailName)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, form.Thumbnail); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	return c.do(ctx, method, path, nil, &buf, writer.FormDataContentType(), out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.OK {
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

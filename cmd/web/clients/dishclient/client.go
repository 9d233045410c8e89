package dishclient

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

	"github.com/Nandeeswar7/chrysalis-web/cmd/web/httpclient"
	"github.com/Nandeeswar7/chrysalis-web/models"
)

// Client는 요리 데이터를 제공하는 lookup service HTTP API를 호출하는 얇은 클라이언트다.
//
// - 화면 구성 로직은 전혀 알지 않고, 순수하게 요리/재료/검색 데이터만 가져온다.
// - 모든 응답은 JSON 이며 non-2xx 는 실패로 취급한다. 재시도는 하지 않는다.
//
// baseURL 예: http://localhost:4000/api
type Client struct {
	base *httpclient.BaseClient
}

// New 는 baseURL 과 호출 타임아웃으로 클라이언트를 생성한다. timeout 이 0 이면 10초다.
func New(baseURL string, timeout time.Duration) *Client {
	return NewWithBase(httpclient.NewBaseClientWithClient(httpclient.New(httpclient.Config{Timeout: timeout}), baseURL))
}

func NewWithBase(base *httpclient.BaseClient) *Client {
	return &Client{base: base}
}

// -------------------- Dishes --------------------

// ListDishes 는 GET /dishes 를 호출한다.
func (c *Client) ListDishes(ctx context.Context) ([]models.Dish, error) {
	var out []models.Dish
	if err := c.getJSON(ctx, "ListDishes", "/dishes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDish 는 GET /dishes/{id} 를 호출한다.
// 존재하지 않으면 ErrNotFound 로 매칭되는 에러를 반환한다.
func (c *Client) GetDish(ctx context.Context, id string) (models.Dish, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Dish{}, validationError("GetDish", "dish id is required")
	}
	if strings.Contains(id, "/") || id == "." || id == ".." {
		return models.Dish{}, validationError("GetDish", "dish id must be a single path segment")
	}

	var out models.Dish
	if err := c.getJSON(ctx, "GetDish", path.Join("/dishes", id), nil, &out); err != nil {
		return models.Dish{}, err
	}
	return out, nil
}

// DishesByIngredients 는 POST /dishes-by-ingredients 를 호출한다.
// 빈 재료 목록은 네트워크 호출 없이 ErrValidation 으로 거부한다.
func (c *Client) DishesByIngredients(ctx context.Context, ingredients []string) ([]models.Dish, error) {
	const op = "DishesByIngredients"
	if len(ingredients) == 0 {
		return nil, validationError(op, "a list of ingredients is required")
	}
	for _, in := range ingredients {
		if strings.TrimSpace(in) == "" {
			return nil, validationError(op, "ingredient names must not be blank")
		}
	}

	req, err := c.base.NewJSONRequest(ctx, http.MethodPost, "/dishes-by-ingredients", DishesByIngredientsRequest{Ingredients: ingredients})
	if err != nil {
		return nil, err
	}

	var out []models.Dish
	if err := c.do(req, op, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// -------------------- Search / Ingredients --------------------

// Search 는 GET /search?q= 를 호출하고 lookup service 가 정한 순서 그대로 반환한다.
func (c *Client) Search(ctx context.Context, q string) ([]SearchResult, error) {
	var out []SearchResult
	if err := c.getJSON(ctx, "Search", "/search", url.Values{"q": {q}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListIngredients 는 GET /ingredients 를 호출한다.
func (c *Client) ListIngredients(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.getJSON(ctx, "ListIngredients", "/ingredients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Health 는 lookup service 가 응답 가능한지 GET /ingredients 로 확인한다.
func (c *Client) Health(ctx context.Context) error {
	req, err := c.base.NewRequest(ctx, http.MethodGet, "/ingredients", nil, nil)
	if err != nil {
		return err
	}
	return c.do(req, "Health", nil)
}

// -------------------- helpers --------------------

func (c *Client) getJSON(ctx context.Context, op, relPath string, query url.Values, out any) error {
	req, err := c.base.NewRequest(ctx, http.MethodGet, relPath, query, nil)
	if err != nil {
		return err
	}
	return c.do(req, op, out)
}

// do 는 요청을 실행하고 2xx 응답 바디를 out 으로 디코딩한다. out 이 nil 이면 바디를 버린다.
func (c *Client) do(req *http.Request, op string, out any) error {
	resp, err := c.base.Do(req)
	if err != nil {
		return fmt.Errorf("lookup-service %s: %w: %w", op, ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		upstream := &UpstreamError{Op: op, StatusCode: resp.StatusCode, Body: string(body)}
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %w", ErrNotFound, upstream)
		}
		return upstream
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("lookup-service %s: %w: %w", op, ErrMalformedResponse, err)
	}
	return nil
}

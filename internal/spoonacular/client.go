// Package spoonacular is a thin client for the Spoonacular recipe API,
// the external search/detail provider behind the /recipes proxy routes.
package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"mealplanner/internal/utils"

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// HTTPError is a non-2xx response from the provider.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("spoonacular: status %d: %s", e.Status, e.Body)
}

// Client calls the provider with a bounded request timeout and caches
// responses in Redis when a client is supplied. No retries: failures
// surface synchronously to the caller.
type Client struct {
	baseURL  string
	apiKey   string
	httpc    *http.Client
	rdb      *redis.Client // nil disables response caching
	cacheTTL time.Duration
}

func NewClient(baseURL, apiKey string, timeout time.Duration, rdb *redis.Client, cacheTTL time.Duration) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiKey:   apiKey,
		httpc:    &http.Client{Timeout: timeout},
		rdb:      rdb,
		cacheTTL: cacheTTL,
	}
}

// FormatIngredients joins ingredients into the ",+" separated list the
// provider's includeIngredients parameter expects.
func FormatIngredients(ingredients []string) string {
	return strings.Join(ingredients, ",+")
}

// ComplexSearch proxies the provider's complexSearch endpoint. Only
// non-empty nutrient filters are appended as query parameters.
func (c *Client) ComplexSearch(ctx context.Context, ingredients []string, nutrients map[string]string) (json.RawMessage, error) {
	var sb strings.Builder
	sb.WriteString("includeIngredients=")
	sb.WriteString(FormatIngredients(ingredients))

	// Sorted for a stable query string, which doubles as the cache key.
	keys := make([]string, 0, len(nutrients))
	for k, v := range nutrients {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString("&" + k + "=" + nutrients[k])
	}
	sb.WriteString("&number=10&fillIngredients=true")

	return c.get(ctx, "search", "/recipes/complexSearch?"+sb.String())
}

// Information fetches a single recipe's detail record.
func (c *Client) Information(ctx context.Context, recipeID int) (json.RawMessage, error) {
	return c.get(ctx, "info", fmt.Sprintf("/recipes/%d/information?includeNutrition=false", recipeID))
}

// Nutrition fetches a single recipe's nutrition widget data.
func (c *Client) Nutrition(ctx context.Context, recipeID int) (json.RawMessage, error) {
	return c.get(ctx, "nutrition", fmt.Sprintf("/recipes/%d/nutritionWidget.json", recipeID))
}

// get performs a cached GET against the provider. The cache key is
// derived from the path and query before the API key is appended.
func (c *Client) get(ctx context.Context, kind, pathAndQuery string) (json.RawMessage, error) {
	cacheKey := utils.ProviderCacheKey(kind, pathAndQuery)
	if c.rdb != nil {
		var cached json.RawMessage
		if found, err := utils.GetCache(ctx, c.rdb, cacheKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	sep := "?"
	if strings.Contains(pathAndQuery, "?") {
		sep = "&"
	}
	url := c.baseURL + pathAndQuery + sep + "apiKey=" + c.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{Status: resp.StatusCode, Body: string(body)}
	}

	if c.rdb != nil {
		if err := utils.SetCache(ctx, c.rdb, cacheKey, json.RawMessage(body), c.cacheTTL); err != nil {
			logrus.WithFields(logrus.Fields{
				"key":   cacheKey,
				"error": err.Error(),
			}).Warn("Failed to cache provider response")
		}
	}
	return body, nil
}

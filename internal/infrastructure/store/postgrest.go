package store

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
)

// RESTClient talks the PostgREST dialect exposed under <base>/rest/v1.
type RESTClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewRESTClient(baseURL, apiKey string, timeout time.Duration) *RESTClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/") + "/rest/v1",
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *RESTClient) Select(ctx context.Context, table string, q Query, dest interface{}) error {
	return c.doJSON(ctx, http.MethodGet, c.endpoint(table, q), nil, dest)
}

func (c *RESTClient) Insert(ctx context.Context, table string, row interface{}, dest interface{}) error {
	body, err := json.Marshal(row)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPost, c.endpoint(table, Query{}), body, dest)
}

func (c *RESTClient) Update(ctx context.Context, table string, q Query, values map[string]interface{}, dest interface{}) error {
	body, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPatch, c.endpoint(table, q), body, dest)
}

func (c *RESTClient) Delete(ctx context.Context, table string, q Query, dest interface{}) error {
	return c.doJSON(ctx, http.MethodDelete, c.endpoint(table, q), nil, dest)
}

func (c *RESTClient) endpoint(table string, q Query) string {
	query := url.Values{}
	query.Set("select", "*")
	for _, f := range q.Filters {
		query.Add(f.Column, "eq."+f.Value)
	}
	if len(q.Order) > 0 {
		parts := make([]string, 0, len(q.Order))
		for _, o := range q.Order {
			dir := "asc"
			if o.Descending {
				dir = "desc"
			}
			parts = append(parts, o.Column+"."+dir)
		}
		query.Set("order", strings.Join(parts, ","))
	}
	return fmt.Sprintf("%s/%s?%s", c.baseURL, url.PathEscape(table), query.Encode())
}

func (c *RESTClient) doJSON(ctx context.Context, method, endpoint string, body []byte, out interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	httpReq.Header.Set("apikey", c.apiKey)
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		httpReq.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		storeErr := &Error{Status: resp.StatusCode}
		raw, _ := io.ReadAll(resp.Body)
		if len(raw) > 0 && json.Unmarshal(raw, storeErr) != nil {
			storeErr.Message = strings.TrimSpace(string(raw))
		}
		return storeErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return err
	}

	return nil
}

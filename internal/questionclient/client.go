package questionclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"quizhub/internal/domain"
)

// ServiceName is the logical name the quiz service resolves to reach the
// question service.
const ServiceName = "question-service"

const defaultTimeout = 5 * time.Second

// Client talks to the question service over HTTP. It implements
// quiz.QuestionDirectory. Every call carries a bounded timeout so an
// unreachable question service fails closed instead of hanging.
type Client struct {
	resolver Resolver
	http     *http.Client
}

func New(resolver Resolver, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		resolver: resolver,
		http:     &http.Client{Timeout: timeout},
	}
}

// RandomIDs asks the question service for a random ID draw.
func (c *Client) RandomIDs(ctx context.Context, category string, count int) ([]string, error) {
	base, err := c.resolver.Resolve(ServiceName)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("categoryName", category)
	query.Set("numQuestion", strconv.Itoa(count))

	var ids []string
	if err := c.get(ctx, base+"/question/generate?"+query.Encode(), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Questions fetches answer-redacted question bodies for the given IDs.
func (c *Client) Questions(ctx context.Context, ids []string) ([]domain.QuestionWrapper, error) {
	base, err := c.resolver.Resolve(ServiceName)
	if err != nil {
		return nil, err
	}

	var wrappers []domain.QuestionWrapper
	if err := c.post(ctx, base+"/question/getQuestions", ids, &wrappers); err != nil {
		return nil, err
	}
	return wrappers, nil
}

// Score submits responses for scoring and returns the number of hits.
func (c *Client) Score(ctx context.Context, responses []domain.Response) (int, error) {
	base, err := c.resolver.Resolve(ServiceName)
	if err != nil {
		return 0, err
	}

	var score int
	if err := c.post(ctx, base+"/question/getScore", responses, &score); err != nil {
		return 0, err
	}
	return score, nil
}

func (c *Client) get(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, url string, body, out interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: question service returned %d", domain.ErrUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrUnavailable, err)
	}
	return nil
}

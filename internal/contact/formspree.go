package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// FormspreeForwarder posts submissions as JSON to a form backend endpoint.
type FormspreeForwarder struct {
	endpoint string
	client   *resty.Client
}

func NewFormspreeForwarder(endpoint string, timeout time.Duration) *FormspreeForwarder {
	return &FormspreeForwarder{
		endpoint: endpoint,
		client: resty.New().
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

func (f *FormspreeForwarder) Name() string { return "formspree" }

func (f *FormspreeForwarder) Forward(ctx context.Context, sub Submission) error {
	resp, err := f.client.R().
		SetContext(ctx).
		SetBody(sub).
		Post(f.endpoint)
	if err != nil {
		return fmt.Errorf("post to form backend: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("form backend responded %d", resp.StatusCode())
	}
	return nil
}

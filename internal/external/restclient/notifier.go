package restclient

import (
	"context"
	"net/http"
)

// NotifierClient posts messages to a chat webhook.
type NotifierClient struct {
	restClient
}

func NewNotifierClient(webhookUrl string) *NotifierClient {
	return &NotifierClient{newRestClient(webhookUrl)}
}

func (c *NotifierClient) Send(ctx context.Context, text string) error {
	body := map[string]string{"text": text}

	return c.doJson(ctx, http.MethodPost, "", body, nil)
}

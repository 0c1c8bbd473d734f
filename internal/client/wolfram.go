package client

import (
	"context"
	"net/http"
	"net/url"
)

// WolframClient answers free-text scale queries with the Wolfram|Alpha v2 query API.
type WolframClient struct {
	client  *http.Client
	baseURL string
	appID   string
}

// NewWolframClient creates a client for the given endpoint and application ID
func NewWolframClient(client *http.Client, baseURL, appID string) *WolframClient {
	return &WolframClient{client: client, baseURL: baseURL, appID: appID}
}

// Answer returns the raw response text for query.
// The text is scanned line by line downstream, so it is returned undecoded.
func (w *WolframClient) Answer(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("appid", w.appID)
	params.Set("input", query)

	body, err := get(ctx, w.client, w.baseURL, params)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

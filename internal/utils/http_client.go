// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(30 * time.Second)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a JSON-speaking HTTPClient whose requests are bounded
// by timeout. A zero timeout leaves requests unbounded; callers then rely on
// the request context.
//
// Retries are disabled: every call is a single round trip.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "atmost-notes").
		SetRetryCount(0)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

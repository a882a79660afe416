// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client so
// callers use resty's request builder directly.
//
//	client := utils.NewHTTPClient("http://localhost:8080", 5*time.Second)
//	resp, err := client.R().SetResult(&stats).Get("/api/stats")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL. A positive timeout bounds
// every request. Idempotent GETs are retried once on transport errors.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(1).
		SetRetryWaitTime(100 * time.Millisecond)

	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return &HTTPClient{Client: c}
}

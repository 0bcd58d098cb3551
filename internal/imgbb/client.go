// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package imgbb

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/wisdom-forms/forms-service/internal/logging"
	"github.com/wisdom-forms/forms-service/internal/monitoring"
	"github.com/wisdom-forms/forms-service/internal/tracing"
)

const uploadURL = "https://api.imgbb.com/1/upload"

type ClientInterface interface {
	Upload(ctx context.Context, apiKey, imageBase64 string) (string, error)
}

type uploadResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

// Client uploads images to imgbb on behalf of an organization using the
// organization's stored API key.
type Client struct {
	http *resty.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		http:    resty.New().SetTimeout(30 * time.Second),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) Upload(ctx context.Context, apiKey, imageBase64 string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "imgbb.Client.Upload")
	defer span.End()

	if apiKey == "" {
		return "", fmt.Errorf("organization has no imgbb API key configured")
	}

	var out uploadResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", apiKey).
		SetFormData(map[string]string{"image": imageBase64}).
		SetResult(&out).
		Post(uploadURL)

	if err != nil {
		return "", fmt.Errorf("imgbb upload failed: %w", err)
	}
	if resp.IsError() || !out.Success {
		return "", fmt.Errorf("imgbb upload failed with status %d", resp.StatusCode())
	}

	return out.Data.URL, nil
}

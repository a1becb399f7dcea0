package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"meal-rotation/internal/core/grocery"
	"meal-rotation/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// Client 採買清單 API 客戶端
type Client struct {
	client *resty.Client
}

// NewClient 創建客戶端，所有請求帶上使用者 ID
func NewClient(baseURL string, userID int64, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("X-User-ID", strconv.FormatInt(userID, 10)).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &Client{client: client}
}

// GetGroceryList 取得採買清單；weeks 為空時由伺服器使用全部週次
func (c *Client) GetGroceryList(ctx context.Context, weeks []int) (*grocery.List, error) {
	req := c.client.R().SetContext(ctx)
	if len(weeks) > 0 {
		parts := make([]string, len(weeks))
		for i, week := range weeks {
			parts[i] = strconv.Itoa(week)
		}
		req.SetQueryParam("weeks", strings.Join(parts, ","))
	}

	var list grocery.List
	var apiErr common.ErrorResponse
	resp, err := req.SetResult(&list).SetError(&apiErr).Get("/api/grocery-list")
	if err != nil {
		return nil, fmt.Errorf("failed to request grocery list: %w", err)
	}
	if resp.IsError() {
		return nil, responseError(resp.StatusCode(), apiErr)
	}
	return &list, nil
}

// SetCheck 勾選或取消勾選
func (c *Client) SetCheck(ctx context.Context, itemKey string, checked bool) (*grocery.CheckResult, error) {
	var result grocery.CheckResult
	var apiErr common.ErrorResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"itemKey": itemKey,
			"checked": checked,
		}).
		SetResult(&result).
		SetError(&apiErr).
		Post("/api/grocery-list/checks")
	if err != nil {
		return nil, fmt.Errorf("failed to save grocery check: %w", err)
	}
	if resp.IsError() {
		return nil, responseError(resp.StatusCode(), apiErr)
	}
	return &result, nil
}

// ClearChecks 清除所有勾選
func (c *Client) ClearChecks(ctx context.Context) error {
	var apiErr common.ErrorResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetError(&apiErr).
		Delete("/api/grocery-list/checks")
	if err != nil {
		return fmt.Errorf("failed to clear grocery checks: %w", err)
	}
	if resp.IsError() {
		return responseError(resp.StatusCode(), apiErr)
	}
	return nil
}

func responseError(status int, apiErr common.ErrorResponse) error {
	if apiErr.Code == "" {
		return fmt.Errorf("grocery API returned status %d", status)
	}
	return fmt.Errorf("grocery API returned status %d: %s (%s)", status, apiErr.Message, apiErr.Code)
}

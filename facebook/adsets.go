package facebook

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const DEFAULT_BASE_URL = "https://graph.facebook.com/v19.0"

// Client is a minimal Marketing API client covering the ad set updates the
// dashboard applies - daily budget and delivery status.
type Client struct {
	AppID       string
	AppSecret   string
	AccessToken string
	BaseURL     string

	client *http.Client
}

func NewClient(appID, appSecret, accessToken string) *Client {
	return &Client{
		AppID:       appID,
		AppSecret:   appSecret,
		AccessToken: accessToken,
		BaseURL:     DEFAULT_BASE_URL,

		client: http.DefaultClient,
	}
}

// Update describes the pending changes to a single ad set. A zero DailyBudget
// leaves the budget unchanged and an empty Status leaves the status
// unchanged.
type Update struct {
	AdSetID     string `json:"adset_id"`
	AdName      string `json:"ad_name,omitempty"`
	DailyBudget int64  `json:"daily_budget,omitempty"` // minor currency units
	Status      string `json:"status,omitempty"`
}

func (u Update) Empty() bool {
	return u.DailyBudget == 0 && u.Status == ""
}

// Changes builds an Update from the dashboard inputs, with the page's change
// detection: a budget counts as changed only when it is set and differs from
// the current budget by at least 0.5, a status only when it differs from the
// current status. The Marketing API expects budgets in minor currency units.
func Changes(adSetID, adName string, newBudget, currentBudget float64, newStatus, currentStatus string) Update {
	update := Update{
		AdSetID: strings.ReplaceAll(strings.TrimSpace(adSetID), "'", ""),
		AdName:  adName,
	}

	if newBudget > 0 && math.Abs(newBudget-currentBudget) >= 0.5 {
		update.DailyBudget = int64(math.Round(newBudget * 100))
	}

	status := strings.ToUpper(strings.TrimSpace(newStatus))
	if status != "" && status != strings.ToUpper(strings.TrimSpace(currentStatus)) {
		update.Status = status
	}

	return update
}

// Apply posts an ad set update to the Marketing API.
func (c *Client) Apply(ctx context.Context, update Update) error {
	if strings.TrimSpace(update.AdSetID) == "" {
		return fmt.Errorf("missing ad set ID")
	}

	if update.Empty() {
		return fmt.Errorf("no valid updates for ad set %s", update.AdSetID)
	}

	form := url.Values{}
	if update.DailyBudget != 0 {
		form.Set("daily_budget", strconv.FormatInt(update.DailyBudget, 10))
	}

	if update.Status != "" {
		form.Set("status", update.Status)
	}

	form.Set("access_token", c.AccessToken)

	endpoint := fmt.Sprintf("%s/%s", c.BaseURL, url.PathEscape(update.AdSetID))

	rq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}

	rq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := c.client.Do(rq)
	if err != nil {
		return fmt.Errorf("unable to update ad set %s (%v)", update.AdSetID, err)
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		reason := struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}{}

		if err := json.NewDecoder(response.Body).Decode(&reason); err == nil && reason.Error.Message != "" {
			return fmt.Errorf("unable to update ad set %s (%s)", update.AdSetID, reason.Error.Message)
		}

		return fmt.Errorf("unable to update ad set %s (status %d)", update.AdSetID, response.StatusCode)
	}

	return nil
}

// Result summarises a batch of ad set updates.
type Result struct {
	Applied int      `json:"applied"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

// ApplyAll applies a batch of updates, continuing past failures and counting
// successes and failures per item.
func (c *Client) ApplyAll(ctx context.Context, updates []Update) Result {
	result := Result{}

	for _, update := range updates {
		if err := c.Apply(ctx, update); err != nil {
			result.Failed++

			name := update.AdName
			if name == "" {
				name = update.AdSetID
			}

			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", name, err))
		} else {
			result.Applied++
		}
	}

	return result
}

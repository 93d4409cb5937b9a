package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// CateringClient talks to the catering service for the list of meal
// types offered on board.
type CateringClient struct {
	httpClient *http.Client
	baseURL    string
}

type mealTypesResponse struct {
	MealTypes []string `json:"mealTypes"`
}

func NewCateringClient(baseURL string, timeout time.Duration) *CateringClient {
	return &CateringClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

func (c *CateringClient) ListMealTypes(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/mealtypes", nil)
	if err != nil {
		return nil, fmt.Errorf("build catering request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request catering: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catering responded with status %d", resp.StatusCode)
	}

	var body mealTypesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode catering response: %w", err)
	}
	return body.MealTypes, nil
}

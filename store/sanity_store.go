package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yeremiapane/orders-admin/models"
)

// OrdersQuery selects every order with its cart items dereferenced to the
// product name and image.
const OrdersQuery = `*[_type == "order"]{
  _id,
  firstName,
  lastName,
  phone,
  email,
  address,
  city,
  zipCode,
  total,
  discount,
  orderDate,
  status,
  cartItems[]->{
    productName,
    image
  }
}`

// SanityConfig holds the content backend coordinates.
type SanityConfig struct {
	ProjectID  string
	Dataset    string
	Token      string
	APIVersion string
	// BaseURL overrides https://<project>.api.sanity.io.
	BaseURL string
}

// SanityStore talks to the content backend over its HTTP data API.
type SanityStore struct {
	config     SanityConfig
	httpClient *http.Client
}

func NewSanityStore(cfg SanityConfig) *SanityStore {
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2023-05-03"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("https://%s.api.sanity.io", cfg.ProjectID)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &SanityStore{
		config: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ValidateConfig checks that the store can address a dataset.
func (s *SanityStore) ValidateConfig() error {
	if s.config.ProjectID == "" {
		return fmt.Errorf("SANITY_PROJECT_ID is not set")
	}
	if s.config.Dataset == "" {
		return fmt.Errorf("SANITY_DATASET is not set")
	}
	return nil
}

type sanityLineItem struct {
	ProductName string          `json:"productName"`
	Image       json.RawMessage `json:"image"`
}

type sanityOrder struct {
	ID        string            `json:"_id"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Phone     string            `json:"phone"`
	Email     string            `json:"email"`
	Address   string            `json:"address"`
	City      string            `json:"city"`
	ZipCode   string            `json:"zipCode"`
	Total     float64           `json:"total"`
	Discount  float64           `json:"discount"`
	OrderDate string            `json:"orderDate"`
	Status    *string           `json:"status"`
	CartItems []*sanityLineItem `json:"cartItems"`
}

func (o *sanityOrder) toOrder() models.Order {
	order := models.Order{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Phone:     o.Phone,
		Email:     o.Email,
		Address:   o.Address,
		City:      o.City,
		ZipCode:   o.ZipCode,
		Total:     o.Total,
		Discount:  o.Discount,
		OrderDate: o.OrderDate,
		CartItems: make([]models.LineItem, 0, len(o.CartItems)),
	}
	if o.Status != nil {
		order.Status = models.Status(*o.Status)
	}
	for _, it := range o.CartItems {
		// A reference to a deleted product dereferences to null.
		if it == nil {
			order.CartItems = append(order.CartItems, models.LineItem{})
			continue
		}
		order.CartItems = append(order.CartItems, models.LineItem{
			ProductName: it.ProductName,
			Image:       imageRef(it.Image),
		})
	}
	return order
}

// imageRef accepts either a bare asset reference or an image object of the
// form {"asset": {"_ref": "image-..."}}.
func imageRef(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var ref string
	if err := json.Unmarshal(raw, &ref); err == nil {
		return ref
	}
	var obj struct {
		Asset struct {
			Ref string `json:"_ref"`
		} `json:"asset"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Asset.Ref
	}
	return ""
}

func (s *SanityStore) Fetch(ctx context.Context) ([]models.Order, error) {
	endpoint := fmt.Sprintf("%s/v%s/data/query/%s?query=%s",
		s.config.BaseURL, s.config.APIVersion, s.config.Dataset, url.QueryEscape(OrdersQuery))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, RemoteRejected("fetch", "", err)
	}

	var resp struct {
		Result []sanityOrder `json:"result"`
	}
	if err := s.do(req, "fetch", "", &resp); err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(resp.Result))
	for i := range resp.Result {
		orders = append(orders, resp.Result[i].toOrder())
	}
	return orders, nil
}

func (s *SanityStore) PatchStatus(ctx context.Context, id string, status models.Status) error {
	n, err := s.mutate(ctx, "patch", id, map[string]interface{}{
		"patch": map[string]interface{}{
			"id":  id,
			"set": map[string]interface{}{"status": string(status)},
		},
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return NotFound("patch", id)
	}
	return nil
}

// Delete removes the order document. Sanity answers a delete of a missing
// document with an empty result list, which counts as deleted.
func (s *SanityStore) Delete(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, "delete", id, map[string]interface{}{
		"delete": map[string]interface{}{"id": id},
	})
	return err
}

// mutate runs one mutation and returns how many documents it touched.
func (s *SanityStore) mutate(ctx context.Context, op, id string, mutation map[string]interface{}) (int, error) {
	body, err := json.Marshal(map[string]interface{}{
		"mutations": []interface{}{mutation},
	})
	if err != nil {
		return 0, RemoteRejected(op, id, err)
	}

	endpoint := fmt.Sprintf("%s/v%s/data/mutate/%s?returnIds=true",
		s.config.BaseURL, s.config.APIVersion, s.config.Dataset)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, RemoteRejected(op, id, err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp struct {
		TransactionID string `json:"transactionId"`
		Results       []struct {
			ID        string `json:"id"`
			Operation string `json:"operation"`
		} `json:"results"`
	}
	if err := s.do(req, op, id, &resp); err != nil {
		return 0, err
	}
	return len(resp.Results), nil
}

func (s *SanityStore) do(req *http.Request, op, id string, out interface{}) error {
	if s.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.config.Token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return NetworkFailure(op, id, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return NetworkFailure(op, id, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return NotFound(op, id)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error struct {
				Description string `json:"description"`
			} `json:"error"`
		}
		msg := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Description != "" {
			msg = apiErr.Error.Description
		}
		return RemoteRejected(op, id, fmt.Errorf("status %d: %s", resp.StatusCode, msg))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return RemoteRejected(op, id, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

package api

import (
	"context"
	"fmt"
	"net/url"

	"travel-storefront/internal/models"
)

// Activities lists the catalog. limit <= 0 means no limit parameter.
func (c *Client) Activities(ctx context.Context, limit int) ([]models.Activity, error) {
	path := "/activities"
	if limit > 0 {
		path = fmt.Sprintf("/activities?limit=%d", limit)
	}
	var activities []models.Activity
	if err := c.get(ctx, path, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (c *Client) Activity(ctx context.Context, id string) (*models.Activity, error) {
	var activity models.Activity
	if err := c.get(ctx, "/activity/"+url.PathEscape(id), &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (c *Client) ActivitiesByCategory(ctx context.Context, categoryID string) ([]models.Activity, error) {
	var activities []models.Activity
	err := c.get(ctx, "/activities-by-category/"+url.PathEscape(categoryID), &activities)
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.get(ctx, "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) Banners(ctx context.Context) ([]models.Banner, error) {
	var banners []models.Banner
	if err := c.get(ctx, "/banners", &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

func (c *Client) Promos(ctx context.Context) ([]models.Promo, error) {
	var promos []models.Promo
	if err := c.get(ctx, "/promos", &promos); err != nil {
		return nil, err
	}
	return promos, nil
}

func (c *Client) PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	if err := c.get(ctx, "/payment-methods", &methods); err != nil {
		return nil, err
	}
	return methods, nil
}

// ActivityInput is the admin create/update payload for an activity.
type ActivityInput struct {
	CategoryID    string   `json:"categoryId"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	ImageURLs     []string `json:"imageUrls"`
	Price         float64  `json:"price"`
	PriceDiscount float64  `json:"price_discount"`
	Facilities    string   `json:"facilities"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	Province      string   `json:"province"`
}

func (c *Client) CreateActivity(ctx context.Context, input ActivityInput) error {
	return c.post(ctx, "/create-activity", input, nil)
}

func (c *Client) UpdateActivity(ctx context.Context, id string, input ActivityInput) error {
	return c.post(ctx, "/update-activity/"+url.PathEscape(id), input, nil)
}

func (c *Client) DeleteActivity(ctx context.Context, id string) error {
	return c.delete(ctx, "/delete-activity/"+url.PathEscape(id))
}

// PromoInput is the admin create/update payload for a promo.
type PromoInput struct {
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	ImageURL           string  `json:"imageUrl"`
	TermsCondition     string  `json:"terms_condition"`
	PromoCode          string  `json:"promo_code"`
	PromoDiscountPrice float64 `json:"promo_discount_price"`
	MinimumClaimPrice  float64 `json:"minimum_claim_price"`
}

func (c *Client) CreatePromo(ctx context.Context, input PromoInput) error {
	return c.post(ctx, "/create-promo", input, nil)
}

func (c *Client) UpdatePromo(ctx context.Context, id string, input PromoInput) error {
	return c.post(ctx, "/update-promo/"+url.PathEscape(id), input, nil)
}

func (c *Client) DeletePromo(ctx context.Context, id string) error {
	return c.delete(ctx, "/delete-promo/"+url.PathEscape(id))
}

// BannerInput is the admin create/update payload for a banner.
type BannerInput struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

func (c *Client) CreateBanner(ctx context.Context, input BannerInput) error {
	return c.post(ctx, "/create-banner", input, nil)
}

func (c *Client) UpdateBanner(ctx context.Context, id string, input BannerInput) error {
	return c.post(ctx, "/update-banner/"+url.PathEscape(id), input, nil)
}

func (c *Client) DeleteBanner(ctx context.Context, id string) error {
	return c.delete(ctx, "/delete-banner/"+url.PathEscape(id))
}

// PaymentMethodInput is the admin create/update payload for a payment method.
type PaymentMethodInput struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
}

func (c *Client) CreatePaymentMethod(ctx context.Context, input PaymentMethodInput) error {
	return c.post(ctx, "/create-payment-method", input, nil)
}

func (c *Client) UpdatePaymentMethod(ctx context.Context, id string, input PaymentMethodInput) error {
	return c.post(ctx, "/update-payment-method/"+url.PathEscape(id), input, nil)
}

func (c *Client) DeletePaymentMethod(ctx context.Context, id string) error {
	return c.delete(ctx, "/delete-payment-method/"+url.PathEscape(id))
}

package models

import "encoding/json"

// Activity is a bookable travel activity from the upstream catalog.
type Activity struct {
	ID            string  `json:"id"`
	CategoryID    string  `json:"categoryId"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"imageUrl"`
	Price         float64 `json:"price"`
	PriceDiscount float64 `json:"price_discount"`
	Rating        float64 `json:"rating"`
	TotalReviews  int     `json:"total_reviews"`
	Facilities    string  `json:"facilities"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	Province      string  `json:"province"`
}

// UnmarshalJSON normalizes the upstream shape: images arrive either as a
// single "imageUrl" or an "imageUrls" array, and the discount/review fields
// flip between camel and snake case across API versions.
func (a *Activity) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID                 string   `json:"id"`
		CategoryIDCamel    string   `json:"categoryId"`
		CategoryIDSnake    string   `json:"category_id"`
		Title              string   `json:"title"`
		Description        string   `json:"description"`
		ImageURL           string   `json:"imageUrl"`
		ImageURLs          []string `json:"imageUrls"`
		Price              float64  `json:"price"`
		PriceDiscountSnake float64  `json:"price_discount"`
		PriceDiscountCamel float64  `json:"priceDiscount"`
		Rating             float64  `json:"rating"`
		TotalReviewsSnake  int      `json:"total_reviews"`
		TotalReviewsCamel  int      `json:"totalReviews"`
		Facilities         string   `json:"facilities"`
		Address            string   `json:"address"`
		City               string   `json:"city"`
		Province           string   `json:"province"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	a.ID = raw.ID
	a.CategoryID = firstNonEmpty(raw.CategoryIDCamel, raw.CategoryIDSnake)
	a.Title = raw.Title
	a.Description = raw.Description
	a.ImageURL = raw.ImageURL
	if a.ImageURL == "" && len(raw.ImageURLs) > 0 {
		a.ImageURL = raw.ImageURLs[0]
	}
	a.Price = raw.Price
	a.PriceDiscount = raw.PriceDiscountSnake
	if a.PriceDiscount == 0 {
		a.PriceDiscount = raw.PriceDiscountCamel
	}
	a.Rating = raw.Rating
	a.TotalReviews = raw.TotalReviewsSnake
	if a.TotalReviews == 0 {
		a.TotalReviews = raw.TotalReviewsCamel
	}
	a.Facilities = raw.Facilities
	a.Address = raw.Address
	a.City = raw.City
	a.Province = raw.Province
	return nil
}

// Category groups activities in the catalog.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// Banner is a promotional banner shown on the home page.
type Banner struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// PaymentMethod is one entry of the third-party payment-method list offered
// at checkout. The client only displays these; charging happens upstream.
type PaymentMethod struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	IsActive bool   `json:"isActive"`
}

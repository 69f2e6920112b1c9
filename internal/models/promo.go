package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Promo is a discount code with a minimum-transaction threshold and a fixed
// discount amount. Validation against the cart subtotal happens client-side
// for UX only; the API record stays authoritative.
type Promo struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	ImageURL           string  `json:"imageUrl"`
	TermsCondition     string  `json:"terms_condition"`
	PromoCode          string  `json:"promo_code"`
	PromoDiscountPrice float64 `json:"promo_discount_price"`
	MinimumClaimPrice  float64 `json:"minimum_claim_price"`
}

// UnmarshalJSON normalizes upstream naming drift; the promo fields have
// shipped as both snake and camel case ("minimum_claim_price" vs
// "minimumClaimPrice").
func (p *Promo) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID             string `json:"id"`
		Title          string `json:"title"`
		Description    string `json:"description"`
		ImageURL       string `json:"imageUrl"`
		TermsSnake     string `json:"terms_condition"`
		TermsCamel     string `json:"termsCondition"`
		CodeSnake      string `json:"promo_code"`
		CodeCamel      string `json:"promoCode"`
		DiscountSnake  float64 `json:"promo_discount_price"`
		DiscountCamel  float64 `json:"promoDiscountPrice"`
		MinimumSnake   float64 `json:"minimum_claim_price"`
		MinimumCamel   float64 `json:"minimumClaimPrice"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	p.ID = raw.ID
	p.Title = raw.Title
	p.Description = raw.Description
	p.ImageURL = raw.ImageURL
	p.TermsCondition = firstNonEmpty(raw.TermsSnake, raw.TermsCamel)
	p.PromoCode = firstNonEmpty(raw.CodeSnake, raw.CodeCamel)
	p.PromoDiscountPrice = raw.DiscountSnake
	if p.PromoDiscountPrice == 0 {
		p.PromoDiscountPrice = raw.DiscountCamel
	}
	p.MinimumClaimPrice = raw.MinimumSnake
	if p.MinimumClaimPrice == 0 {
		p.MinimumClaimPrice = raw.MinimumCamel
	}
	return nil
}

// PromoMinimumError reports that a cart subtotal is below a promo's
// minimum-claim price. No discount is applied in that case.
type PromoMinimumError struct {
	Code    string
	Minimum float64
}

func (e *PromoMinimumError) Error() string {
	return fmt.Sprintf("a minimum transaction of %s is required for promo %s", FormatRupiah(e.Minimum), e.Code)
}

// Validate checks the promo against a cart subtotal.
func (p *Promo) Validate(subtotal float64) error {
	if p.MinimumClaimPrice > 0 && subtotal < p.MinimumClaimPrice {
		return &PromoMinimumError{Code: p.PromoCode, Minimum: p.MinimumClaimPrice}
	}
	return nil
}

// FindPromo looks up a code in the published promo list. Codes are matched
// case-insensitively after trimming.
func FindPromo(promos []Promo, code string) (*Promo, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrPromoNotFound
	}
	for i := range promos {
		if strings.ToUpper(promos[i].PromoCode) == code {
			return &promos[i], nil
		}
	}
	return nil, ErrPromoNotFound
}

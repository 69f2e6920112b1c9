package api

import (
	"context"
	"net/url"

	"travel-storefront/internal/models"
)

// CreateTransaction asks the API to turn cart items into a transaction.
// The API computes the authoritative total; nothing price-related is sent.
func (c *Client) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.post(ctx, "/create-transaction", req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// MyTransactions lists the current user's transactions.
func (c *Client) MyTransactions(ctx context.Context) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := c.get(ctx, "/my-transactions", &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// AllTransactions lists every transaction; admin only.
func (c *Client) AllTransactions(ctx context.Context) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := c.get(ctx, "/all-transactions", &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *Client) CancelTransaction(ctx context.Context, id string) error {
	return c.post(ctx, "/cancel-transaction/"+url.PathEscape(id), nil, nil)
}

// UpdateTransactionStatus moves a transaction to success or failed; admin only.
func (c *Client) UpdateTransactionStatus(ctx context.Context, id string, status models.TransactionStatus) error {
	body := map[string]string{"status": string(status)}
	return c.post(ctx, "/update-transaction-status/"+url.PathEscape(id), body, nil)
}

// UpdateTransactionProof attaches a proof-of-payment URL to a transaction.
func (c *Client) UpdateTransactionProof(ctx context.Context, id, proofURL string) error {
	body := map[string]string{"proofPaymentUrl": proofURL}
	return c.post(ctx, "/update-transaction-proof-payment/"+url.PathEscape(id), body, nil)
}

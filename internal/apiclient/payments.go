// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apiclient

import (
	"context"
	"net/http"

	"github.com/taibuivan/phoenix/internal/blog"
)

// CreateOrder asks the backend for a payment order for a premium post.
// The order descriptor comes back without the data envelope.
func (c *Client) CreateOrder(ctx context.Context, postID string) (blog.Order, error) {
	return do[blog.Order](ctx, c, call{
		op: "payments.create_order", method: http.MethodPost, path: "/api/payments/create-order",
		body: blog.OrderRequest{PostID: postID}, bare: true,
	})
}

// VerifyPayment submits the checkout widget's proof for signature verification.
func (c *Client) VerifyPayment(ctx context.Context, proof blog.PaymentProof) error {
	return c.exec(ctx, call{op: "payments.verify", method: http.MethodPost, path: "/api/payments/verify", body: proof})
}

// HasPaid reports whether the current user has bought access to the post.
func (c *Client) HasPaid(ctx context.Context, postID string) (bool, error) {
	return do[bool](ctx, c, call{op: "payments.check", method: http.MethodGet, path: "/api/payments/check/" + segment(postID)})
}

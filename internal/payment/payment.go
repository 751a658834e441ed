// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package payment runs the premium-post checkout.

The flow:

 1. The backend creates an order descriptor for the post.
 2. The descriptor is handed to the third-party checkout widget.
 3. On the widget's success callback, its proof is sent back for verification.
 4. Access is re-checked so the post can be unlocked.

The client never sees payment credentials; it only relays the widget's proof.
*/
package payment

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/platform/apperr"
	"github.com/taibuivan/phoenix/internal/route"
)

// ErrDismissed is returned by a [Checkout] when the buyer closes the widget.
var ErrDismissed = errors.New("payment: checkout dismissed")

// API is the backend surface of the checkout.
type API interface {
	CreateOrder(ctx context.Context, postID string) (blog.Order, error)
	VerifyPayment(ctx context.Context, proof blog.PaymentProof) error
	HasPaid(ctx context.Context, postID string) (bool, error)
}

// Checkout is the third-party payment widget.
type Checkout interface {
	// Pay presents order to the buyer and returns the widget's proof.
	Pay(ctx context.Context, order blog.Order) (blog.PaymentProof, error)
}

// Gate tells whether a session exists.
type Gate interface {
	IsAuthenticated() bool
}

// Outcome is how a purchase attempt ended.
type Outcome string

const (
	OutcomePaid      Outcome = "paid"
	OutcomeDismissed Outcome = "dismissed"
	OutcomePending   Outcome = "pending"
)

// Flow buys access to premium posts.
type Flow struct {
	api      API
	checkout Checkout
	gate     Gate
	nav      route.Navigator
	logger   *slog.Logger
}

// NewFlow wires the checkout.
func NewFlow(api API, checkout Checkout, gate Gate, nav route.Navigator, logger *slog.Logger) *Flow {
	if logger == nil {
		logger = slog.Default()
	}
	return &Flow{api: api, checkout: checkout, gate: gate, nav: nav, logger: logger}
}

// Buy purchases access to postID.
//
// A logged-out buyer is sent to the login page. A dismissed widget is not an
// error. OutcomePending means verification succeeded but the backend does not
// report access yet.
func (f *Flow) Buy(ctx context.Context, postID string) (Outcome, error) {
	if !f.gate.IsAuthenticated() {
		f.nav.Navigate(route.Login)
		return "", apperr.Unauthenticated()
	}

	order, err := f.api.CreateOrder(ctx, postID)
	if err != nil {
		return "", apperr.Surface(err, "Failed to start payment")
	}

	proof, err := f.checkout.Pay(ctx, order)
	if errors.Is(err, ErrDismissed) {
		f.logger.InfoContext(ctx, "checkout_dismissed", slog.String("post_id", postID), slog.String("order_id", order.OrderID))
		return OutcomeDismissed, nil
	}
	if err != nil {
		return "", apperr.Surface(err, "Payment failed")
	}

	if err := f.api.VerifyPayment(ctx, proof); err != nil {
		return "", apperr.Surface(err, "Payment verification failed")
	}

	f.logger.InfoContext(ctx, "payment_verified", slog.String("post_id", postID), slog.String("order_id", order.OrderID))

	paid, err := f.api.HasPaid(ctx, postID)
	if err != nil {
		return OutcomePending, apperr.Surface(err, "Payment received; refresh to unlock the post")
	}
	if !paid {
		return OutcomePending, nil
	}
	return OutcomePaid, nil
}

// # Widgets

// CheckoutFunc adapts a function to [Checkout].
type CheckoutFunc func(ctx context.Context, order blog.Order) (blog.PaymentProof, error)

// Pay implements [Checkout].
func (fn CheckoutFunc) Pay(ctx context.Context, order blog.Order) (blog.PaymentProof, error) {
	return fn(ctx, order)
}

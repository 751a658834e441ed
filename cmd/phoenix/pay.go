// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/payment"
)

// terminalCheckout stands in for the browser widget: it shows the order and
// reads back the identifiers the provider's hosted page hands the buyer.
type terminalCheckout struct {
	c   *cli
	out io.Writer
}

// Pay implements [payment.Checkout]. A blank payment ID dismisses the checkout.
func (t terminalCheckout) Pay(_ context.Context, order blog.Order) (blog.PaymentProof, error) {
	fmt.Fprintf(t.out, "Order %s · %s\n", order.OrderID, formatPrice(order.Amount, order.Currency))
	fmt.Fprintf(t.out, "Complete the payment with key %s, then paste the result below.\n", order.KeyID)

	paymentID, err := t.c.prompt(t.out, "Payment ID (blank to cancel): ")
	if err != nil {
		return blog.PaymentProof{}, err
	}
	if paymentID == "" {
		return blog.PaymentProof{}, payment.ErrDismissed
	}

	signature, err := t.c.prompt(t.out, "Signature: ")
	if err != nil {
		return blog.PaymentProof{}, err
	}

	return blog.PaymentProof{OrderID: order.OrderID, PaymentID: paymentID, Signature: signature}, nil
}

func newPayCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "pay <post-id>",
		Short: "Buy access to a premium post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			flow := c.app.Payments(terminalCheckout{c: c, out: out})

			outcome, err := flow.Buy(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			switch outcome {
			case payment.OutcomePaid:
				fmt.Fprintf(out, "Payment verified. Run `%s posts show %s` to read it.\n", cmd.Root().Name(), args[0])
			case payment.OutcomeDismissed:
				fmt.Fprintln(out, "Payment cancelled")
			case payment.OutcomePending:
				fmt.Fprintln(out, "Payment received; access will unlock shortly.")
			}
			return nil
		},
	}
}

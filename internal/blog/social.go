// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

// Profile is the public page of a user.
type Profile struct {
	Username              string    `json:"username"`
	JoinedDate            Timestamp `json:"joinedDate"`
	TotalPosts            int       `json:"totalPosts"`
	Posts                 []Post    `json:"posts"`
	FollowersCount        int64     `json:"followersCount"`
	FollowingCount        int64     `json:"followingCount"`
	FollowedByCurrentUser bool      `json:"followedByCurrentUser"`
}

// Notification is one activity item addressed to the current user.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	ActorName string    `json:"actorName"`
	Message   string    `json:"message"`
	PostID    string    `json:"postId,omitempty"`
	PostTitle string    `json:"postTitle,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt Timestamp `json:"createdAt"`
}

// UnreadCount is the body of GET /api/notifications/unread-count.
type UnreadCount struct {
	Count int64 `json:"count"`
}

// Series is an author's ordered collection of posts.
type Series struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	AuthorName  string    `json:"authorName"`
	AuthorEmail string    `json:"authorEmail"`
	PostCount   int       `json:"postCount"`
	CreatedAt   Timestamp `json:"createdAt"`
}

// SeriesRequest is the body of series create and update calls.
type SeriesRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// # Payments

// Order is the descriptor the backend creates for a premium purchase.
// Amount is in minor currency units.
type Order struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

// OrderRequest is the body of POST /api/payments/create-order.
type OrderRequest struct {
	PostID string `json:"postId"`
}

// PaymentProof is what the checkout widget hands back on success; it is
// forwarded to the backend for signature verification untouched.
type PaymentProof struct {
	OrderID   string `json:"razorpayOrderId"`
	PaymentID string `json:"razorpayPaymentId"`
	Signature string `json:"razorpaySignature"`
}

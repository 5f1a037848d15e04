// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package intake accepts contact and review submissions from the public
// site and provides the listings and counts shown to admins.
package intake

import (
	"context"
	"database/sql"
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/olegiv/granite-go/internal/model"
	"github.com/olegiv/granite-go/internal/store"
)

// Star rating bounds.
const (
	MinStars = 1
	MaxStars = 5
)

// textPolicy strips all markup from submitted text.
var textPolicy = bluemonday.StrictPolicy()

// ContactInput is a contact form submission.
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// ReviewInput is a review form submission.
type ReviewInput struct {
	Name    string
	Email   string
	Phone   string
	Stars   int
	Message string
}

// Stats holds the admin dashboard counters.
type Stats struct {
	TotalUsers    int64
	TotalContacts int64
	TotalReviews  int64
	AvgRating     float64
}

// Service stores and lists submissions.
type Service struct {
	queries *store.Queries
	now     func() time.Time
}

// NewService creates a Service backed by db.
func NewService(db *sql.DB) *Service {
	return &Service{
		queries: store.New(db),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// SubmitContact validates and stores a contact message.
func (s *Service) SubmitContact(ctx context.Context, in ContactInput) (int64, error) {
	in.Name = clean(in.Name)
	in.Email = clean(in.Email)
	in.Message = clean(in.Message)

	if err := requireFields(
		field{"name", in.Name},
		field{"email", in.Email},
		field{"message", in.Message},
	); err != nil {
		return 0, err
	}

	id, err := s.queries.CreateContact(ctx, store.CreateContactParams{
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: s.now(),
	})
	if err != nil {
		return 0, fmt.Errorf("creating contact: %w", err)
	}
	return id, nil
}

// SubmitReview validates and stores a review.
func (s *Service) SubmitReview(ctx context.Context, in ReviewInput) (int64, error) {
	in.Name = clean(in.Name)
	in.Email = clean(in.Email)
	in.Phone = clean(in.Phone)
	in.Message = clean(in.Message)

	if err := requireFields(
		field{"name", in.Name},
		field{"email", in.Email},
		field{"phone", in.Phone},
		field{"message", in.Message},
	); err != nil {
		return 0, err
	}
	if in.Stars < MinStars || in.Stars > MaxStars {
		return 0, model.OutOfRangeField("stars")
	}

	id, err := s.queries.CreateReview(ctx, store.CreateReviewParams{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Stars:     int64(in.Stars),
		Message:   in.Message,
		CreatedAt: s.now(),
	})
	if err != nil {
		return 0, fmt.Errorf("creating review: %w", err)
	}
	return id, nil
}

// ParseStars converts a form value into a star rating.
// Anything that is not an integer in range is an OutOfRange error.
func ParseStars(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, model.Missing("stars")
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < MinStars || n > MaxStars {
		return 0, model.OutOfRangeField("stars")
	}
	return n, nil
}

// RecentReviews returns up to limit reviews, newest first.
func (s *Service) RecentReviews(ctx context.Context, limit int) ([]store.Review, error) {
	reviews, err := s.queries.ListRecentReviews(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("listing reviews: %w", err)
	}
	return reviews, nil
}

// ListContacts returns every contact message, newest first.
func (s *Service) ListContacts(ctx context.Context) ([]store.Contact, error) {
	contacts, err := s.queries.ListContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}
	return contacts, nil
}

// RecentContacts returns up to limit contact messages, newest first.
func (s *Service) RecentContacts(ctx context.Context, limit int) ([]store.Contact, error) {
	contacts, err := s.queries.ListRecentContacts(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}
	return contacts, nil
}

// DashboardStats returns the admin dashboard counters. The average rating is
// rounded to one decimal and is zero when there are no reviews.
func (s *Service) DashboardStats(ctx context.Context) (Stats, error) {
	var st Stats
	var err error

	if st.TotalUsers, err = s.queries.CountUsers(ctx); err != nil {
		return Stats{}, fmt.Errorf("counting users: %w", err)
	}
	if st.TotalContacts, err = s.queries.CountContacts(ctx); err != nil {
		return Stats{}, fmt.Errorf("counting contacts: %w", err)
	}
	if st.TotalReviews, err = s.queries.CountReviews(ctx); err != nil {
		return Stats{}, fmt.Errorf("counting reviews: %w", err)
	}

	avg, err := s.queries.AverageStars(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("averaging ratings: %w", err)
	}
	if avg.Valid {
		st.AvgRating = math.Round(avg.Float64*10) / 10
	}
	return st, nil
}

type field struct {
	name  string
	value string
}

func requireFields(fields ...field) error {
	for _, f := range fields {
		if f.value == "" {
			return model.Missing(f.name)
		}
	}
	return nil
}

// clean trims s and removes any HTML. The sanitizer escapes entities;
// templates escape on output, so they are decoded again here.
func clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

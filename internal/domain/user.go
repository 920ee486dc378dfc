package domain

import "time"

// UserProfile represents a user profile with its denormalized booking index
type UserProfile struct {
	UserID string
	Name   string
	Email  string
	Avatar string

	// BookingIDs is the per-user booking index: an append-only ordered list of
	// booking ids kept for fast "my bookings" retrieval without a reverse query.
	// Every id must reference a booking whose UserID equals this user.
	BookingIDs []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Turf is a bookable physical sports venue resource
type Turf struct {
	ID           string
	Name         string
	Address      string
	PricePerHour float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

package domain

import "time"

// Tour is a bookable tour package.
type Tour struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Slug          string         `json:"slug"`
	Description   string         `json:"description,omitempty"`
	Destination   string         `json:"destination"`
	Category      string         `json:"category,omitempty"`
	DurationDays  int            `json:"durationDays"`
	Price         float64        `json:"price"`
	DiscountPrice float64        `json:"discountPrice,omitempty"`
	Currency      string         `json:"currency,omitempty"`
	Status        TourStatus     `json:"status"`
	Featured      bool           `json:"featured"`
	Images        []string       `json:"images,omitempty"`
	Itinerary     []ItineraryDay `json:"itinerary,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// ItineraryDay is one day of a tour's programme.
type ItineraryDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type TourStatus string

const (
	TourStatusDraft     TourStatus = "draft"
	TourStatusPublished TourStatus = "published"
	TourStatusArchived  TourStatus = "archived"
)

// TourList is the payload of GET /admin/tours.
type TourList struct {
	Tours      []Tour     `json:"tours"`
	Pagination Pagination `json:"pagination"`
}

// TourInput is submitted on create and update.
type TourInput struct {
	Title         string         `json:"title"        validate:"required"`
	Destination   string         `json:"destination"  validate:"required"`
	Description   string         `json:"description"`
	Category      string         `json:"category"`
	DurationDays  int            `json:"durationDays" validate:"required,gt=0"`
	Price         float64        `json:"price"        validate:"gte=0"`
	DiscountPrice float64        `json:"discountPrice" validate:"gte=0"`
	Currency      string         `json:"currency"`
	Status        TourStatus     `json:"status"       validate:"omitempty,oneof=draft published archived"`
	Featured      bool           `json:"featured"`
	Itinerary     []ItineraryDay `json:"itinerary"`
	Images        []Upload       `json:"-"`
}

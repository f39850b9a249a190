package model

import (
	"encoding/json"
	"time"
)

type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
}

type Book struct {
	ID           string    `json:"_id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Author       string    `json:"author" db:"author"`
	CoverImage   string    `json:"coverImage" db:"cover_image"`
	Availability bool      `json:"availability" db:"availability"`
	Description  string    `json:"description" db:"description"`
	Genre        string    `json:"genre" db:"genre"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

type BookFilter struct {
	AvailableOnly bool
}

type ReadingStatus string

const (
	StatusWantToRead       ReadingStatus = "Want to Read"
	StatusCurrentlyReading ReadingStatus = "Currently Reading"
	StatusRead             ReadingStatus = "Read"
)

func (s ReadingStatus) Valid() bool {
	switch s {
	case StatusWantToRead, StatusCurrentlyReading, StatusRead:
		return true
	}
	return false
}

const (
	MinRating = 1
	MaxRating = 5
)

// ValidRating reports whether r is absent or within MinRating..MaxRating.
func ValidRating(r *int) bool {
	return r == nil || (*r >= MinRating && *r <= MaxRating)
}

// MyBook is a library entry: one user's relationship to one catalog book.
// The book is embedded under "bookId" to match what the web client renders.
type MyBook struct {
	ID        string        `json:"_id"`
	UserID    string        `json:"userId"`
	Book      Book          `json:"bookId"`
	Status    ReadingStatus `json:"status"`
	Rating    *int          `json:"rating"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type LibraryStats struct {
	Total            int      `json:"total" db:"total"`
	WantToRead       int      `json:"wantToRead" db:"want_to_read"`
	CurrentlyReading int      `json:"currentlyReading" db:"currently_reading"`
	Read             int      `json:"read" db:"read"`
	AverageRating    *float64 `json:"averageRating" db:"average_rating"`
}

type EventType string

const (
	EventBookAdded     EventType = "book_added"
	EventStatusUpdated EventType = "status_updated"
	EventRatingUpdated EventType = "rating_updated"
	EventBookRemoved   EventType = "book_removed"
)

type LibraryEvent struct {
	Type      EventType     `json:"type"`
	UserID    string        `json:"userId"`
	BookID    string        `json:"bookId"`
	Status    ReadingStatus `json:"status,omitempty"`
	Rating    *int          `json:"rating,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

// BookFields are the catalog fields a client sends when adding a book that
// may not exist locally yet, e.g. an external search result.
type BookFields struct {
	Title       string `json:"title" validate:"max=512"`
	Author      string `json:"author" validate:"max=512"`
	CoverImage  string `json:"coverImage" validate:"max=2048"`
	Description string `json:"description"`
	Genre       string `json:"genre" validate:"max=128"`
}

type UpdateStatusRequest struct {
	Status ReadingStatus `json:"status" validate:"required,oneof='Want to Read' 'Currently Reading' Read"`
}

// UpdateRatingRequest carries a rating or an explicit null that clears it.
// A body without the rating key is not a clear.
type UpdateRatingRequest struct {
	Rating *int `json:"rating" validate:"omitempty,min=1,max=5"`

	present bool
}

func (r *UpdateRatingRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Rating json.RawMessage `json:"rating"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Rating, r.present = nil, raw.Rating != nil
	if !r.present || string(raw.Rating) == "null" {
		return nil
	}
	var v int
	if err := json.Unmarshal(raw.Rating, &v); err != nil {
		return err
	}
	r.Rating = &v
	return nil
}

// HasRating reports whether the decoded body named a rating, null included.
func (r UpdateRatingRequest) HasRating() bool {
	return r.present
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type AuthResponse struct {
	Message string       `json:"message,omitempty"`
	User    UserResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email}
}

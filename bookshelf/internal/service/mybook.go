package service

import (
	"context"
	"strings"

	"github.com/akmurmu82/library-management-app/bookshelf/internal/errs"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/model"
	"github.com/pkg/errors"
)

func (s *Service) ListMyBooks(ctx context.Context, userID string, status model.ReadingStatus) ([]model.MyBook, error) {
	if status != "" && !status.Valid() {
		return nil, errs.Validation("Invalid status")
	}
	items, err := s.repo.ListMyBooks(ctx, userID, status)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.MyBook{}
	}
	return items, nil
}

// AddMyBook puts bookID on the user's shelf with status "Want to Read".
// A book missing from the catalog is created from fields under bookID,
// which keeps external search ids stable.
func (s *Service) AddMyBook(ctx context.Context, userID, bookID string, fields model.BookFields) (model.MyBook, error) {
	if _, err := s.repo.GetMyBook(ctx, userID, bookID); err == nil {
		return model.MyBook{}, errs.ErrBookInLibrary
	} else if !errors.Is(err, errs.ErrNotFound) {
		return model.MyBook{}, err
	}

	var newBook *model.Book
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			return model.MyBook{}, err
		}
		if strings.TrimSpace(fields.Title) == "" || strings.TrimSpace(fields.Author) == "" {
			return model.MyBook{}, errs.Validation("Title and author are required for a new book")
		}
		newBook = &model.Book{
			ID:           bookID,
			Title:        fields.Title,
			Author:       fields.Author,
			CoverImage:   fields.CoverImage,
			Availability: true,
			Description:  fields.Description,
			Genre:        fields.Genre,
		}
	}

	added, err := s.repo.AddMyBook(ctx, userID, bookID, newBook)
	if err != nil {
		return model.MyBook{}, err
	}
	s.publish(ctx, model.LibraryEvent{
		Type:   model.EventBookAdded,
		UserID: userID,
		BookID: bookID,
		Status: added.Status,
	})
	return added, nil
}

func (s *Service) UpdateStatus(ctx context.Context, userID, bookID string, status model.ReadingStatus) (model.MyBook, error) {
	if !status.Valid() {
		return model.MyBook{}, errs.Validation("Invalid status")
	}
	updated, err := s.repo.UpdateMyBookStatus(ctx, userID, bookID, status)
	if err != nil {
		return model.MyBook{}, err
	}
	s.publish(ctx, model.LibraryEvent{
		Type:   model.EventStatusUpdated,
		UserID: userID,
		BookID: bookID,
		Status: status,
	})
	return updated, nil
}

// UpdateRating sets the rating; nil clears it.
func (s *Service) UpdateRating(ctx context.Context, userID, bookID string, rating *int) (model.MyBook, error) {
	if !model.ValidRating(rating) {
		return model.MyBook{}, errs.Validation("Rating must be between 1 and 5")
	}
	updated, err := s.repo.UpdateMyBookRating(ctx, userID, bookID, rating)
	if err != nil {
		return model.MyBook{}, err
	}
	s.publish(ctx, model.LibraryEvent{
		Type:   model.EventRatingUpdated,
		UserID: userID,
		BookID: bookID,
		Rating: rating,
	})
	return updated, nil
}

func (s *Service) RemoveMyBook(ctx context.Context, userID, bookID string) error {
	if err := s.repo.DeleteMyBook(ctx, userID, bookID); err != nil {
		return err
	}
	s.publish(ctx, model.LibraryEvent{
		Type:   model.EventBookRemoved,
		UserID: userID,
		BookID: bookID,
	})
	return nil
}

func (s *Service) LibraryStats(ctx context.Context, userID string) (model.LibraryStats, error) {
	return s.repo.MyBookStats(ctx, userID)
}

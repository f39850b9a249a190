package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/akmurmu82/library-management-app/bookshelf/internal/errs"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/model"
	"github.com/akmurmu82/library-management-app/pkg/circuit_breaker"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	unknownAuthor = "Unknown"
	defaultGenre  = "General"
)

type Config struct {
	URL        string        `envconfig:"GOOGLE_BOOKS_URL" default:"https://www.googleapis.com/books/v1/volumes"`
	APIKey     string        `envconfig:"GOOGLE_BOOKS_API_KEY" json:"-"`
	Timeout    time.Duration `envconfig:"GOOGLE_BOOKS_TIMEOUT" default:"10s"`
	MaxResults int           `envconfig:"GOOGLE_BOOKS_MAX_RESULTS" default:"20"`
}

type Service struct {
	log    *zap.Logger
	client *http.Client
	cfg    Config
	cb     circuit_breaker.CircuitBreaker
}

func NewService(log *zap.Logger, cfg Config, cb circuit_breaker.CircuitBreaker) *Service {
	return &Service{
		log:    log,
		client: &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
		cb:     cb,
	}
}

func (s *Service) CB() circuit_breaker.CircuitBreaker {
	return s.cb
}

type volumes struct {
	Items []volume `json:"items"`
}

type volume struct {
	ID         string `json:"id"`
	VolumeInfo struct {
		Title       string   `json:"title"`
		Authors     []string `json:"authors"`
		Description string   `json:"description"`
		Categories  []string `json:"categories"`
		ImageLinks  struct {
			Thumbnail string `json:"thumbnail"`
		} `json:"imageLinks"`
	} `json:"volumeInfo"`
}

func (v volume) book() model.Book {
	info := v.VolumeInfo
	b := model.Book{
		ID:           v.ID,
		Title:        info.Title,
		Author:       strings.Join(info.Authors, ", "),
		CoverImage:   info.ImageLinks.Thumbnail,
		Availability: true,
		Description:  info.Description,
		Genre:        defaultGenre,
	}
	if b.Author == "" {
		b.Author = unknownAuthor
	}
	if len(info.Categories) > 0 && info.Categories[0] != "" {
		b.Genre = info.Categories[0]
	}
	return b
}

// Search returns volumes matching query mapped to catalog books.
// Any upstream failure, including an open breaker, is errs.ErrUnavailable.
func (s *Service) Search(ctx context.Context, query string) ([]model.Book, error) {
	var found volumes
	err := s.cb.Call(func() error {
		var err error
		found, err = s.search(ctx, query)
		return err
	})
	if err != nil {
		s.log.Warn("google books search", zap.String("q", query), zap.Error(err))
		return nil, errors.Wrap(errs.ErrUnavailable, err.Error())
	}
	books := make([]model.Book, 0, len(found.Items))
	for _, v := range found.Items {
		if v.ID == "" {
			continue
		}
		books = append(books, v.book())
	}
	return books, nil
}

func (s *Service) search(ctx context.Context, query string) (volumes, error) {
	params := url.Values{}
	params.Set("q", query)
	if s.cfg.MaxResults > 0 {
		params.Set("maxResults", strconv.Itoa(s.cfg.MaxResults))
	}
	if s.cfg.APIKey != "" {
		params.Set("key", s.cfg.APIKey)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return volumes{}, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return volumes{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return volumes{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var v volumes
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return volumes{}, errors.Wrap(err, "decode volumes")
	}
	return v, nil
}

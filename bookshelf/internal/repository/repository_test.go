package repository_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/akmurmu82/library-management-app/bookshelf/internal/errs"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/model"
	"github.com/akmurmu82/library-management-app/bookshelf/internal/repository"
	"github.com/akmurmu82/library-management-app/bookshelf/migrations"
	"github.com/akmurmu82/library-management-app/pkg/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestRepo connects to TEST_DATABASE_URL and empties all tables.
func newTestRepo(t *testing.T) repository.Repository {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}
	ctx := context.Background()
	pool, err := postgres.NewPostgresDB(ctx, &postgres.DB{URL: dsn, ConnTimeout: 5 * time.Second}, migrations.MigrationFiles)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	truncate(t, pool)

	repo, err := repository.NewRepository(pool, zap.NewNop())
	require.NoError(t, err)
	return repo
}

func truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `truncate my_books, books, users cascade`)
	require.NoError(t, err)
}

func mustUser(t *testing.T, repo repository.Repository, email string) model.User {
	t.Helper()
	u, err := repo.CreateUser(context.Background(), model.User{Email: email, PasswordHash: "hash"})
	require.NoError(t, err)
	return u
}

func TestRepository_Users(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	u := mustUser(t, repo, "a@x.com")
	require.NotEmpty(t, u.ID)

	_, err := repo.CreateUser(ctx, model.User{Email: "a@x.com", PasswordHash: "other"})
	require.ErrorIs(t, err, errs.ErrUserExists)

	got, err := repo.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, "hash", got.PasswordHash)

	got, err = repo.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", got.Email)

	_, err = repo.GetUserByEmail(ctx, "A@x.com")
	require.ErrorIs(t, err, errs.ErrUserNotFound)
	_, err = repo.GetUserByID(ctx, "not-a-uuid")
	require.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestRepository_Books(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceBooks(ctx, []model.Book{
		{Title: "First", Author: "A", Availability: true},
		{Title: "Hidden", Author: "B", Availability: false},
		{Title: "Third", Author: "C", Availability: true},
	}))

	available, err := repo.ListBooks(ctx, model.BookFilter{AvailableOnly: true})
	require.NoError(t, err)
	require.Len(t, available, 2)
	require.Equal(t, "First", available[0].Title)
	require.Equal(t, "Third", available[1].Title)

	all, err := repo.ListBooks(ctx, model.BookFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	created, err := repo.CreateBook(ctx, model.Book{ID: "ext-42", Title: "Dune", Author: "Herbert", Availability: true})
	require.NoError(t, err)
	require.Equal(t, "ext-42", created.ID)

	again, err := repo.CreateBook(ctx, model.Book{ID: "ext-42", Title: "Other", Author: "Other"})
	require.NoError(t, err)
	require.Equal(t, "Dune", again.Title)

	_, err = repo.GetBook(ctx, "missing")
	require.ErrorIs(t, err, errs.ErrBookNotFound)
}

func TestRepository_MyBooks(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	alice := mustUser(t, repo, "alice@x.com")
	bob := mustUser(t, repo, "bob@x.com")

	dune := &model.Book{ID: "ext-42", Title: "Dune", Author: "Herbert", CoverImage: "url", Availability: true}
	added, err := repo.AddMyBook(ctx, alice.ID, dune.ID, dune)
	require.NoError(t, err)
	require.Equal(t, model.StatusWantToRead, added.Status)
	require.Nil(t, added.Rating)
	require.Equal(t, "Dune", added.Book.Title)
	require.Equal(t, alice.ID, added.UserID)

	_, err = repo.AddMyBook(ctx, alice.ID, dune.ID, nil)
	require.ErrorIs(t, err, errs.ErrBookInLibrary)

	_, err = repo.AddMyBook(ctx, alice.ID, "missing", nil)
	require.ErrorIs(t, err, errs.ErrBookNotFound)

	updated, err := repo.UpdateMyBookStatus(ctx, alice.ID, dune.ID, model.StatusRead)
	require.NoError(t, err)
	require.Equal(t, model.StatusRead, updated.Status)
	require.Equal(t, added.ID, updated.ID)

	four := 4
	updated, err = repo.UpdateMyBookRating(ctx, alice.ID, dune.ID, &four)
	require.NoError(t, err)
	require.Equal(t, 4, *updated.Rating)
	require.Equal(t, model.StatusRead, updated.Status)

	stats, err := repo.MyBookStats(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Total)
	require.Equal(t, 1, stats.Read)
	require.InDelta(t, 4.0, *stats.AverageRating, 0.001)

	// bob cannot see or touch alice's entry
	_, err = repo.GetMyBook(ctx, bob.ID, dune.ID)
	require.ErrorIs(t, err, errs.ErrMyBookNotFound)
	_, err = repo.UpdateMyBookStatus(ctx, bob.ID, dune.ID, model.StatusWantToRead)
	require.ErrorIs(t, err, errs.ErrMyBookNotFound)
	require.ErrorIs(t, repo.DeleteMyBook(ctx, bob.ID, dune.ID), errs.ErrMyBookNotFound)
	bobs, err := repo.ListMyBooks(ctx, bob.ID, "")
	require.NoError(t, err)
	require.Empty(t, bobs)

	filtered, err := repo.ListMyBooks(ctx, alice.ID, model.StatusCurrentlyReading)
	require.NoError(t, err)
	require.Empty(t, filtered)

	require.NoError(t, repo.DeleteMyBook(ctx, alice.ID, dune.ID))
	list, err := repo.ListMyBooks(ctx, alice.ID, "")
	require.NoError(t, err)
	require.Empty(t, list)
	_, err = repo.UpdateMyBookRating(ctx, alice.ID, dune.ID, nil)
	require.ErrorIs(t, err, errs.ErrMyBookNotFound)

	empty, err := repo.MyBookStats(ctx, alice.ID)
	require.NoError(t, err)
	require.Zero(t, empty.Total)
	require.Nil(t, empty.AverageRating)
}

func TestRepository_AddMyBook_Concurrent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	u := mustUser(t, repo, "race@x.com")
	book := &model.Book{ID: "ext-race", Title: "Race", Author: "Condition", Availability: true}

	const n = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.AddMyBook(ctx, u.ID, book.ID, book)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, errs.ErrBookInLibrary):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, succeeded)
	require.Equal(t, n-1, conflicts)
	list, err := repo.ListMyBooks(ctx, u.ID, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

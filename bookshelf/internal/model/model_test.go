package model_test

import (
	"encoding/json"
	"testing"

	"github.com/akmurmu82/library-management-app/bookshelf/internal/model"
	"github.com/stretchr/testify/require"
)

func TestReadingStatus_Valid(t *testing.T) {
	for _, s := range []model.ReadingStatus{model.StatusWantToRead, model.StatusCurrentlyReading, model.StatusRead} {
		require.True(t, s.Valid(), s)
	}
	for _, s := range []model.ReadingStatus{"", "read", "Reading", "Want To Read"} {
		require.False(t, s.Valid(), s)
	}
}

func TestValidRating(t *testing.T) {
	r := func(i int) *int { return &i }
	require.True(t, model.ValidRating(nil))
	require.True(t, model.ValidRating(r(1)))
	require.True(t, model.ValidRating(r(5)))
	require.False(t, model.ValidRating(r(0)))
	require.False(t, model.ValidRating(r(6)))
	require.False(t, model.ValidRating(r(-1)))
}

func TestUpdateRatingRequest_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		present bool
		rating  *int
		wantErr bool
	}{
		{name: "value", body: `{"rating":3}`, present: true, rating: func() *int { i := 3; return &i }()},
		{name: "null clears", body: `{"rating":null}`, present: true},
		{name: "missing", body: `{}`},
		{name: "other key", body: `{"rate":2}`},
		{name: "fraction", body: `{"rating":3.5}`, wantErr: true},
		{name: "string", body: `{"rating":"5"}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req model.UpdateRatingRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.present, req.HasRating())
			require.Equal(t, tt.rating, req.Rating)
		})
	}
}

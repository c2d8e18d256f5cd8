package rating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photofeed/service/internal/photo"
)

type fakeStore struct {
	byPhoto map[string][]Rating
}

func newFakeStore() *fakeStore {
	return &fakeStore{byPhoto: map[string][]Rating{}}
}

func (f *fakeStore) Insert(_ context.Context, partitionKey, _ string, _ time.Time, doc *Rating) error {
	f.byPhoto[partitionKey] = append(f.byPhoto[partitionKey], *doc)
	return nil
}

func (f *fakeStore) Count(_ context.Context, partitionKey string) (int64, error) {
	return int64(len(f.byPhoto[partitionKey])), nil
}

func (f *fakeStore) Average(_ context.Context, partitionKey, _ string) (*float64, error) {
	ratings := f.byPhoto[partitionKey]
	if len(ratings) == 0 {
		return nil, nil
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Value
	}
	avg := float64(sum) / float64(len(ratings))
	return &avg, nil
}

type fakeProbe struct {
	known map[string]bool
}

func (f *fakeProbe) Exists(_ context.Context, id string) (bool, error) {
	return f.known[id], nil
}

func TestAddRating(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeProbe{known: map[string]bool{"p1": true}})

	r, err := svc.Add(context.Background(), "p1", 3)
	require.NoError(t, err)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "p1", r.PhotoID)
	assert.Equal(t, 3, r.Value)
	assert.WithinDuration(t, time.Now(), r.CreatedAt, 5*time.Second)
}

func TestAddRatingOutOfRange(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeProbe{known: map[string]bool{"p1": true}})

	for _, v := range []int{0, 6, -1, 100} {
		_, err := svc.Add(context.Background(), "p1", v)
		assert.ErrorIs(t, err, ErrOutOfRange, "value %d", v)
	}

	for _, v := range []int{1, 5} {
		_, err := svc.Add(context.Background(), "p1", v)
		assert.NoError(t, err, "value %d", v)
	}
}

func TestAddRatingUnknownPhoto(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeProbe{known: map[string]bool{}})

	_, err := svc.Add(context.Background(), "ghost", 3)
	assert.ErrorIs(t, err, photo.ErrNotFound)
}

func TestSummaryEmpty(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeProbe{known: map[string]bool{"p1": true}})

	s, err := svc.Summary(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "p1", s.PhotoID)
	assert.Nil(t, s.Average)
	assert.Zero(t, s.Count)
}

func TestSummaryAfterRatings(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeProbe{known: map[string]bool{"p1": true, "p2": true}})

	for _, v := range []int{4, 2} {
		_, err := svc.Add(context.Background(), "p1", v)
		require.NoError(t, err)
	}
	_, err := svc.Add(context.Background(), "p2", 5)
	require.NoError(t, err)

	s, err := svc.Summary(context.Background(), "p1")
	require.NoError(t, err)

	require.NotNil(t, s.Average)
	assert.Equal(t, 3.0, *s.Average)
	assert.Equal(t, int64(2), s.Count, "ratings on other photos stay out of the summary")
}

package usecase

import (
	"context"
	"testing"
	"time"

	"artliving/internal/data/entity"
	"artliving/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newReviewFixture() (*reviewService, *fakeReviews) {
	products := &fakeProducts{byID: map[entity.ID]entity.Product{"3": {ID: "3", Name: "מיטה"}}}
	reviews := &fakeReviews{reviews: []entity.Review{
		{ID: "1", ProductID: "3", UserID: "9", UserName: "noa", Rating: 5, Comment: "מעולה"},
	}}
	svc := NewReviewService(newTestRepo(products, &fakeUsers{}, reviews), zap.NewNop()).(*reviewService)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return svc, reviews
}

func TestAddReviewReturnsRefreshedList(t *testing.T) {
	svc, reviews := newReviewFixture()
	viewer := &entity.User{ID: "8", UserName: "dana"}

	detail, err := svc.AddReview(context.Background(), "3", viewer, &request.CreateReviewRequest{Rating: 3, Comment: "בסדר"})
	require.NoError(t, err)

	require.Len(t, reviews.created, 1)
	created := reviews.created[0]
	assert.Equal(t, "2024-05-01", created.Date)
	assert.Equal(t, "dana", created.UserName)
	assert.Equal(t, entity.ID("3"), created.ProductID)

	assert.Equal(t, 2, detail.ReviewCount)
	assert.Equal(t, 4.0, detail.AverageRating)
}

func TestAddReviewRules(t *testing.T) {
	svc, reviews := newReviewFixture()
	ctx := context.Background()
	req := &request.CreateReviewRequest{Rating: 4, Comment: "יפה"}

	_, err := svc.AddReview(ctx, "3", nil, req)
	assert.ErrorIs(t, err, ErrLoginRequired)

	_, err = svc.AddReview(ctx, "3", &entity.User{ID: "1", IsAdmin: true}, req)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.AddReview(ctx, "3", &entity.User{ID: "8"}, &request.CreateReviewRequest{Rating: 6})
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	assert.Empty(t, reviews.created)
}

func TestDeleteReviewPermissions(t *testing.T) {
	ctx := context.Background()

	svc, reviews := newReviewFixture()
	_, err := svc.DeleteReview(ctx, "3", "1", &entity.User{ID: "8"})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, reviews.deleted)

	_, err = svc.DeleteReview(ctx, "3", "42", &entity.User{ID: "9"})
	assert.ErrorIs(t, err, ErrNotFound)

	detail, err := svc.DeleteReview(ctx, "3", "1", &entity.User{ID: "9"})
	require.NoError(t, err)
	assert.Equal(t, []entity.ID{"1"}, reviews.deleted)
	assert.Zero(t, detail.ReviewCount)

	svc, reviews = newReviewFixture()
	_, err = svc.DeleteReview(ctx, "3", "1", &entity.User{ID: "1", IsAdmin: true})
	require.NoError(t, err)
	assert.Len(t, reviews.deleted, 1)
}

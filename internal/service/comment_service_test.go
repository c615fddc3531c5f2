package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/metrics"
	"github.com/rdevrajsinh/totalenc/internal/service"
)

func TestCommentService(t *testing.T) {
	ctx := context.Background()
	comments := service.NewCommentService(service.DemoComments(time.Now()))

	all, err := comments.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i, c := range all {
		assert.Equal(t, int64(i+1), c.ID)
	}
	assert.Equal(t, domain.CommentStatusPending, all[1].Status)

	approvals := testutil.ToFloat64(metrics.CommentModerationsTotal.WithLabelValues("approve"))
	approved, err := comments.Approve(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, approved)
	assert.Equal(t, domain.CommentStatusApproved, approved.Status)
	assert.Equal(t, approvals+1, testutil.ToFloat64(metrics.CommentModerationsTotal.WithLabelValues("approve")))

	rejected, err := comments.Reject(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.CommentStatusSpam, rejected.Status)

	got, err := comments.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.CommentStatusSpam, got.Status)

	missing, err := comments.Approve(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)

	ok, err := comments.Delete(ctx, 4)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = comments.Delete(ctx, 4)
	require.NoError(t, err)
	assert.False(t, ok)

	all, err = comments.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingBlog() Blog {
	return Blog{
		ID:     "blog-1",
		Title:  "Testing in production",
		Slug:   "testing-in-production",
		Status: BlogPending,
	}
}

func TestApproveSetsPublishedState(t *testing.T) {
	blog := pendingBlog()

	err := blog.Approve("admin-1", PromoFlags{Featured: true})
	require.NoError(t, err)

	assert.Equal(t, BlogPublished, blog.Status)
	require.NotNil(t, blog.ApprovedAt)
	require.NotNil(t, blog.ApprovedBy)
	assert.Equal(t, "admin-1", *blog.ApprovedBy)
	assert.True(t, blog.IsFeatured)
	assert.False(t, blog.IsHot)
}

func TestApprovePublishedBlogFails(t *testing.T) {
	blog := pendingBlog()
	require.NoError(t, blog.Approve("admin-1", PromoFlags{}))

	err := blog.Approve("admin-2", PromoFlags{})
	assert.Error(t, err)
}

func TestApproveClearsEarlierRejection(t *testing.T) {
	blog := pendingBlog()
	require.NoError(t, blog.Reject("admin-1", "needs work"))

	require.NoError(t, blog.Approve("admin-2", PromoFlags{}))

	assert.Nil(t, blog.RejectedAt)
	assert.Nil(t, blog.RejectedBy)
	assert.Empty(t, blog.RejectionReason)
}

func TestRejectRecordsDecision(t *testing.T) {
	blog := pendingBlog()

	err := blog.Reject("admin-1", "duplicate content")
	require.NoError(t, err)

	assert.Equal(t, BlogRejected, blog.Status)
	assert.Equal(t, "duplicate content", blog.RejectionReason)
	require.NotNil(t, blog.RejectedBy)
	assert.Equal(t, "admin-1", *blog.RejectedBy)
	assert.Nil(t, blog.ApprovedAt)
}

func TestRejectPublishedBlogFails(t *testing.T) {
	blog := pendingBlog()
	require.NoError(t, blog.Approve("admin-1", PromoFlags{}))

	err := blog.Reject("admin-1", "changed my mind")
	assert.Error(t, err)
	assert.Equal(t, BlogPublished, blog.Status)
}

func TestSubmitForReviewOnlyFromRejected(t *testing.T) {
	blog := pendingBlog()
	assert.Error(t, blog.SubmitForReview())

	require.NoError(t, blog.Reject("admin-1", "typos"))
	require.NoError(t, blog.SubmitForReview())

	assert.Equal(t, BlogPending, blog.Status)
	assert.Empty(t, blog.RejectionReason)
	assert.Nil(t, blog.RejectedAt)
}

func TestApplyOwnerEditResetsModeration(t *testing.T) {
	blog := pendingBlog()
	require.NoError(t, blog.Approve("admin-1", PromoFlags{Featured: true, Hot: true, Popular: true}))

	blog.ApplyOwnerEdit()

	assert.Equal(t, BlogPending, blog.Status)
	assert.Nil(t, blog.ApprovedAt)
	assert.Nil(t, blog.ApprovedBy)
	assert.False(t, blog.IsFeatured)
	assert.False(t, blog.IsHot)
	assert.False(t, blog.IsPopular)
}

func TestApplyAdminStatus(t *testing.T) {
	tests := []struct {
		name         string
		target       BlogStatus
		reason       string
		wantApproved bool
		wantRejected bool
		wantErr      bool
	}{
		{name: "publish", target: BlogPublished, wantApproved: true},
		{name: "reject with reason", target: BlogRejected, reason: "spam", wantRejected: true},
		{name: "back to draft", target: BlogDraft},
		{name: "invalid state", target: BlogStatus("archived"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blog := pendingBlog()
			err := blog.ApplyAdminStatus("admin-1", tt.target, tt.reason)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, blog.Status)
			assert.Equal(t, tt.wantApproved, blog.ApprovedAt != nil)
			assert.Equal(t, tt.wantRejected, blog.RejectedAt != nil)
			if tt.wantRejected {
				assert.Equal(t, tt.reason, blog.RejectionReason)
			}
		})
	}
}

func TestValidBlogStatus(t *testing.T) {
	assert.True(t, ValidBlogStatus("draft"))
	assert.True(t, ValidBlogStatus("published"))
	assert.False(t, ValidBlogStatus("archived"))
	assert.False(t, ValidBlogStatus(""))
}

package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blogify-backend/models"
)

var (
	admin  = &models.User{ID: "admin-1", Role: models.RoleAdmin}
	owner  = &models.User{ID: "owner-1", Role: models.RoleBlogger}
	reader = &models.User{ID: "reader-1", Role: models.RoleUser}
)

func blogInState(status models.BlogStatus) *models.Blog {
	return &models.Blog{ID: "blog-1", UserID: owner.ID, Status: status}
}

func TestCanView(t *testing.T) {
	tests := []struct {
		name  string
		actor *models.User
		blog  *models.Blog
		want  bool
	}{
		{"anonymous sees published", nil, blogInState(models.BlogPublished), true},
		{"anonymous blocked from pending", nil, blogInState(models.BlogPending), false},
		{"reader blocked from pending", reader, blogInState(models.BlogPending), false},
		{"owner sees own pending", owner, blogInState(models.BlogPending), true},
		{"owner sees own rejected", owner, blogInState(models.BlogRejected), true},
		{"admin sees anything", admin, blogInState(models.BlogDraft), true},
		{"nil blog denied", admin, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanView(tt.actor, tt.blog))
		})
	}
}

func TestCanEdit(t *testing.T) {
	tests := []struct {
		name  string
		actor *models.User
		blog  *models.Blog
		want  bool
	}{
		{"owner edits pending", owner, blogInState(models.BlogPending), true},
		{"owner edits rejected", owner, blogInState(models.BlogRejected), true},
		{"owner blocked on published", owner, blogInState(models.BlogPublished), false},
		{"admin edits published", admin, blogInState(models.BlogPublished), true},
		{"stranger blocked", reader, blogInState(models.BlogPending), false},
		{"anonymous blocked", nil, blogInState(models.BlogPublished), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanEdit(tt.actor, tt.blog))
		})
	}
}

func TestCanDelete(t *testing.T) {
	tests := []struct {
		name  string
		actor *models.User
		blog  *models.Blog
		want  bool
	}{
		{"owner deletes pending", owner, blogInState(models.BlogPending), true},
		{"owner deletes rejected", owner, blogInState(models.BlogRejected), true},
		{"owner blocked on published", owner, blogInState(models.BlogPublished), false},
		{"owner blocked on draft", owner, blogInState(models.BlogDraft), false},
		{"admin deletes published", admin, blogInState(models.BlogPublished), true},
		{"stranger blocked", reader, blogInState(models.BlogRejected), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDelete(tt.actor, tt.blog))
		})
	}
}

func TestCanEngage(t *testing.T) {
	tests := []struct {
		name  string
		actor *models.User
		blog  *models.Blog
		want  bool
	}{
		{"reader engages published", reader, blogInState(models.BlogPublished), true},
		{"owner engages own published", owner, blogInState(models.BlogPublished), true},
		{"owner blocked on own pending", owner, blogInState(models.BlogPending), false},
		{"admin blocked on draft", admin, blogInState(models.BlogDraft), false},
		{"admin blocked on rejected", admin, blogInState(models.BlogRejected), false},
		{"anonymous blocked", nil, blogInState(models.BlogPublished), false},
		{"nil blog denied", reader, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanEngage(tt.actor, tt.blog))
		})
	}
}

func TestAdminOnlyPredicates(t *testing.T) {
	assert.True(t, CanSetPromotionFlags(admin))
	assert.False(t, CanSetPromotionFlags(owner))
	assert.False(t, CanSetPromotionFlags(nil))

	assert.True(t, CanChangeStatusDirectly(admin))
	assert.False(t, CanChangeStatusDirectly(reader))
	assert.False(t, CanChangeStatusDirectly(nil))
}

package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusOf(NewValidationError("bad")))
	assert.Equal(t, http.StatusBadRequest, StatusOf(NewConflictError("dup")))
	assert.Equal(t, http.StatusUnauthorized, StatusOf(NewAuthenticationError("who")))
	assert.Equal(t, http.StatusForbidden, StatusOf(NewAuthorizationError("no")))
	assert.Equal(t, http.StatusNotFound, StatusOf(NewNotFoundError("gone")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(NewDependencyError("smtp", errors.New("down"))))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("plain")))
}

func TestTranslateDBError(t *testing.T) {
	assert.NoError(t, TranslateDBError(nil, "", ""))

	err := TranslateDBError(gorm.ErrRecordNotFound, "Blog not found", "")
	assert.Equal(t, http.StatusNotFound, StatusOf(err))
	assert.Equal(t, "Blog not found", err.Error())

	err = TranslateDBError(gorm.ErrDuplicatedKey, "", "Title already exists")
	assert.Equal(t, http.StatusBadRequest, StatusOf(err))
	assert.Equal(t, "Title already exists", err.Error())

	plain := errors.New("connection refused")
	assert.Equal(t, plain, TranslateDBError(plain, "", ""))
}

func TestAppErrorUnwrap(t *testing.T) {
	inner := errors.New("dial tcp: refused")
	err := NewDependencyError("mailer unavailable", inner)

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "mailer unavailable")
	assert.Contains(t, err.Error(), "dial tcp: refused")
}

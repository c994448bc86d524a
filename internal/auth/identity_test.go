package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goshop/catalog-service/internal/apperr"
)

func TestAuthorize(t *testing.T) {
	t.Run("nil caller is unauthenticated", func(t *testing.T) {
		err := Authorize(nil, RoleAdmin)
		require.Error(t, err)
		assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
	})

	t.Run("empty user id is unauthenticated", func(t *testing.T) {
		err := Authorize(&Identity{Role: RoleAdmin}, RoleAdmin)
		require.Error(t, err)
		assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
	})

	t.Run("wrong role is unauthorized", func(t *testing.T) {
		err := Authorize(&Identity{UserID: "u1", Role: RoleSeller}, RoleAdmin)
		require.Error(t, err)
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	})

	t.Run("matching role passes", func(t *testing.T) {
		assert.NoError(t, Authorize(&Identity{UserID: "u1", Role: RoleAdmin}, RoleAdmin))
	})
}

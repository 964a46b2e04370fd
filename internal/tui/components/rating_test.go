package components

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRatingView(t *testing.T) {
	t.Parallel()

	t.Run("renders label and review count", func(t *testing.T) {
		t.Parallel()
		r := NewRating(20, "#d97706")
		view := r.View(4.94, 3)
		require.Contains(t, view, "★ 4.94")
		require.Contains(t, view, "(3 reviews)")
	})

	t.Run("omits review count when negative", func(t *testing.T) {
		t.Parallel()
		r := NewRating(20, "#d97706")
		require.NotContains(t, r.View(3, -1), "reviews")
	})

	t.Run("clamps out of range ratings", func(t *testing.T) {
		t.Parallel()
		r := NewRating(10, "#d97706")
		require.NotPanics(t, func() {
			_ = r.View(-1, 0)
			_ = r.View(7.5, 0)
		})
		require.Contains(t, r.View(7.5, -1), r.bar.ViewAs(1.0))
		require.Contains(t, r.View(-1, -1), r.bar.ViewAs(0))
	})
}

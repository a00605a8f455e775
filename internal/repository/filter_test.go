package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/panic_alert_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildAlertQuery(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	district := uuid.New()

	t.Run("all filters off for global admin", func(t *testing.T) {
		query, args := BuildAlertQuery(models.AlertFilter{
			Status:       models.StatusAll,
			Range:        models.RangeAll,
			AllDistricts: true,
		}, now)

		assert.NotContains(t, query, "WHERE")
		assert.Contains(t, query, "ORDER BY created_at DESC")
		assert.Empty(t, args)
	})

	t.Run("24h range uses inclusive lower bound", func(t *testing.T) {
		query, args := BuildAlertQuery(models.AlertFilter{
			Status:       models.StatusAll,
			Range:        models.RangeDay,
			AllDistricts: true,
		}, now)

		assert.Contains(t, query, "created_at >= $1")
		assert.Equal(t, []any{now.Add(-24 * time.Hour)}, args)
	})

	t.Run("status range search district and limit combined", func(t *testing.T) {
		query, args := BuildAlertQuery(models.AlertFilter{
			Status:     string(models.AlertStatusActive),
			Range:      models.RangeWeek,
			Search:     " 50%_off ",
			DistrictID: &district,
			Limit:      200,
		}, now)

		assert.Contains(t, query, "alert_status = $1")
		assert.Contains(t, query, "created_at >= $2")
		assert.Contains(t, query, "location_address ILIKE $3 OR notes ILIKE $3 OR user_id::text ILIKE $3")
		assert.Contains(t, query, "district_id = $4")
		assert.Contains(t, query, "LIMIT $5")
		assert.Equal(t, []any{
			"active",
			now.Add(-7 * 24 * time.Hour),
			`%50\%\_off%`,
			district,
			200,
		}, args)
	})

	t.Run("operator without district sees nothing", func(t *testing.T) {
		query, args := BuildAlertQuery(models.AlertFilter{Range: models.RangeAll}, now)

		assert.Contains(t, query, "WHERE FALSE")
		assert.Empty(t, args)
	})

	t.Run("unknown range is ignored", func(t *testing.T) {
		query, _ := BuildAlertQuery(models.AlertFilter{Range: "1y", AllDistricts: true}, now)

		assert.NotContains(t, query, "created_at >=")
	})
}

func TestRangeLowerBound_NarrowerWindowIsLater(t *testing.T) {
	now := time.Now()
	var bounds []time.Time
	for _, r := range []string{models.RangeMonth, models.RangeWeek, models.RangeDay} {
		_, args := BuildAlertQuery(models.AlertFilter{Range: r, AllDistricts: true}, now)
		bounds = append(bounds, args[0].(time.Time))
	}

	assert.True(t, bounds[0].Before(bounds[1]))
	assert.True(t, bounds[1].Before(bounds[2]))
}

package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/panic_alert_system/internal/models"
)

const alertColumns = `
			id,
			user_id,
			location_latitude,
			location_longitude,
			location_address,
			alert_status,
			response_time,
			responded_by,
			notes,
			district_id,
			created_at,
			updated_at`

// BuildAlertQuery собирает SELECT по фильтру админки.
// Граница диапазона включительная: тревога, созданная ровно now-24h, попадает в выборку "24h".
func BuildAlertQuery(f models.AlertFilter, now time.Time) (string, []any) {
	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Status != "" && f.Status != models.StatusAll {
		conds = append(conds, "alert_status = "+next(f.Status))
	}
	if window, ok := models.RangeWindow(f.Range); ok {
		conds = append(conds, "created_at >= "+next(now.Add(-window)))
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		p := next("%" + escapeLike(search) + "%")
		conds = append(conds, fmt.Sprintf(
			"(location_address ILIKE %[1]s OR notes ILIKE %[1]s OR user_id::text ILIKE %[1]s)", p))
	}
	if !f.AllDistricts {
		if f.DistrictID == nil {
			// Оператор без района не видит ничего
			conds = append(conds, "FALSE")
		} else {
			conds = append(conds, "district_id = "+next(*f.DistrictID))
		}
	}

	var sb strings.Builder
	sb.WriteString("SELECT")
	sb.WriteString(alertColumns)
	sb.WriteString("\n\t\tFROM panic_alerts")
	if len(conds) > 0 {
		sb.WriteString("\n\t\tWHERE ")
		sb.WriteString(strings.Join(conds, "\n\t\t\tAND "))
	}
	sb.WriteString("\n\t\tORDER BY created_at DESC")
	if f.Limit > 0 {
		sb.WriteString("\n\t\tLIMIT " + next(f.Limit))
	}
	return sb.String(), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

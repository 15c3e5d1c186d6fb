package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bharat-chakra/internal/application/dto"
)

// optionalInt lee un entero opcional del query string (nil si no viene).
func optionalInt(c *fiber.Ctx, key string) (*int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s debe ser un entero", key)
	}
	return &n, nil
}

// dashboardParams lee los controles de los widgets del query string.
func dashboardParams(c *fiber.Ctx) (dto.DashboardParams, error) {
	p := dto.DashboardParams{
		KPI:   c.Query("kpi"),
		State: c.Query("state"),
		Query: c.Query("q"),
	}
	var err error
	if p.CandidateStrength, err = optionalInt(c, "candidate_strength"); err != nil {
		return p, err
	}
	if p.Spending, err = optionalInt(c, "spending"); err != nil {
		return p, err
	}
	return p, nil
}

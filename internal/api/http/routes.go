package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/i474232898/solar-potential-analysis/internal/solar"
	"github.com/i474232898/solar-potential-analysis/internal/store"
)

var validate = validator.New()

// Analyzer runs a solar batch for a selection of provinces.
type Analyzer interface {
	Analyze(ctx context.Context, sel solar.Selection) solar.BatchResult
}

// ReportReader gives access to scheduled reports.
type ReportReader interface {
	Latest() (store.Report, error)
	Get(id uuid.UUID) (store.Report, error)
	List() []store.Report
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, analyzer Analyzer, reports ReportReader) {
	v1 := app.Group("/api/v1")

	v1.Post("/solar-analysis", func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = failure(c, fiber.StatusInternalServerError, fmt.Sprintf("%v", r))
			}
		}()

		req, err := parseAnalysisRequest(c.Body())
		if err != nil {
			return failure(c, fiber.StatusInternalServerError, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return failure(c, fiber.StatusBadRequest, err.Error())
		}

		result := analyzer.Analyze(c.UserContext(), req.selection())
		return c.JSON(analysisResponse{
			Success: true,
			Data:    result.Spots,
			Errors:  result.Errors,
			Total:   result.Total,
		})
	})

	v1.Get("/solar-analysis/latest", func(c *fiber.Ctx) error {
		report, err := reports.Latest()
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no solar report has been generated yet")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to read solar report")
		}
		return c.JSON(report)
	})

	v1.Get("/solar-analysis/reports", func(c *fiber.Ctx) error {
		stored := reports.List()
		out := make([]reportSummary, 0, len(stored))
		for _, r := range stored {
			out = append(out, reportSummary{
				ID:          r.ID,
				GeneratedAt: r.GeneratedAt,
				Total:       r.Result.Total,
				Errors:      len(r.Result.Errors),
			})
		}
		return c.JSON(out)
	})

	v1.Get("/solar-analysis/reports/:id", func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid report id")
		}
		report, err := reports.Get(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "solar report not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to read solar report")
		}
		return c.JSON(report)
	})

	v1.Get("/provinces", func(c *fiber.Ctx) error {
		return c.JSON(solar.Provinces())
	})
}

// ErrorHandler renders errors in the same failure envelope as the analysis endpoint.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return failure(c, code, err.Error())
}

// analysisRequest is the inbound batch request. Every field is optional.
type analysisRequest struct {
	Limit    *int   `json:"limit" validate:"omitempty,min=0"`
	CityName string `json:"cityName"`
	CityID   string `json:"cityId"`
}

func (r analysisRequest) selection() solar.Selection {
	sel := solar.Selection{
		CityName: r.CityName,
		CityID:   r.CityID,
	}
	if r.Limit != nil {
		sel.Limit = *r.Limit
	}
	return sel
}

// parseAnalysisRequest treats an empty body as a request for every province.
func parseAnalysisRequest(body []byte) (analysisRequest, error) {
	var req analysisRequest
	if len(bytes.TrimSpace(body)) == 0 {
		return req, nil
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, fmt.Errorf("invalid request body: %w", err)
	}
	return req, nil
}

type analysisResponse struct {
	Success bool                    `json:"success"`
	Data    []solar.Spot            `json:"data"`
	Errors  []solar.LocationFailure `json:"errors"`
	Total   int                     `json:"total"`
}

// reportSummary is one entry of the report history listing.
type reportSummary struct {
	ID          uuid.UUID `json:"id"`
	GeneratedAt time.Time `json:"generatedAt"`
	Total       int       `json:"total"`
	Errors      int       `json:"errors"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func failure(c *fiber.Ctx, code int, msg string) error {
	return c.Status(code).JSON(failureResponse{
		Success: false,
		Error:   msg,
	})
}

package mcp

import (
	"context"
	"encoding/json"

	"github.com/2beens/bodystats/internal/bodystats"
	"github.com/2beens/bodystats/pkg"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type reportService interface {
	Report(ctx context.Context) (*bodystats.Report, error)
	MetricReport(ctx context.Context, metric bodystats.Metric) (*bodystats.MetricReport, error)
	ListMeasurements(ctx context.Context) ([]bodystats.Measurement, error)
	Profile(ctx context.Context) (bodystats.UserProfile, error)
	Goal(ctx context.Context) (bodystats.Goal, error)
}

// Handler adapts the tracker service to MCP tool handlers.
type Handler struct {
	service reportService
}

func NewHandler(service reportService) *Handler {
	return &Handler{
		service: service,
	}
}

// ProgressReportTool returns the handler for get_progress_report.
func (h *Handler) ProgressReportTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		report, err := h.service.Report(ctx)
		if err != nil {
			return errorResult("Error building report: " + err.Error()), nil, nil
		}
		return jsonResult(report), nil, nil
	}
}

type MetricReportInput struct {
	Metric string `json:"metric" jsonschema:"Metric name: weight, bodyFat, waist, neck, hip, arm, thigh or calf"`
}

// MetricReportTool returns the handler for get_metric_report.
func (h *Handler) MetricReportTool() func(context.Context, *mcp.CallToolRequest, MetricReportInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in MetricReportInput) (*mcp.CallToolResult, any, error) {
		metric, ok := bodystats.ParseMetric(in.Metric)
		if !ok {
			return errorResult("Unknown metric: " + in.Metric), nil, nil
		}
		mr, err := h.service.MetricReport(ctx, metric)
		if err != nil {
			return errorResult("Error building metric report: " + err.Error()), nil, nil
		}
		return jsonResult(mr), nil, nil
	}
}

type ListMeasurementsInput struct {
	FromDate string `json:"from_date,omitempty" jsonschema:"Start date (YYYY-MM-DD), inclusive"`
	ToDate   string `json:"to_date,omitempty" jsonschema:"End date (YYYY-MM-DD), inclusive"`
}

// ListMeasurementsTool returns the handler for list_measurements.
func (h *Handler) ListMeasurementsTool() func(context.Context, *mcp.CallToolRequest, ListMeasurementsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ListMeasurementsInput) (*mcp.CallToolResult, any, error) {
		var from, to pkg.Date
		var err error
		if in.FromDate != "" {
			if from, err = pkg.ParseDate(in.FromDate); err != nil {
				return errorResult("Invalid from_date: use YYYY-MM-DD"), nil, nil
			}
		}
		if in.ToDate != "" {
			if to, err = pkg.ParseDate(in.ToDate); err != nil {
				return errorResult("Invalid to_date: use YYYY-MM-DD"), nil, nil
			}
		}

		measurements, err := h.service.ListMeasurements(ctx)
		if err != nil {
			return errorResult("Error listing measurements: " + err.Error()), nil, nil
		}

		filtered := make([]bodystats.Measurement, 0, len(measurements))
		for _, m := range measurements {
			if !from.IsZero() && m.Date.IsBefore(from) {
				continue
			}
			if !to.IsZero() && to.IsBefore(m.Date) {
				continue
			}
			filtered = append(filtered, m)
		}
		return jsonResult(filtered), nil, nil
	}
}

type ProfileAndGoals struct {
	Profile bodystats.UserProfile `json:"profile"`
	Goal    bodystats.Goal        `json:"goal"`
}

// ProfileAndGoalsTool returns the handler for get_profile_and_goals.
func (h *Handler) ProfileAndGoalsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		profile, err := h.service.Profile(ctx)
		if err != nil {
			return errorResult("Error fetching profile: " + err.Error()), nil, nil
		}
		goal, err := h.service.Goal(ctx)
		if err != nil {
			return errorResult("Error fetching goal: " + err.Error()), nil, nil
		}
		return jsonResult(ProfileAndGoals{Profile: profile, Goal: goal}), nil, nil
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

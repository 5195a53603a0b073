package mcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with body stats tools: progress report,
// metric report, measurements list, profile and goals.
// Served over stdio by cmd/bodystats_mcp and mounted at /mcp by the backend.
func NewServer(service reportService) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "bodystats",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_progress_report",
		Description: "Returns the full progress report: a summary of the latest measurement (BMI, waist-to-height ratio, body fat, lean mass, BMR, TDEE, weight gap) and per metric the current value, classification, deltas vs baseline and previous measurement, ideal target and goal projection.",
	}, h.ProgressReportTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_metric_report",
		Description: "Returns the report of a single metric. Arg: metric (weight, bodyFat, waist, neck, hip, arm, thigh, calf). Use when you only need e.g. the waist trend and its projected arrival date.",
	}, h.MetricReportTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_measurements",
		Description: "Returns the stored measurements. Optional from_date, to_date (YYYY-MM-DD) limit the range.",
	}, h.ListMeasurementsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_profile_and_goals",
		Description: "Returns the user profile (gender, age, height, activity level) and the goal targets (weight, body fat, waist).",
	}, h.ProfileAndGoalsTool())

	return s
}

// NewHTTPHandler serves the MCP server over streamable HTTP.
func NewHTTPHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/medbook/pkg/parser"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerExecuteCommandTool(srv, svc)
	registerListPersonsTool(srv, svc)
	registerListAppointmentsTool(srv, svc)
	registerGetPersonTool(srv, svc)
	registerReportTool(srv, svc)
}

func registerExecuteCommandTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"execute_command",
		mcp.WithDescription("Run one medbook command line, for example `add n/John Doe id/S1234567A p/98765432` or `addappt 1 adt/2030-01-02 09:30`. Indices refer to the list left displayed by the previous command."),
		mcp.WithString("command",
			mcp.Required(),
			mcp.Description(fmt.Sprintf("Command text. Known verbs: %v.", parser.Verbs())),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		command, err := request.RequireString("command")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		outcome, err := svc.Execute(ctx, command)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(outcome)
	})
}

func registerListPersonsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_persons",
		mcp.WithDescription("List persons in the record book without changing the displayed list."),
		mcp.WithString("query",
			mcp.Description("Optional keywords; a person matches when a whole word of their name equals one, ignoring case."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := request.GetString("query", "")
		persons, err := svc.ListPersons(ctx, query)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":   query,
			"persons": persons,
			"count":   len(persons),
		})
	})
}

func registerListAppointmentsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_appointments",
		mcp.WithDescription("List appointments across the whole record book."),
		mcp.WithString("scope",
			mcp.Description("Which appointments to return."),
			mcp.Enum(string(ScopeAll), string(ScopeUpcoming), string(ScopePast)),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		scope := AppointmentScope(request.GetString("scope", string(ScopeAll)))
		appts, err := svc.ListAppointments(ctx, scope)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"scope":        scope,
			"appointments": appts,
			"count":        len(appts),
		})
	})
}

func registerGetPersonTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_person",
		mcp.WithDescription("Fetch a person and their appointments by identity number."),
		mcp.WithString("identity",
			mcp.Required(),
			mcp.Description("Identity number such as S1234567A."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("identity")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		detail, err := svc.PersonByIdentity(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(detail)
	})
}

func registerReportTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"appointment_report",
		mcp.WithDescription("Appointments inside a window around now, grouped by person."),
		mcp.WithString("last",
			mcp.Description("How far back to look, for example 2d or 1w. Default none."),
		),
		mcp.WithString("next",
			mcp.Description("How far ahead to look, for example 3d or 2w. Default 1w."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		report, err := svc.Report(ctx, request.GetString("last", ""), request.GetString("next", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(report)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

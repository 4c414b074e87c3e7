package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerPersonsResource(srv, svc)
	registerAppointmentsResource(srv, svc)
	registerSummaryResource(srv, svc)
	registerPersonTemplate(srv, svc)
}

func registerPersonsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"medbook://persons",
		"Persons",
		mcp.WithResourceDescription("Every person in the record book, in book order."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		persons, err := svc.ListPersons(ctx, "")
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"persons": persons,
			"count":   len(persons),
		})
	})
}

func registerAppointmentsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"medbook://appointments",
		"Appointments",
		mcp.WithResourceDescription("Every appointment, flagged upcoming or past."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		appts, err := svc.ListAppointments(ctx, ScopeAll)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"appointments": appts,
			"count":        len(appts),
		})
	})
}

func registerSummaryResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"medbook://summary",
		"Summary",
		mcp.WithResourceDescription("Counts of persons and appointments."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		sum, err := svc.Summary(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, sum)
	})
}

func registerPersonTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"medbook://persons/{identity}",
		"Person Details",
		mcp.WithTemplateDescription("A single person and their appointments."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := identityArgument(request.Params.Arguments["identity"])
		if id == "" {
			return nil, fmt.Errorf("identity number is required")
		}

		detail, err := svc.PersonByIdentity(ctx, id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, detail)
	})
}

// identityArgument accepts both the plain and the list form template
// variables may arrive in.
func identityArgument(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

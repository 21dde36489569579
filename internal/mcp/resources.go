package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) current(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	text, err := h.source.LoadText()
	if err != nil {
		h.log.Error("mcp current resource", "error", err)
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		},
	}, nil
}

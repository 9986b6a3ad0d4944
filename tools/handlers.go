package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/olgasafonova/reddit-mcp-server/internal/catalog"
	"github.com/olgasafonova/reddit-mcp-server/internal/reddit"
	"github.com/olgasafonova/reddit-mcp-server/metrics"
	"github.com/olgasafonova/reddit-mcp-server/tracing"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	client *reddit.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *reddit.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		client: client,
		logger: logger,
	}
}

// RegisterAll registers every catalog tool with the MCP server, once each.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) int {
	count := 0
	for _, d := range catalog.All() {
		if spec, ok := CuratedSpec(d.Name); ok {
			if h.registerByName(server, spec) {
				count++
			}
			continue
		}
		h.registerPassthrough(server, PassthroughSpec(&d), catalog.MustLookup(d.Name))
		count++
	}
	h.logger.Info("Registered all tools", "count", count, "curated", len(CuratedTools))
	return count
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) bool {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "GetSubredditPosts":
		return h.register(server, tool, spec, h.client.GetSubredditPostsMCP)
	case "SearchSubreddits":
		return h.register(server, tool, spec, h.client.SearchSubredditsMCP)
	case "GetPostFlairs":
		return h.register(server, tool, spec, h.client.GetPostFlairsMCP)
	case "GetCommentByID":
		return h.register(server, tool, spec, h.client.GetCommentByIDMCP)
	case "CreatePost":
		return h.register(server, tool, spec, h.client.CreatePostMCP)
	case "PostComment":
		return h.register(server, tool, spec, h.client.PostCommentMCP)
	case "EditContent":
		return h.register(server, tool, spec, h.client.EditContentMCP)
	case "DeleteContent":
		return h.register(server, tool, spec, h.client.DeleteContentMCP)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
		return false
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	} else if !spec.ReadOnly {
		annotations.DestructiveHint = ptr(false)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Title:       spec.Title,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (res *mcp.CallToolResult, out Result, err error) {
		defer h.recoverPanic(spec.Name, &err)

		callID := uuid.NewString()
		ctx, span := h.startSpan(ctx, spec, callID)
		defer span.End()

		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			h.logFailure(spec, callID, err)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, callID, args, result)
		return nil, result, nil
	})
}

// registerPassthrough exposes a catalog endpoint with its descriptor-built
// input schema. The response JSON is returned as text content.
func (h *HandlerRegistry) registerPassthrough(server *mcp.Server, spec ToolSpec, d *catalog.Descriptor) {
	tool := h.buildTool(spec)
	tool.InputSchema = catalog.InputSchema(d)

	server.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (res *mcp.CallToolResult, err error) {
		defer h.recoverPanicResult(spec.Name, &res, &err)

		callID := uuid.NewString()
		ctx, span := h.startSpan(ctx, spec, callID)
		defer span.End()

		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		args, err := decodeArguments(req.Params.Arguments)
		var body json.RawMessage
		if err == nil {
			body, err = h.client.Call(ctx, d, args)
		}
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			h.logFailure(spec, callID, err)
			return errorResult(fmt.Errorf("%s failed: %w", spec.Name, err)), nil
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, callID, args, body)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(body)}},
		}, nil
	})
}

// decodeArguments reads raw tool arguments into a map. Numbers stay
// json.Number so large ids survive unchanged.
func decodeArguments(raw json.RawMessage) (map[string]any, error) {
	args := map[string]any{}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return args, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if err := dec.Decode(&args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return args, nil
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

func (h *HandlerRegistry) startSpan(ctx context.Context, spec ToolSpec, callID string) (context.Context, trace.Span) {
	ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
	tracing.AddToolAttributes(span, spec.Name, spec.Category)
	span.SetAttributes(
		attribute.String("mcp.tool.call_id", callID),
		attribute.String("mcp.tool.endpoint", spec.Endpoint),
		attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
	)
	return ctx, span
}

// recoverPanic recovers from panics in tool handlers. When errp is set the
// panic is reported to the caller as an error.
func (h *HandlerRegistry) recoverPanic(toolName string, errp *error) {
	if rec := recover(); rec != nil {
		h.logPanic(toolName, rec)
		if errp != nil {
			*errp = fmt.Errorf("%s failed: internal error", toolName)
		}
	}
}

// recoverPanicResult is recoverPanic for handlers that report failures as
// tool results. The panic becomes an IsError result and the protocol error
// is cleared.
func (h *HandlerRegistry) recoverPanicResult(toolName string, resp **mcp.CallToolResult, errp *error) {
	if rec := recover(); rec != nil {
		h.logPanic(toolName, rec)
		*resp = errorResult(fmt.Errorf("%s failed: internal error", toolName))
		*errp = nil
	}
}

func (h *HandlerRegistry) logPanic(toolName string, rec any) {
	metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
	h.logger.Error("Panic recovered",
		"tool", toolName,
		"panic", rec,
		"stack", string(debug.Stack()))
}

func (h *HandlerRegistry) logFailure(spec ToolSpec, callID string, err error) {
	h.logger.Warn("Tool failed", "tool", spec.Name, "call_id", callID, "error", err)
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, callID string, args, result any) {
	attrs := []any{"tool", spec.Name, "call_id", callID, "endpoint", spec.Endpoint}

	switch a := args.(type) {
	case reddit.GetSubredditPostsArgs:
		attrs = append(attrs, "subreddit", a.Subreddit)
	case reddit.SearchSubredditsArgs:
		attrs = append(attrs, "query", a.Query)
	case reddit.GetPostFlairsArgs:
		attrs = append(attrs, "subreddit", a.Subreddit)
	case reddit.CreatePostArgs:
		attrs = append(attrs, "subreddit", a.Subreddit, "kind", a.Kind)
	case reddit.GetCommentByIDArgs:
		attrs = append(attrs, "comment_id", a.CommentID)
	case reddit.PostCommentArgs:
		attrs = append(attrs, "parent_id", a.ParentID)
	case reddit.EditContentArgs:
		attrs = append(attrs, "content_id", a.ContentID)
	case reddit.DeleteContentArgs:
		attrs = append(attrs, "content_id", a.ContentID)
	case map[string]any:
		attrs = append(attrs, "args", len(a))
	}

	switch r := result.(type) {
	case reddit.GetSubredditPostsResult:
		attrs = append(attrs, "results_count", r.Count)
	case reddit.SearchSubredditsResult:
		attrs = append(attrs, "results_count", r.Count)
	case reddit.GetPostFlairsResult:
		attrs = append(attrs, "flairs", len(r.Flairs))
	case reddit.CreatePostResult:
		attrs = append(attrs, "post", r.Name)
	case json.RawMessage:
		attrs = append(attrs, "response_bytes", len(r))
	}

	h.logger.Info("Tool executed", attrs...)
}

// Convenience function to call the generic register with method receiver
func (h *HandlerRegistry) register(server *mcp.Server, tool *mcp.Tool, spec ToolSpec, method any) bool {
	switch m := method.(type) {
	case func(context.Context, reddit.GetSubredditPostsArgs) (reddit.GetSubredditPostsResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, reddit.SearchSubredditsArgs) (reddit.SearchSubredditsResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, reddit.GetPostFlairsArgs) (reddit.GetPostFlairsResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, reddit.GetCommentByIDArgs) (reddit.GetCommentByIDResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, reddit.CreatePostArgs) (reddit.CreatePostResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, reddit.PostCommentArgs) (reddit.APIResponse, error):
		register(h, server, tool, spec, m)
	case func(context.Context, reddit.EditContentArgs) (reddit.APIResponse, error):
		register(h, server, tool, spec, m)
	case func(context.Context, reddit.DeleteContentArgs) (reddit.DeleteContentResult, error):
		register(h, server, tool, spec, m)
	default:
		h.logger.Error("Unknown method type, tool not registered", "tool", spec.Name)
		return false
	}
	return true
}

package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// TracerName is the tracer name for goto-slnx operations
	TracerName = "github.com/komimoe/GotoSlnx"
)

// Common attribute keys
const (
	AttrSolutionPath = attribute.Key("sln.path")
	AttrOutputPath   = attribute.Key("slnx.path")
	AttrProjectCount = attribute.Key("sln.project.count")
	AttrFolderCount  = attribute.Key("sln.folder.count")
	AttrConfigCount  = attribute.Key("sln.config.count")
)

// StartParseSpan starts a span for parsing a solution file
func StartParseSpan(ctx context.Context, solutionPath string) (context.Context, trace.Span) {
	return StartSpan(ctx, TracerName, "solution.parse",
		trace.WithAttributes(
			AttrSolutionPath.String(solutionPath),
		),
	)
}

// RecordSolutionStats records parsed solution statistics on the
// current span
func RecordSolutionStats(span trace.Span, projects, folders, configs int) {
	span.SetAttributes(
		AttrProjectCount.Int(projects),
		AttrFolderCount.Int(folders),
		AttrConfigCount.Int(configs),
	)
}

// StartAssembleSpan starts a span for assembling the output document
func StartAssembleSpan(ctx context.Context) (context.Context, trace.Span) {
	return StartSpan(ctx, TracerName, "slnx.assemble")
}

// StartWriteSpan starts a span for writing the output document
func StartWriteSpan(ctx context.Context, outputPath string) (context.Context, trace.Span) {
	return StartSpan(ctx, TracerName, "slnx.write",
		trace.WithAttributes(
			AttrOutputPath.String(outputPath),
		),
	)
}

// EndSpanWithError ends a span with an error status
func EndSpanWithError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

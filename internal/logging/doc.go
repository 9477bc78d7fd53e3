// Package logging builds the zerolog loggers used across bookshelf and carries
// them, together with a per-invocation trace ID, through context.Context.
//
// Every log line written through a logger obtained from FromContext(ctx) with
// .Ctx(ctx) carries the trace_id of that context. Trace IDs are ULIDs so they
// sort by creation time in aggregated log files.
package logging

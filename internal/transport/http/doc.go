// Package http exposes the analysis pipeline over a JSON API. It is one
// of the application surfaces driving the pipeline; it validates
// requests, invokes the runner, and maps the error taxonomy to HTTP
// status codes. Rendering-quality concerns (charts, image export) stay
// with the CLI; the API returns the enriched points and the regression
// summary for clients to present.
package http

// Package scheduler runs the optional catalogue prewarm job so consumers
// hit a warm snapshot cache instead of paying the full batch on demand.
package scheduler

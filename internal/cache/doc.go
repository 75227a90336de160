// Package cache provides a small time-boxed memoization store.
//
// Expiry is lazy: a stale entry reads as absent but is not removed until the
// next Put overwrites it. Two instances run in the proxy — a short-lived one
// for raw upstream payloads and a longer-lived one for catalogue snapshots.
package cache

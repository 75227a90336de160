// Package stats derives price, volume and profit metrics from raw sell
// orders and closed-statistics volume samples. All functions are pure.
package stats

// Package types holds small value types shared across the SDK: plugin
// health statuses and hook timeout bounds. It depends on nothing but the
// standard library so every other package can import it freely.
package types

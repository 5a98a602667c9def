// Package conv converts decoded JSON nodes into typed destinations.
// It covers scalars, numeric strings, timestamps, dates and URLs; every conversion
// reports success with a bool and leaves the destination untouched on failure.
package conv

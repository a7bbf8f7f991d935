// Package cache provides a small generic LRU cache for values that are
// expensive to build and cheap to keep, such as rendered QR codes.
package cache

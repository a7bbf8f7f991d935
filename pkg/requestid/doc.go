// Package requestid assigns every request an id, returned in the
// X-Request-ID response header and attached to log records through
// LoggerExtractor. Incoming ids are kept when they are at most 128
// characters of letters, digits, '-' and '_'.
package requestid

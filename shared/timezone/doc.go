// Package timezone provides the application clock.
//
// Every created_at/updated_at stamp comes from Now, which is expressed in the configured
// APP_TIMEZONE and truncated to millisecond precision so a value read back from MongoDB compares
// equal to the one written.
//
//	now := timezone.Now()
//	formatted := timezone.Format(now, time.RFC3339)
//	t, err := timezone.Parse(time.RFC3339, "2025-01-01T10:00:00Z")
//
// Use standard IANA names ("UTC", "Asia/Jakarta", "Europe/London").
package timezone

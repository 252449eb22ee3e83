package logger

import (
	"log/slog"
	"strings"
)

// Standard field keys for structured logging.
// Use these keys consistently across all log statements for log aggregation and querying.
const (
	// ========================================================================
	// Distributed Tracing
	// ========================================================================
	KeyTraceID = "trace_id" // OpenTelemetry trace ID for request correlation
	KeySpanID  = "span_id"  // OpenTelemetry span ID for operation tracking

	// ========================================================================
	// Operation
	// ========================================================================
	KeyOperation  = "operation"   // defaults, encode, decode, ...
	KeyPath       = "path"        // UFS path the options are built for
	KeyDurationMs = "duration_ms" // Operation duration in milliseconds
	KeyError      = "error"       // Error message
	KeyErrorCode  = "error_code"  // UfsError code name

	// ========================================================================
	// Identity
	// ========================================================================
	KeyAuthType  = "auth_type"  // NOSASL, SIMPLE, CUSTOM, KERBEROS
	KeyUser      = "user"       // Resolved or requested owner
	KeyGroup     = "group"      // Resolved or requested group
	KeyPrincipal = "principal"  // Kerberos client principal
	KeyMapping   = "mapping"    // Group mapping implementation

	// ========================================================================
	// Create-file options
	// ========================================================================
	KeyPosixPerm = "posix_perm" // Permission in posix string format (0777)
	KeyUmask     = "umask"      // Umask applied to the default permission
	KeyFields    = "fields"     // Wire fields that are set
	KeyBytes     = "bytes"      // Encoded wire size
)

// ============================================================================
// Field constructors for type safety
// ============================================================================

// Operation returns a slog.Attr for the operation name
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// AuthType returns a slog.Attr for the authentication type
func AuthType(t string) slog.Attr {
	return slog.String(KeyAuthType, t)
}

// User returns a slog.Attr for a user name
func User(name string) slog.Attr {
	return slog.String(KeyUser, name)
}

// Group returns a slog.Attr for a group name
func Group(name string) slog.Attr {
	return slog.String(KeyGroup, name)
}

// PosixPerm returns a slog.Attr for a posix permission string
func PosixPerm(perm string) slog.Attr {
	return slog.String(KeyPosixPerm, perm)
}

// Fields returns a slog.Attr listing wire field names
func Fields(names []string) slog.Attr {
	return slog.String(KeyFields, strings.Join(names, ","))
}

// Err returns a slog.Attr for an error; nil errors produce an empty attr.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

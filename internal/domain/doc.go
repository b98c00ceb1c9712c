// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/task, domain/tasklist).
// This root package holds sentinel errors, the server response envelope, and
// the request lifecycle status shared by every store and operation.
package domain

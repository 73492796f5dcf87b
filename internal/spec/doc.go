// Package spec defines the validated project specification consumed by the
// generator. A Spec is produced once (from flags or a prompt front-end) and
// treated as read-only by everything downstream.
package spec

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Severity is the visual weight of a transient notice.
type Severity string

// The closed set of notice severities understood by the UI.
const (
	SeverityPrimary Severity = "primary"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Notice is a short user-visible message produced by a directory operation.
type Notice struct {
	Message  string
	Severity Severity
}

// IsZero reports whether n carries no message.
func (n Notice) IsZero() bool {
	return n.Message == ""
}

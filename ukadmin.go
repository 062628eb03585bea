// Package ukadmin provides an administration client for the ukeeper
// content-extraction service. It authenticates an operator, lists and
// toggles extraction rules, edits them through a form, and previews how a
// rule extracts content from a test URL.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, http/, yaml/).
package ukadmin

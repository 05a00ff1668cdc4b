package domain

import (
	"regexp"
	"strings"
)

// keyPattern matches tracker issue keys such as "PROJ-123": one uppercase
// letter, one or more uppercase letters or digits, a hyphen, then digits.
var keyPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]+-\d+$`)

// IsKey returns true if s is a well-formed issue key.
// Leading and trailing whitespace is ignored; an empty string is not a key.
func IsKey(s string) bool {
	return keyPattern.MatchString(strings.TrimSpace(s))
}

// Project is the project reference carried by an issue.
// All fields may be empty when the export omits the project node.
type Project struct {
	// ID is the tracker-internal project identifier.
	ID string `json:"id"`

	// Key is the project prefix shared by its issue keys.
	Key string `json:"key"`

	// Name is the human-readable project name.
	Name string `json:"name"`
}

// IsZero returns true if no project information was extracted.
func (p Project) IsZero() bool {
	return p.ID == "" && p.Key == "" && p.Name == ""
}

// Issue represents one normalised work item extracted from an export
// document. It is the canonical representation after extraction; free-text
// fields have already been sanitised.
type Issue struct {
	// Key is the business identifier (e.g. "PROJ-123"). Always valid:
	// items whose key fails the pattern never become an Issue.
	Key string `json:"key"`

	// Type is the work item type (bug, task, story, ...).
	Type string `json:"type"`

	// Summary is the one-line summary. Falls back to the sanitised
	// title when the export carries no summary field.
	Summary string `json:"summary"`

	// Title is the sanitised document title of the item.
	Title string `json:"title"`

	// Status is the workflow status name.
	Status string `json:"status"`

	// Priority is the priority name.
	Priority string `json:"priority"`

	// Assignee is the display name of the current assignee.
	Assignee string `json:"assignee"`

	// Reporter is the display name of the reporter.
	Reporter string `json:"reporter"`

	// Created is the creation timestamp, verbatim from the export.
	Created string `json:"created"`

	// Updated is the last-update timestamp, verbatim from the export.
	Updated string `json:"updated"`

	// Project is the owning project reference.
	Project Project `json:"project"`

	// Parent is the key of the parent issue, or empty. A weak
	// reference: the parent may not appear in the same export.
	Parent string `json:"parent"`

	// Subtasks lists the keys of child issues in document order.
	// Referential only; duplicates from the source are preserved.
	Subtasks []string `json:"subtasks"`

	// DescriptionText is the sanitised description body.
	DescriptionText string `json:"description_text"`

	// CommentsText is the sanitised, newline-joined comment thread.
	CommentsText string `json:"comments_text"`

	// SourceFile records which input document produced this version.
	SourceFile string `json:"source_file"`

	// CustomFields maps custom attribute names to their distinct,
	// whitespace-normalised values in first-seen order. Only populated
	// when custom field extraction is enabled.
	CustomFields map[string][]string `json:"customfields,omitempty"`

	// RawItemXML is the verbatim serialised source node, kept for
	// lossless audit. Only populated when raw capture is enabled.
	RawItemXML string `json:"raw_item_xml,omitempty"`

	// Text is the canonical line-oriented search rendering. Derived;
	// see SearchText.
	Text string `json:"text"`
}

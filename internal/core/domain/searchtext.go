package domain

import (
	"sort"
	"strings"
)

// SearchText renders the canonical line-oriented search blob for an
// issue. The field order is fixed and the rendering is byte-reproducible
// for a given issue and flag. Labels whose value is empty or whitespace
// are omitted entirely rather than rendered with a bare label.
func SearchText(i *Issue, includeCustomFields bool) string {
	var lines []string

	add := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		lines = append(lines, label+": "+value)
	}

	add("KEY", i.Key)
	add("TYPE", i.Type)
	add("SUMMARY", i.Summary)
	add("STATUS", i.Status)
	add("PRIORITY", i.Priority)
	add("ASSIGNEE", i.Assignee)
	add("REPORTER", i.Reporter)
	add("CREATED", i.Created)
	add("UPDATED", i.Updated)

	add("PROJECT", i.Project.Key)
	add("PROJECT_NAME", i.Project.Name)

	add("PARENT", i.Parent)
	if len(i.Subtasks) > 0 {
		add("SUBTASKS", strings.Join(i.Subtasks, ", "))
	}

	if includeCustomFields && len(i.CustomFields) > 0 {
		lines = append(lines, "", "CUSTOMFIELDS:")
		for _, name := range sortedFieldNames(i.CustomFields) {
			values := i.CustomFields[name]
			if len(values) == 0 {
				continue
			}
			lines = append(lines, "- "+name+": "+strings.Join(values, ", "))
		}
	}

	if i.DescriptionText != "" {
		lines = append(lines, "", "DESCRIPTION:", i.DescriptionText)
	}

	if i.CommentsText != "" {
		lines = append(lines, "", "COMMENTS:", i.CommentsText)
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// sortedFieldNames orders custom field names case-insensitively, with an
// ordinal tiebreak so the rendering stays deterministic.
func sortedFieldNames(fields map[string][]string) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Slice(names, func(a, b int) bool {
		la, lb := strings.ToLower(names[a]), strings.ToLower(names[b])
		if la != lb {
			return la < lb
		}
		return names[a] < names[b]
	})
	return names
}

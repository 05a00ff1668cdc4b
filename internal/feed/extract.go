package feed

import (
	"strings"

	"github.com/custodia-labs/exporta-cli/internal/core/domain"
)

// Options control the optional parts of extraction.
type Options struct {
	// IncludeCustomFields extracts custom attributes and renders them
	// into the search text.
	IncludeCustomFields bool

	// IncludeRawItem keeps the verbatim source node on the issue for
	// lossless audit.
	IncludeRawItem bool
}

// ItemToIssue extracts one normalised issue from an item node. It
// returns nil when the item's key fails the issue key pattern; that is
// the single validation gate. Every other field degrades to an empty
// value when absent.
func ItemToIssue(item *Node, sourceFile string, opts Options) *domain.Issue {
	key := item.ChildText("key")
	if !domain.IsKey(key) {
		return nil
	}

	summary := item.ChildText("summary")
	title := StripHTML(item.ChildText("title"))
	if summary == "" {
		summary = title
	}

	issue := &domain.Issue{
		Key:             key,
		Type:            item.ChildText("type"),
		Summary:         summary,
		Title:           title,
		Status:          item.ChildText("status"),
		Priority:        item.ChildText("priority"),
		Assignee:        item.ChildText("assignee"),
		Reporter:        item.ChildText("reporter"),
		Created:         item.ChildText("created"),
		Updated:         item.ChildText("updated"),
		Project:         extractProject(item),
		Parent:          extractParentKey(item),
		Subtasks:        extractSubtasks(item),
		DescriptionText: StripHTML(item.ChildText("description")),
		CommentsText:    extractCommentsText(item),
		SourceFile:      sourceFile,
	}

	if opts.IncludeCustomFields {
		issue.CustomFields = extractCustomFields(item)
	}

	if opts.IncludeRawItem {
		issue.RawItemXML = item.Raw()
	}

	issue.Text = domain.SearchText(issue, opts.IncludeCustomFields)
	return issue
}

// extractProject reads the project child's id and key attributes plus
// its text body. Returns the zero Project when the node is absent.
func extractProject(item *Node) domain.Project {
	project := item.FindChild("project")
	if project == nil {
		return domain.Project{}
	}
	return domain.Project{
		ID:   project.Attr["id"],
		Key:  project.Attr["key"],
		Name: project.Text,
	}
}

// extractParentKey resolves the parent reference: an explicit nested key
// child wins, then the node's own text. Anything that fails the key
// pattern collapses to empty.
func extractParentKey(item *Node) string {
	parent := item.FindChild("parent")
	if parent == nil {
		return ""
	}
	key := parent.ChildText("key")
	if key == "" {
		key = parent.Text
	}
	if !domain.IsKey(key) {
		return ""
	}
	return key
}

// extractSubtasks collects pattern-valid subtask keys in document order.
// Duplicates are preserved; they are a source-data property.
func extractSubtasks(item *Node) []string {
	container := item.FindChild("subtasks")
	if container == nil {
		return nil
	}
	var keys []string
	for _, subtask := range container.Children {
		if LocalName(subtask.Tag) != "subtask" {
			continue
		}
		if key := subtask.ChildText("key"); domain.IsKey(key) {
			keys = append(keys, key)
		}
	}
	return keys
}

// extractCustomFields maps custom field names to their distinct,
// whitespace-normalised values in first-seen order. A field without a
// name is dropped entirely, values and all. Always returns a non-nil
// map so callers can tell "extraction enabled" from "no fields".
func extractCustomFields(item *Node) map[string][]string {
	out := make(map[string][]string)
	container := item.FindChild("customfields")
	if container == nil {
		return out
	}

	for _, field := range container.Children {
		if LocalName(field.Tag) != "customfield" {
			continue
		}

		var name string
		var values []string

		for _, child := range field.Children {
			switch LocalName(child.Tag) {
			case "customfieldname":
				name = child.Text
			case "customfieldvalues":
				for _, value := range child.Descendants("customfieldvalue") {
					if value.Text != "" {
						values = append(values, value.Text)
						continue
					}
					// Values can be nested one level deeper, e.g.
					// wrapped in option elements.
					values = append(values, descendantTexts(value)...)
				}
			}
		}

		if name == "" {
			continue
		}

		seen := make(map[string]bool, len(values))
		clean := []string{}
		for _, value := range values {
			value = strings.TrimSpace(whitespace.ReplaceAllString(value, " "))
			if value == "" || seen[value] {
				continue
			}
			seen[value] = true
			clean = append(clean, value)
		}
		out[name] = clean
	}

	return out
}

// extractCommentsText joins the sanitised text of every descendant
// comment node with newlines, skipping empty ones. Comments are matched
// at any depth to tolerate extra wrapping around the thread.
func extractCommentsText(item *Node) string {
	container := item.FindChild("comments")
	if container == nil {
		return ""
	}
	var parts []string
	for _, comment := range container.Descendants("comment") {
		if text := StripHTML(comment.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// descendantTexts returns the text of every text-bearing descendant in
// document order.
func descendantTexts(n *Node) []string {
	var out []string
	for _, child := range n.Children {
		if child.Text != "" {
			out = append(out, child.Text)
		}
		out = append(out, descendantTexts(child)...)
	}
	return out
}

package domain

// Weight computes a structural size metric over a generic value tree.
// A map weighs the sum of its values plus ten per entry, a slice the sum
// of its elements plus five per element, a string its character length,
// and any other scalar one. The metric is a relative completeness proxy
// used only to rank duplicate records; it is never exposed externally.
func Weight(v any) int {
	switch t := v.(type) {
	case map[string]any:
		w := len(t) * 10
		for _, val := range t {
			w += Weight(val)
		}
		return w
	case []any:
		w := len(t) * 5
		for _, val := range t {
			w += Weight(val)
		}
		return w
	case string:
		return len(t)
	default:
		return 1
	}
}

// IssueWeight ranks an issue by the weight of its attribute tree. The
// tree mirrors the serialised record, so richer versions of the same
// issue (more populated fields, longer text) outweigh sparser ones.
func IssueWeight(i *Issue) int {
	return Weight(i.attributeTree())
}

func (i *Issue) attributeTree() map[string]any {
	var project map[string]any
	if i.Project.IsZero() {
		project = map[string]any{}
	} else {
		project = map[string]any{
			"id":   i.Project.ID,
			"key":  i.Project.Key,
			"name": i.Project.Name,
		}
	}

	subtasks := make([]any, len(i.Subtasks))
	for n, k := range i.Subtasks {
		subtasks[n] = k
	}

	tree := map[string]any{
		"key":              i.Key,
		"type":             i.Type,
		"summary":          i.Summary,
		"title":            i.Title,
		"status":           i.Status,
		"priority":         i.Priority,
		"assignee":         i.Assignee,
		"reporter":         i.Reporter,
		"created":          i.Created,
		"updated":          i.Updated,
		"project":          project,
		"parent":           i.Parent,
		"subtasks":         subtasks,
		"description_text": i.DescriptionText,
		"comments_text":    i.CommentsText,
		"source_file":      i.SourceFile,
		"text":             i.Text,
	}

	if i.CustomFields != nil {
		fields := make(map[string]any, len(i.CustomFields))
		for name, values := range i.CustomFields {
			vs := make([]any, len(values))
			for n, v := range values {
				vs[n] = v
			}
			fields[name] = vs
		}
		tree["customfields"] = fields
	}

	if i.RawItemXML != "" {
		tree["raw_item_xml"] = i.RawItemXML
	}

	return tree
}

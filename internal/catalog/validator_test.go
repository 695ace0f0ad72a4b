package catalog

import "testing"

func TestValidateFile_Valid(t *testing.T) {
	result, err := ValidateFile(testPath("valid-fix44.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
		for _, issue := range result.Issues {
			t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
		}
	}
}

func TestValidateFile_InvalidManifests(t *testing.T) {
	invalidFiles := []struct {
		file string
		desc string
	}{
		{"invalid-missing-begin-string.yaml", "missing required begin_string"},
		{"invalid-bad-group.yaml", "delim is a string and fields is empty"},
		{"invalid-unknown-field.yaml", "additional property"},
		{"invalid-bad-entry-point.yaml", "entry point violates pattern"},
	}

	for _, tt := range invalidFiles {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Errorf("expected invalid for %s (%s), but got valid", tt.file, tt.desc)
			}
			if len(result.Issues) == 0 {
				t.Errorf("expected at least one issue for %s (%s)", tt.file, tt.desc)
			}
		})
	}
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	if _, err := ValidateFile(testPath("invalid-not-yaml.yaml")); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestValidate_IssuesHaveMessages(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-bad-group.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	for _, issue := range result.Issues {
		if issue.Message == "" {
			t.Errorf("issue at %q has empty message", issue.Path)
		}
		if issue.String() == "" {
			t.Errorf("issue at %q renders empty", issue.Path)
		}
	}
}

func TestValidate_SchemaCompiles(t *testing.T) {
	schema, err := getSchema()
	if err != nil {
		t.Fatalf("getSchema() error: %v", err)
	}
	if schema == nil {
		t.Fatal("getSchema() returned nil schema")
	}
}

func TestValidate_IssuesNameEnclosingDefinitions(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-bad-group.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}

	want := map[string]string{
		"/messages/0/groups/0/delim":  "message D (NewOrderSingle) > group 453",
		"/messages/0/groups/0/fields": "message D (NewOrderSingle) > group 453",
	}
	for _, issue := range result.Issues {
		where, ok := want[issue.Path]
		if !ok {
			continue
		}
		if issue.Where != where {
			t.Errorf("issue at %s: Where = %q, want %q", issue.Path, issue.Where, where)
		}
		delete(want, issue.Path)
	}
	for path := range want {
		t.Errorf("no issue reported at %s; got %v", path, result.Issues)
	}
}

func TestDescribeLocation(t *testing.T) {
	doc := map[string]any{
		"messages": []any{
			map[string]any{"msg_type": "D", "name": "NewOrderSingle", "groups": []any{
				map[string]any{"counter_tag": 453, "name": "NoPartyIDs", "groups": []any{
					map[string]any{"counter_tag": 802},
				}},
			}},
			map[string]any{"name": "Untyped"},
		},
	}

	tests := []struct {
		loc  []string
		want string
	}{
		{nil, ""},
		{[]string{"begin_string"}, ""},
		{[]string{"messages", "0", "name"}, "message D (NewOrderSingle)"},
		{[]string{"messages", "0", "groups", "0", "groups", "0", "delim"}, "message D (NewOrderSingle) > group 453 (NoPartyIDs) > group 802"},
		{[]string{"messages", "1", "msg_type"}, "message #1 (Untyped)"},
		{[]string{"messages", "7"}, ""},
	}

	for _, tt := range tests {
		if got := describeLocation(doc, tt.loc); got != tt.want {
			t.Errorf("describeLocation(%v) = %q, want %q", tt.loc, got, tt.want)
		}
	}
}

func TestValidationIssue_String(t *testing.T) {
	issue := ValidationIssue{Path: "/messages/0/groups/0/delim", Where: "message D > group 453", Message: "got string, want integer"}
	if got, want := issue.String(), "/messages/0/groups/0/delim [message D > group 453]: got string, want integer"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := (ValidationIssue{Message: "bad"}).String(), "/: bad"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

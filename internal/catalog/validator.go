package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/module.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one schema violation in a module manifest.
type ValidationIssue struct {
	Path    string // instance location, e.g. "/messages/0/groups/1/delim"
	Where   string // the message or group at Path, e.g. "message D (NewOrderSingle) > group 453 (NoPartyIDs)"
	Message string
	Keyword string // schema keyword that failed
}

// String formats the issue for listings.
func (i ValidationIssue) String() string {
	path := i.Path
	if path == "" {
		path = "/"
	}
	if i.Where != "" {
		return fmt.Sprintf("%s [%s]: %s", path, i.Where, i.Message)
	}
	return fmt.Sprintf("%s: %s", path, i.Message)
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("module.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("module.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate validates raw YAML bytes against the module manifest schema.
// The error return is for YAML or schema compilation failures; schema
// violations are reported in the ValidationResult.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	// Round-trip through JSON so numbers reach the validator as json.Number.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	c := &issueCollector{doc: raw, seen: make(map[string]bool)}
	c.walk(validationErr)
	if len(c.issues) == 0 {
		c.issues = []ValidationIssue{{Message: validationErr.Error()}}
	}
	return &ValidationResult{Valid: false, Issues: c.issues}, nil
}

// ValidateFile reads a file and validates it against the module schema.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Validate(data)
}

// issueCollector flattens a validation error tree into leaf issues and
// labels each with the message and group definitions enclosing it.
type issueCollector struct {
	doc    any
	seen   map[string]bool
	issues []ValidationIssue
}

func (c *issueCollector) walk(ve *jsonschema.ValidationError) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			c.walk(cause)
		}
		return
	}
	if ve.ErrorKind == nil {
		return
	}

	// $ref and allOf leaves only point at the nested failure.
	kwPath := ve.ErrorKind.KeywordPath()
	if len(kwPath) == 0 {
		return
	}
	keyword := kwPath[len(kwPath)-1]
	if keyword == "$ref" || keyword == "allOf" {
		return
	}

	issue := ValidationIssue{
		Where:   describeLocation(c.doc, ve.InstanceLocation),
		Message: ve.ErrorKind.LocalizedString(printer),
		Keyword: keyword,
	}
	if len(ve.InstanceLocation) > 0 {
		issue.Path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	c.issues = append(c.issues, issue)
}

// describeLocation follows loc through the raw manifest and names each
// message and group definition passed on the way.
func describeLocation(doc any, loc []string) string {
	var parts []string
	node := doc
	for i := 0; i < len(loc); i++ {
		m, ok := node.(map[string]any)
		if !ok {
			break
		}
		key := loc[i]
		child := m[key]
		if (key != "messages" && key != "groups") || i+1 >= len(loc) {
			node = child
			continue
		}

		list, ok := child.([]any)
		idx, err := strconv.Atoi(loc[i+1])
		if !ok || err != nil || idx < 0 || idx >= len(list) {
			break
		}
		node = list[idx]
		i++
		parts = append(parts, describeEntry(key, idx, node))
	}
	return strings.Join(parts, " > ")
}

// describeEntry labels one message or group definition, falling back to its
// position when the identifying field is missing.
func describeEntry(kind string, idx int, entry any) string {
	m, _ := entry.(map[string]any)
	idField, label := "msg_type", "message"
	if kind == "groups" {
		idField, label = "counter_tag", "group"
	}

	out := fmt.Sprintf("%s #%d", label, idx)
	if id, ok := m[idField]; ok {
		out = fmt.Sprintf("%s %v", label, id)
	}
	if name, ok := m["name"].(string); ok && name != "" {
		out += " (" + name + ")"
	}
	return out
}

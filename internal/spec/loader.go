package spec

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// documentDoc is the wire shape of a spec file. JSON documents load through
// the same path since YAML is a superset.
type documentDoc struct {
	Version string                             `yaml:"version"`
	Paths   map[string]map[string]operationDoc `yaml:"paths"`
}

type operationDoc struct {
	Parameters []parameterDoc `yaml:"parameters"`
	Responses  responsesDoc   `yaml:"responses"`
}

type parameterDoc struct {
	Name     string `yaml:"name"`
	Required bool   `yaml:"required"`
	Type     string `yaml:"type"`
}

// responsesDoc accepts either a sequence of status codes or a mapping keyed
// by status code.
type responsesDoc []int

func (r *responsesDoc) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var codes []int
		if err := node.Decode(&codes); err != nil {
			return err
		}
		*r = codes
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			var code int
			if err := node.Content[i].Decode(&code); err != nil {
				return err
			}
			*r = append(*r, code)
		}
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
		return fmt.Errorf("responses must be a sequence or mapping of status codes")
	default:
		return fmt.Errorf("responses must be a sequence or mapping of status codes")
	}
	return nil
}

// Load reads one API spec document and builds the in-memory model.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}
	return Parse(data, path)
}

// Parse builds a Document from raw file contents. The path is used only
// for error reporting and the resolution tiebreak.
func Parse(data []byte, path string) (*Document, error) {
	var doc documentDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &InvalidSpecError{
			File:   path,
			Errors: []string{fmt.Sprintf("failed to parse document: %v", err)},
		}
	}

	var errs []string
	if strings.TrimSpace(doc.Version) == "" {
		errs = append(errs, "missing required field: 'version'")
	}

	// Walk paths and methods in sorted order so validation errors come out
	// in a stable order.
	paths := make([]string, 0, len(doc.Paths))
	for pth := range doc.Paths {
		paths = append(paths, pth)
	}
	sort.Strings(paths)

	endpoints := make(map[EndpointKey]Endpoint, len(doc.Paths))
	for _, pth := range paths {
		methods := doc.Paths[pth]
		methodNames := make([]string, 0, len(methods))
		for method := range methods {
			methodNames = append(methodNames, method)
		}
		sort.Strings(methodNames)

		for _, method := range methodNames {
			op := methods[method]
			m := strings.ToUpper(method)
			key := EndpointKey{Path: pth, Method: m}
			if _, dup := endpoints[key]; dup {
				errs = append(errs, fmt.Sprintf("duplicate endpoint: %s %s", m, pth))
				continue
			}

			params := make(map[string]Parameter, len(op.Parameters))
			for _, p := range op.Parameters {
				if p.Name == "" {
					errs = append(errs, fmt.Sprintf("%s %s: parameter without name", m, pth))
					continue
				}
				if _, dup := params[p.Name]; dup {
					errs = append(errs, fmt.Sprintf("%s %s: duplicate parameter '%s'", m, pth, p.Name))
					continue
				}
				typ := strings.ToLower(p.Type)
				if typ != "" && !ParameterTypes[typ] {
					errs = append(errs, fmt.Sprintf("%s %s: parameter '%s' has unknown type '%s'", m, pth, p.Name, p.Type))
					continue
				}
				params[p.Name] = Parameter{Name: p.Name, Required: p.Required, Type: typ}
			}

			responses := make(map[int]bool, len(op.Responses))
			for _, code := range op.Responses {
				if responses[code] {
					errs = append(errs, fmt.Sprintf("%s %s: duplicate response code %d", m, pth, code))
					continue
				}
				responses[code] = true
			}

			endpoints[key] = Endpoint{
				Path:       pth,
				Method:     m,
				Parameters: params,
				Responses:  responses,
			}
		}
	}

	if len(errs) > 0 {
		return nil, &InvalidSpecError{File: path, Errors: errs}
	}

	if _, err := semver.NewVersion(doc.Version); err != nil {
		return nil, &InvalidVersionError{File: path, Version: doc.Version, Err: err}
	}

	return &Document{
		File:      path,
		Version:   doc.Version,
		Endpoints: endpoints,
	}, nil
}

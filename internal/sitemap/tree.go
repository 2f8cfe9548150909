package sitemap

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Node is one entry of the sitemap tree. A node without a route is a
// non-navigable grouping label. The tree is display-only and independent of
// the route table, which is why it has to be validated against it.
type Node struct {
	Label       string  `yaml:"label" json:"label"`
	Route       *string `yaml:"route,omitempty" json:"route,omitempty"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Children    []Node  `yaml:"children,omitempty" json:"children,omitempty"`
}

// Resolver reports whether a route resolves; satisfied by the router table.
type Resolver interface {
	Resolves(route string) bool
}

// Load reads a sitemap tree from a YAML file.
func Load(path string) ([]Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sitemap file: %w", err)
	}

	var root struct {
		Sitemap []Node `yaml:"sitemap"`
	}
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse sitemap yaml: %w", err)
	}
	if len(root.Sitemap) == 0 {
		return nil, fmt.Errorf("sitemap file has no entries")
	}
	return root.Sitemap, nil
}

// Validate walks the tree and checks that every navigable node's route
// resolves against the route table (statically or via a dynamic domain
// prefix). Grouping labels without routes are skipped.
func Validate(nodes []Node, resolver Resolver) error {
	for _, node := range nodes {
		if node.Label == "" {
			return fmt.Errorf("sitemap node without label")
		}
		if node.Route != nil && !resolver.Resolves(*node.Route) {
			return fmt.Errorf("sitemap node %q: route %q does not resolve", node.Label, *node.Route)
		}
		if err := Validate(node.Children, resolver); err != nil {
			return err
		}
	}
	return nil
}

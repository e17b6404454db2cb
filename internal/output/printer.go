package output

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"github.com/giantswarm/namespace-pods/internal/k8s"
)

// Supported formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// listDocument is the v1 List wrapper written for a pod list.
type listDocument struct {
	APIVersion string                   `json:"apiVersion"`
	Kind       string                   `json:"kind"`
	Metadata   listMetadata             `json:"metadata"`
	Items      []map[string]interface{} `json:"items"`
}

type listMetadata struct {
	ResourceVersion string `json:"resourceVersion,omitempty"`
}

// Printer writes pod lists in one format.
type Printer struct {
	format string
}

// NewPrinter returns a Printer for format ("json" or "yaml").
func NewPrinter(format string) (*Printer, error) {
	switch format {
	case FormatJSON, FormatYAML:
		return &Printer{format: format}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// Format returns the format the printer writes.
func (p *Printer) Format() string {
	return p.format
}

// PrintPods writes pods to w. A nil or empty list is written as a List with
// no items.
func (p *Printer) PrintPods(w io.Writer, pods *k8s.PodList) error {
	doc := newListDocument(pods)

	var (
		data []byte
		err  error
	)
	switch p.format {
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	default:
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to marshal pod list: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write pod list: %w", err)
	}
	return nil
}

func newListDocument(pods *k8s.PodList) listDocument {
	doc := listDocument{
		APIVersion: "v1",
		Kind:       "List",
		Items:      make([]map[string]interface{}, 0),
	}
	if pods == nil {
		return doc
	}

	doc.Metadata.ResourceVersion = pods.ResourceVersion
	for i := range pods.Items {
		doc.Items = append(doc.Items, pods.Items[i].Object)
	}
	return doc
}

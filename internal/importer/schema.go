package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PlanSchema is the top-level structure of a work package plan file.
// JSON documents are valid YAML, so one decoder handles both.
type PlanSchema struct {
	WorkPackage WorkPackageImport `yaml:"work_package" json:"work_package"`
	Phases      []PhaseImport     `yaml:"phases" json:"phases"`
	Items       []ItemImport      `yaml:"items" json:"items"`
}

// WorkPackageImport defines the package-level fields.
type WorkPackageImport struct {
	Name      string  `yaml:"name" json:"name"`
	TenantID  string  `yaml:"tenant_id,omitempty" json:"tenant_id,omitempty"`
	StartDate *string `yaml:"start_date,omitempty" json:"start_date,omitempty"`
}

// PhaseImport defines a phase. Position defaults to the list order.
type PhaseImport struct {
	Ref            string   `yaml:"ref" json:"ref"`
	Name           string   `yaml:"name" json:"name"`
	Position       int      `yaml:"position,omitempty" json:"position,omitempty"`
	Description    string   `yaml:"description,omitempty" json:"description,omitempty"`
	EstimatedHours *float64 `yaml:"estimated_hours,omitempty" json:"estimated_hours,omitempty"`
}

// ItemImport defines an item. An empty PhaseRef leaves the item unassigned.
type ItemImport struct {
	Title              string            `yaml:"title" json:"title"`
	PhaseRef           string            `yaml:"phase_ref,omitempty" json:"phase_ref,omitempty"`
	Quantity           *int              `yaml:"quantity,omitempty" json:"quantity,omitempty"`
	EstimatedHoursEach float64           `yaml:"estimated_hours_each" json:"estimated_hours_each"`
	Status             string            `yaml:"status,omitempty" json:"status,omitempty"`
	References         []ReferenceImport `yaml:"references,omitempty" json:"references,omitempty"`
}

// ReferenceImport links an item to an artifact by kind and id.
type ReferenceImport struct {
	Type string `yaml:"type" json:"type"`
	ID   string `yaml:"id" json:"id"`
}

// LoadPlan reads and parses a YAML or JSON plan file.
func LoadPlan(path string) (*PlanSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePlan(data)
}

// ParsePlan decodes a plan document.
func ParsePlan(data []byte) (*PlanSchema, error) {
	var schema PlanSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}
	return &schema, nil
}

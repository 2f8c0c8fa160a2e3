// save.go writes a framework back out as the directory-of-JSON-files layout
// the loader reads. Used by import-research to persist converted mappings.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/comply/internal/model"
)

// WriteJSON marshals v with indentation and writes it to path.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Save writes every collection of the framework into dir, one JSON file per
// resource, creating the directory if needed.
func Save(fw *model.Framework, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	files := map[string]any{
		FileJurisdictions:   fw.Jurisdictions,
		FileRegulations:     fw.Regulations,
		FileRequirements:    fw.Requirements,
		FileEntities:        fw.RegulatedEntities,
		FileSolutions:       fw.Solutions,
		FileZoneAssignments: fw.ZoneAssignments,
		FileMappings:        fw.Mappings,
		FileEnforcement:     fw.EnforcementAssessments,
		FileFramework:       fw.Metadata,
	}
	for name, data := range files {
		if err := WriteJSON(filepath.Join(dir, name), data); err != nil {
			return err
		}
	}
	return nil
}

package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	Trace TraceMetadata `json:"trace"`
	Steps []ExportStep  `json:"steps"`
}

type ExportStep struct {
	Index       int    `json:"index"`
	Phase       string `json:"phase"`
	Comparisons int    `json:"comparisons"`
	Swaps       int    `json:"swaps"`
	Writes      int    `json:"writes"`
	Probes      int    `json:"probes"`
	Frontier    int    `json:"frontier"`
	Array       []int  `json:"array"`
}

func (s *Store) exportData(traceID string) (*ExportData, error) {
	meta, err := s.Load(traceID)
	if err != nil {
		return nil, err
	}
	records, err := s.LoadSteps(traceID)
	if err != nil {
		return nil, err
	}

	data := &ExportData{Trace: *meta, Steps: make([]ExportStep, len(records))}
	for i, r := range records {
		data.Steps[i] = ExportStep{
			Index:       r.Index,
			Phase:       string(r.Phase),
			Comparisons: r.Comparisons,
			Swaps:       r.Swaps,
			Writes:      r.Writes,
			Probes:      r.Probes,
			Frontier:    r.Frontier,
			Array:       r.Array,
		}
	}
	return data, nil
}

// ExportJSON writes a trace with its steps to path, or to w when path is
// empty.
func (s *Store) ExportJSON(traceID, path string, w io.Writer) error {
	data, err := s.exportData(traceID)
	if err != nil {
		return err
	}
	if path == "" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	return writeJSON(path, data)
}

// ExportCSV copies a trace's step table to path, or to w when path is
// empty.
func (s *Store) ExportCSV(traceID, path string, w io.Writer) error {
	records, err := s.LoadSteps(traceID)
	if err != nil {
		return err
	}
	if path == "" {
		return WriteCSV(w, records)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, records)
}

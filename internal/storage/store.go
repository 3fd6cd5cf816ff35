package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/step"
)

var ErrNoSteps = errors.New("storage: result has no recorded steps")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type TraceMetadata struct {
	ID         string             `json:"id"`
	Algorithm  string             `json:"algorithm"`
	Timestamp  time.Time          `json:"timestamp"`
	Input      []int              `json:"input"`
	Target     int                `json:"target"`
	Seed       int64              `json:"seed"`
	Steps      int                `json:"steps"`
	Canceled   bool               `json:"canceled,omitempty"`
	Metrics    map[string]float64 `json:"metrics"`
	FinalArray []int              `json:"final_array"`
	Result     int                `json:"result"`
}

// StepRecord is one row of steps.csv.
type StepRecord struct {
	Index       int
	Phase       step.Phase
	Comparisons int
	Swaps       int
	Writes      int
	Probes      int
	Frontier    int
	Array       []int
}

var header = []string{"index", "phase", "comparisons", "swaps", "writes", "probes", "frontier", "array"}

func Record(s step.Step) StepRecord {
	return StepRecord{
		Index:       s.Index,
		Phase:       s.Phase,
		Comparisons: s.Counters.Comparisons,
		Swaps:       s.Counters.Swaps,
		Writes:      s.Counters.Writes,
		Probes:      s.Counters.Probes,
		Frontier:    len(s.Frontier),
		Array:       s.Array,
	}
}

// Save writes a recorded run to <algorithm>_<id8>/ and returns the trace id.
// The result must have been produced with Record set.
func (s *Store) Save(algorithm string, input []int, target int, seed int64, result *playback.Result) (string, error) {
	if len(result.Steps) == 0 {
		return "", ErrNoSteps
	}
	traceID := fmt.Sprintf("%s_%s", algorithm, uuid.NewString()[:8])
	traceDir := filepath.Join(s.baseDir, traceID)

	if err := os.MkdirAll(traceDir, 0755); err != nil {
		return "", err
	}

	meta := TraceMetadata{
		ID:         traceID,
		Algorithm:  algorithm,
		Timestamp:  time.Now(),
		Input:      input,
		Target:     target,
		Seed:       seed,
		Steps:      result.StepsTaken,
		Canceled:   result.Canceled,
		Metrics:    result.Metrics,
		FinalArray: result.Final.Array,
		Result:     result.Final.Result,
	}

	if err := writeJSON(filepath.Join(traceDir, "metadata.json"), meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(traceDir, "steps.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	records := make([]StepRecord, len(result.Steps))
	for i, st := range result.Steps {
		records[i] = Record(st)
	}
	if err := WriteCSV(csvFile, records); err != nil {
		return "", err
	}
	return traceID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteCSV writes records with a header row. The array column holds the
// values separated by spaces.
func WriteCSV(w io.Writer, records []StepRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Index),
			string(r.Phase),
			strconv.Itoa(r.Comparisons),
			strconv.Itoa(r.Swaps),
			strconv.Itoa(r.Writes),
			strconv.Itoa(r.Probes),
			strconv.Itoa(r.Frontier),
			joinInts(r.Array),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// List returns every readable trace, newest first. Directories without
// valid metadata are skipped.
func (s *Store) List() ([]TraceMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []TraceMetadata{}, nil
		}
		return nil, err
	}

	traces := make([]TraceMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		traces = append(traces, *meta)
	}

	sort.Slice(traces, func(i, j int) bool {
		return traces[i].Timestamp.After(traces[j].Timestamp)
	})
	return traces, nil
}

func (s *Store) Load(traceID string) (*TraceMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, traceID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta TraceMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadSteps(traceID string) ([]StepRecord, error) {
	file, err := os.Open(filepath.Join(s.baseDir, traceID, "steps.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(header)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", traceID, err)
	}
	if len(rows) < 2 {
		return []StepRecord{}, nil
	}

	records := make([]StepRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", traceID, i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string) (StepRecord, error) {
	nums := make([]int, 0, 6)
	for _, i := range []int{0, 2, 3, 4, 5, 6} {
		n, err := strconv.Atoi(row[i])
		if err != nil {
			return StepRecord{}, err
		}
		nums = append(nums, n)
	}
	arr, err := splitInts(row[7])
	if err != nil {
		return StepRecord{}, err
	}
	return StepRecord{
		Index:       nums[0],
		Phase:       step.Phase(row[1]),
		Comparisons: nums[1],
		Swaps:       nums[2],
		Writes:      nums[3],
		Probes:      nums[4],
		Frontier:    nums[5],
		Array:       arr,
	}, nil
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}

func splitInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/ctlab/internal/response"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	System    string    `json:"system"`
	Num       []float64 `json:"num"`
	Den       []float64 `json:"den"`
	Input     string    `json:"input"`
	Timestamp time.Time `json:"timestamp"`
	Horizon   float64   `json:"horizon"`
	Samples   int       `json:"samples"`
	Verdict   string    `json:"verdict"`
}

// Save writes one run directory containing metadata.json and
// response.csv and returns the run ID.
func (s *Store) Save(system string, num, den []float64, verdict string, res response.SimulationResult) (string, error) {
	runID := fmt.Sprintf("%s_%d", system, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	horizon := 0.0
	if len(res.Times) > 0 {
		horizon = res.Times[len(res.Times)-1]
	}
	meta := RunMetadata{
		ID:        runID,
		System:    system,
		Num:       num,
		Den:       den,
		Input:     res.Input.String(),
		Timestamp: time.Now(),
		Horizon:   horizon,
		Samples:   len(res.Times),
		Verdict:   verdict,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "response.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time", "output"}
	if res.Reference != nil {
		header = append(header, "reference")
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range res.Times {
		row := []string{
			strconv.FormatFloat(res.Times[i], 'f', 6, 64),
			strconv.FormatFloat(res.Outputs[i], 'f', 6, 64),
		}
		if res.Reference != nil {
			row = append(row, strconv.FormatFloat(res.Reference[i], 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadResponse reads the sampled times, outputs, and (when present)
// reference back from a run's response.csv.
func (s *Store) LoadResponse(runID string) (times, outputs, reference []float64, err error) {
	csvPath := filepath.Join(s.baseDir, runID, "response.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}

	if len(records) < 2 {
		return []float64{}, []float64{}, nil, nil
	}
	hasRef := len(records[0]) > 2

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		times = append(times, t)
		outputs = append(outputs, y)

		if hasRef && len(record) > 2 {
			if ref, err := strconv.ParseFloat(record[2], 64); err == nil {
				reference = append(reference, ref)
			}
		}
	}

	return times, outputs, reference, nil
}

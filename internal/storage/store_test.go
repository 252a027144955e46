package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/ctlab/internal/response"
)

func sampleResult() response.SimulationResult {
	return response.SimulationResult{
		Input:     response.Ramp,
		Times:     []float64{0.0, 0.5, 1.0},
		Outputs:   []float64{0.0, 0.1, 0.4},
		Reference: []float64{0.0, 0.5, 1.0},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("first_order", []float64{1}, []float64{1, 1}, "stable", sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.System != "first_order" {
		t.Errorf("expected system 'first_order', got '%s'", meta.System)
	}
	if meta.Input != "ramp" {
		t.Errorf("expected input 'ramp', got '%s'", meta.Input)
	}
	if meta.Verdict != "stable" {
		t.Errorf("expected verdict 'stable', got '%s'", meta.Verdict)
	}
	if meta.Samples != 3 {
		t.Errorf("expected 3 samples, got %d", meta.Samples)
	}

	times, outputs, reference, err := st.LoadResponse(runID)
	if err != nil {
		t.Fatalf("load response failed: %v", err)
	}
	if len(times) != 3 || len(outputs) != 3 || len(reference) != 3 {
		t.Errorf("lengths = %d/%d/%d, want 3 each", len(times), len(outputs), len(reference))
	}
	if outputs[2] != 0.4 {
		t.Errorf("outputs[2] = %v, want 0.4", outputs[2])
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save("test", []float64{1}, []float64{1, 1}, "stable", sampleResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("test", []float64{1}, []float64{1, 1}, "stable", sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	if _, err := os.Stat(filepath.Join(runDir, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(runDir, "response.csv")); os.IsNotExist(err) {
		t.Error("response.csv not created")
	}
}

func TestStoreStepRunHasNoReferenceColumn(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	res := response.SimulationResult{
		Input:   response.Step,
		Times:   []float64{0.0, 1.0},
		Outputs: []float64{0.0, 0.6},
	}
	runID, err := st.Save("step_run", []float64{1}, []float64{1, 1}, "stable", res)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	_, _, reference, err := st.LoadResponse(runID)
	if err != nil {
		t.Fatalf("load response failed: %v", err)
	}
	if reference != nil {
		t.Errorf("expected no reference column, got %v", reference)
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportJSON(&buf, "first_order", []float64{1}, []float64{1, 1}, "stable", sampleResult()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if data.System != "first_order" || data.Samples != 3 {
		t.Errorf("export data = %+v", data)
	}
	if !strings.Contains(buf.String(), "\"verdict\": \"stable\"") {
		t.Error("export missing verdict field")
	}
}

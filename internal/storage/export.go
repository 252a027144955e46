package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/ctlab/internal/response"
)

type ExportData struct {
	System    string    `json:"system"`
	Num       []float64 `json:"num"`
	Den       []float64 `json:"den"`
	Input     string    `json:"input"`
	Verdict   string    `json:"verdict"`
	Samples   int       `json:"samples"`
	Times     []float64 `json:"times"`
	Outputs   []float64 `json:"outputs"`
	Reference []float64 `json:"reference,omitempty"`
}

func ExportJSON(w io.Writer, system string, num, den []float64, verdict string, res response.SimulationResult) error {
	data := ExportData{
		System:    system,
		Num:       num,
		Den:       den,
		Input:     res.Input.String(),
		Verdict:   verdict,
		Samples:   len(res.Times),
		Times:     res.Times,
		Outputs:   res.Outputs,
		Reference: res.Reference,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSONFile(path, system string, num, den []float64, verdict string, res response.SimulationResult) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return ExportJSON(file, system, num, den, verdict, res)
}

package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/qradial/internal/radial"
)

type ExportData struct {
	Potential string             `json:"potential"`
	Method    string             `json:"method"`
	L         int                `json:"l"`
	K2        float64            `json:"k2"`
	Points    int                `json:"points"`
	R         []float64          `json:"r"`
	U         []float64          `json:"u"`
	Metrics   map[string]float64 `json:"metrics"`
}

func newExportData(potential, method string, l int, k2 float64, g radial.Grid, u radial.Wavefunction, metrics map[string]float64) ExportData {
	return ExportData{
		Potential: potential,
		Method:    method,
		L:         l,
		K2:        k2,
		Points:    g.Len(),
		R:         g.Points,
		U:         u,
		Metrics:   metrics,
	}
}

func ExportJSON(path string, potential, method string, l int, k2 float64, g radial.Grid, u radial.Wavefunction, metrics map[string]float64) error {
	data := newExportData(potential, method, l, k2, g, u, metrics)

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSONStdout(potential, method string, l int, k2 float64, g radial.Grid, u radial.Wavefunction, metrics map[string]float64) error {
	data := newExportData(potential, method, l, k2, g, u, metrics)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportCSV(path string, g radial.Grid, u radial.Wavefunction) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return writeCSV(file, g, u)
}

func writeCSV(out io.Writer, g radial.Grid, u radial.Wavefunction) error {
	w := csv.NewWriter(out)

	if err := w.Write([]string{"r", "u"}); err != nil {
		return err
	}
	for i, r := range g.Points {
		row := []string{
			strconv.FormatFloat(r, 'g', -1, 64),
			strconv.FormatFloat(u[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/qradial/internal/radial"
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
	ID        string             `json:"id"`
	Potential string             `json:"potential"`
	Method    string             `json:"method"`
	Timestamp time.Time          `json:"timestamp"`
	L         int                `json:"l"`
	K2        float64            `json:"k2"`
	RMin      float64            `json:"rmin"`
	RMax      float64            `json:"rmax"`
	Points    int                `json:"points"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(potential, method string, l int, k2 float64, g radial.Grid, u radial.Wavefunction, metrics map[string]float64) (string, error) {
	if len(u) != g.Len() {
		return "", fmt.Errorf("storage: wavefunction has %d points, grid has %d", len(u), g.Len())
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", err
	}

	// repeated saves within one second get a numeric suffix
	base := fmt.Sprintf("%s_%d", potential, time.Now().Unix())
	runID := base
	runDir := filepath.Join(s.baseDir, runID)
	for i := 2; ; i++ {
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			break
		}
		if !os.IsExist(err) {
			return "", err
		}
		runID = fmt.Sprintf("%s_%d", base, i)
		runDir = filepath.Join(s.baseDir, runID)
	}

	meta := RunMetadata{
		ID:        runID,
		Potential: potential,
		Method:    method,
		Timestamp: time.Now(),
		L:         l,
		K2:        k2,
		RMin:      g.Rmin(),
		RMax:      g.Rmax(),
		Points:    g.Len(),
		Metrics:   metrics,
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

	csvPath := filepath.Join(runDir, "wavefunction.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := writeCSV(csvFile, g, u); err != nil {
		return "", err
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

func (s *Store) LoadWavefunction(runID string) ([]float64, []float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "wavefunction.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 2

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return []float64{}, []float64{}, nil
	}

	rs := make([]float64, 0, len(records)-1)
	us := make([]float64, 0, len(records)-1)

	for i := 1; i < len(records); i++ {
		record := records[i]

		rv, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		uv, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}

		rs = append(rs, rv)
		us = append(us, uv)
	}

	return rs, us, nil
}

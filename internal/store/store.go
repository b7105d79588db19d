// Package store persists finished runs under a data directory, one
// subdirectory per run holding metadata plus the trajectory document in
// JSON and CSV form.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/san-kum/advect/internal/advect"
	"github.com/san-kum/advect/internal/export"
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
	Field     string             `json:"field"`
	Scheme    string             `json:"scheme"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Dt        float64            `json:"dt"`
	Tmax      float64            `json:"tmax"`
	Particles int                `json:"particles"`
	Steps     int                `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`
}

// TrajectoryRow is one CSV record in long format: one row per particle per
// grid instant. The trailing buffer slot is not written here, matching the
// trajectory report.
type TrajectoryRow struct {
	Step     int     `csv:"step"`
	T        float64 `csv:"t"`
	Particle int     `csv:"particle"`
	X        float64 `csv:"x"`
	Y        float64 `csv:"y"`
}

// Save writes a run directory named <field>_<unix> containing
// metadata.json, trajectories.json and trajectories.csv, and returns the
// run id.
func (s *Store) Save(field, scheme string, seed int64, a *advect.Analysis, metrics map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", field, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Field:     field,
		Scheme:    scheme,
		Timestamp: time.Now(),
		Seed:      seed,
		Dt:        a.Grid().Dt(),
		Tmax:      a.Grid().Tmax(),
		Particles: a.Particles().Len(),
		Steps:     a.Grid().StepCount(),
		Metrics:   metrics,
	}

	if err := writeMetadata(filepath.Join(runDir, "metadata.json"), &meta); err != nil {
		return "", err
	}

	if err := export.Write(filepath.Join(runDir, "trajectories.json"), a); err != nil {
		return "", err
	}

	if err := writeCSV(filepath.Join(runDir, "trajectories.csv"), a); err != nil {
		return "", err
	}

	return runID, nil
}

func writeMetadata(path string, meta *RunMetadata) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writeCSV(path string, a *advect.Analysis) error {
	times := a.Grid().Times()
	parts := a.Particles()

	rows := make([]*TrajectoryRow, 0, len(times)*parts.Len())
	for n := 0; n < parts.Len(); n++ {
		p := parts.At(n)
		for i, t := range times {
			rows = append(rows, &TrajectoryRow{
				Step:     i,
				T:        t,
				Particle: n,
				X:        p.X[i],
				Y:        p.Y[i],
			})
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return gocsv.MarshalFile(&rows, file)
}

// WriteRows marshals trajectory rows to a standalone CSV file.
func WriteRows(path string, rows []*TrajectoryRow) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return gocsv.MarshalFile(&rows, file)
}

// List returns metadata for every readable run, skipping entries that
// cannot be parsed.
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
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
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

// Load returns one run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadDocument returns one run's trajectory document.
func (s *Store) LoadDocument(runID string) (*export.Document, error) {
	return export.Read(filepath.Join(s.baseDir, runID, "trajectories.json"))
}

// LoadRows returns one run's CSV trajectory rows.
func (s *Store) LoadRows(runID string) ([]*TrajectoryRow, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectories.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows := []*TrajectoryRow{}
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/airscrew/internal/bem"
)

// Store keeps sweep runs on disk, one directory per run with metadata.json
// and points.csv.
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
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Timestamp  time.Time `json:"timestamp"`
	Blades     int       `json:"blades"`
	TipRadius  float64   `json:"tip_radius"`
	RPM        float64   `json:"rpm"`
	SpeedStart float64   `json:"speed_start"`
	SpeedEnd   float64   `json:"speed_end"`
	SpeedSteps int       `json:"speed_steps"`
	Density    float64   `json:"density"`
	Points     int       `json:"points"`
}

var csvHeader = []string{"speed_kmh", "thrust_n", "torque_nm", "power_w", "thrust_coeff", "thrust_per_power"}

func (s *Store) Save(name string, blades int, tipRadius float64, env bem.Env, points []bem.SpeedPoint) (string, error) {
	runID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Name:       name,
		Timestamp:  time.Now(),
		Blades:     blades,
		TipRadius:  tipRadius,
		RPM:        env.RPM,
		SpeedStart: env.SpeedStart,
		SpeedEnd:   env.SpeedEnd,
		SpeedSteps: env.Steps,
		Density:    env.Density,
		Points:     len(points),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "points.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, points); err != nil {
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

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

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

func (s *Store) LoadPoints(runID string) ([]bem.SpeedPoint, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "points.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadCSV(file)
}

// formatFloat keeps full precision and renders non-finite values the way
// strconv understands them back ("NaN", "+Inf", "-Inf").
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

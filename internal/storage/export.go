package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/airscrew/internal/bem"
)

// WriteCSV emits the performance curve with a header row. Non-finite values
// round-trip as NaN/±Inf strings.
func WriteCSV(w io.Writer, points []bem.SpeedPoint) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			formatFloat(p.Speed),
			formatFloat(p.Thrust),
			formatFloat(p.Torque),
			formatFloat(p.Power),
			formatFloat(p.ThrustCoeff),
			formatFloat(p.ThrustPerPower),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func ReadCSV(r io.Reader) ([]bem.SpeedPoint, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return []bem.SpeedPoint{}, nil
	}

	points := make([]bem.SpeedPoint, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != len(csvHeader) {
			return nil, fmt.Errorf("storage: expected %d columns, got %d", len(csvHeader), len(rec))
		}
		vals := make([]float64, len(rec))
		for i, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("storage: bad value %q: %w", field, err)
			}
			vals[i] = v
		}
		points = append(points, bem.SpeedPoint{
			Speed:          vals[0],
			Thrust:         vals[1],
			Torque:         vals[2],
			Power:          vals[3],
			ThrustCoeff:    vals[4],
			ThrustPerPower: vals[5],
		})
	}

	return points, nil
}

// jsonFloat renders non-finite values as JSON null; encoding/json rejects
// NaN and infinities outright, and zero-speed points carry both.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

type exportPoint struct {
	SpeedKmh       jsonFloat `json:"speed_kmh"`
	Thrust         jsonFloat `json:"thrust_n"`
	Torque         jsonFloat `json:"torque_nm"`
	Power          jsonFloat `json:"power_w"`
	ThrustCoeff    jsonFloat `json:"thrust_coeff"`
	ThrustPerPower jsonFloat `json:"thrust_per_power"`
}

type exportData struct {
	Meta   RunMetadata   `json:"run"`
	Points []exportPoint `json:"points"`
}

// ExportJSON writes a saved run as one indented JSON document.
func ExportJSON(w io.Writer, meta RunMetadata, points []bem.SpeedPoint) error {
	data := exportData{
		Meta:   meta,
		Points: make([]exportPoint, len(points)),
	}
	for i, p := range points {
		data.Points[i] = exportPoint{
			SpeedKmh:       jsonFloat(p.Speed),
			Thrust:         jsonFloat(p.Thrust),
			Torque:         jsonFloat(p.Torque),
			Power:          jsonFloat(p.Power),
			ThrustCoeff:    jsonFloat(p.ThrustCoeff),
			ThrustPerPower: jsonFloat(p.ThrustPerPower),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

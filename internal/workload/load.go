package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Load reads a workload from path. Files ending in .csv use the CSV format,
// anything else is handed to viper (YAML, JSON, TOML, ...).
func Load(path string) (Config, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: error opening scheduling file", err)
		}
		defer f.Close()
		return LoadCSV(f)
	}
	return LoadFile(path)
}

// LoadFile reads a structured workload file through viper.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading workload %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: decoding %s: %v", ErrInvalidWorkload, path, err)
	}
	return cfg, nil
}

// LoadCSV parses rows of name,burst,arrival[,priority]. Blank lines and lines
// starting with # are skipped, as is a leading name,burst,arrival[,priority]
// header row.
func LoadCSV(r io.Reader) (Config, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return Config{}, fmt.Errorf("%w: reading CSV", err)
	}
	if len(rows) > 0 && isHeader(rows[0]) {
		rows = rows[1:]
	}

	var cfg Config
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return Config{}, fmt.Errorf("%w: row %d: want 3 or 4 fields, got %d", ErrInvalidWorkload, i+1, len(row))
		}
		p := ProcessConfig{Name: strings.TrimSpace(row[0])}
		fields := []*int64{&p.BurstTime, &p.ArrivalTime, &p.Priority}
		for j, raw := range row[1:] {
			n, err := strToInt(raw)
			if err != nil {
				return Config{}, fmt.Errorf("%w: row %d: %v", ErrInvalidWorkload, i+1, err)
			}
			*fields[j] = n
		}
		cfg.Processes = append(cfg.Processes, p)
	}
	return cfg, nil
}

var header = []string{"name", "burst", "arrival", "priority"}

// isHeader matches name,burst,arrival[,priority] only, so a row with a
// malformed number is reported rather than skipped.
func isHeader(row []string) bool {
	if len(row) < 3 || len(row) > len(header) {
		return false
	}
	for i, field := range row {
		if !strings.EqualFold(strings.TrimSpace(field), header[i]) {
			return false
		}
	}
	return true
}

func strToInt(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

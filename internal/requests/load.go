package requests

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidRequest wraps every decoding failure of a workload.
var ErrInvalidRequest = errors.New("invalid request")

// Format of a workload document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: unsupported workload file extension %q", ErrInvalidRequest, filepath.Ext(path))
	}
}

// LoadFile reads a workload document from disk.
func LoadFile(path string) (*ScheduleRequests, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workload: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Decode(f, format)
}

// Decode reads one workload document in the given format.
func Decode(r io.Reader, format Format) (*ScheduleRequests, error) {
	var request ScheduleRequests
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&request); err != nil {
			return nil, fmt.Errorf("%w: decode json: %v", ErrInvalidRequest, err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&request); err != nil {
			return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidRequest, err)
		}
	case FormatCSV:
		jobs, err := decodeCSV(r)
		if err != nil {
			return nil, err
		}
		request.Jobs = jobs
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidRequest, format)
	}
	return &request, nil
}

// decodeCSV reads id,arrival,burst[,priority] rows. A leading header row is
// skipped.
func decodeCSV(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: read csv: %v", ErrInvalidRequest, err)
	}

	jobs := make([]Job, 0, len(rows))
	for i, row := range rows {
		if i == 0 && len(row) > 0 && !isNumber(row[0]) {
			continue
		}
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w: csv line %d: expected 3 or 4 fields, got %d", ErrInvalidRequest, i+1, len(row))
		}
		values := make([]int, 4)
		for j, cell := range row {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("%w: csv line %d field %d: %v", ErrInvalidRequest, i+1, j+1, err)
			}
			values[j] = v
		}
		jobs = append(jobs, Job{
			ProcessId:   values[0],
			ArrivalTime: values[1],
			BurstTime:   values[2],
			Priority:    values[3],
		})
	}
	return jobs, nil
}

func isNumber(s string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil
}

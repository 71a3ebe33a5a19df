package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"cpusched/internal/requests"
)

type workloadOptions struct {
	file    string
	quantum int
	output  string
}

func (o *workloadOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.file, "file", "f", "", "Workload file (.json, .yaml, .yml or .csv)")
	fs.IntVarP(&o.quantum, "quantum", "q", 0, "Round robin time quantum (default: from file, then config)")
	fs.StringVarP(&o.output, "output", "o", "text", "Output format (text, json)")
}

func (o *workloadOptions) load() (*requests.ScheduleRequests, int, error) {
	if o.file == "" {
		return nil, 0, fmt.Errorf("a workload file is required (--file)")
	}
	if o.output != "text" && o.output != "json" {
		return nil, 0, fmt.Errorf("unknown output format %q", o.output)
	}
	request, err := requests.LoadFile(o.file)
	if err != nil {
		return nil, 0, err
	}

	quantum := o.quantum
	if quantum == 0 {
		quantum = request.TimeQuantum
	}
	if quantum == 0 {
		quantum = cfg.RoundRobinTimeQuantum
	}
	return request, quantum, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stress

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"
)

// maxViolations bounds how many violation details a Report keeps.
const maxViolations = 32

// Report aggregates the results of one run.
type Report struct {
	RunID          string
	Trials         int
	Workers        int
	Seed           uint64
	Completed      int
	Elapsed        time.Duration
	Counts         [len(Modes)][len(Verdicts)]int
	ViolationCount int
	Violations     []Result
}

func newReport(id string, opts Options) *Report {
	return &Report{RunID: id, Trials: opts.Trials, Workers: opts.Workers, Seed: opts.Seed}
}

func (r *Report) add(res Result) {
	r.Completed++
	r.Counts[res.Mode][res.Verdict]++
	if res.Verdict == Invalid {
		r.ViolationCount++
		if len(r.Violations) < maxViolations {
			r.Violations = append(r.Violations, res)
		}
	}
}

// Count returns how many trials of mode resolved to v.
func (r *Report) Count(mode Mode, v Verdict) int {
	return r.Counts[mode][v]
}

// Err returns an error wrapping ErrInvariant if any trial was invalid.
func (r *Report) Err() error {
	if r.ViolationCount == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d trials", ErrInvariant, r.ViolationCount, r.Completed)
}

// summary is the serialized form of a Report.
type summary struct {
	RunID      string                    `json:"run_id" yaml:"run_id"`
	Trials     int                       `json:"trials" yaml:"trials"`
	Workers    int                       `json:"workers" yaml:"workers"`
	Seed       uint64                    `json:"seed" yaml:"seed"`
	Completed  int                       `json:"completed" yaml:"completed"`
	Elapsed    string                    `json:"elapsed" yaml:"elapsed"`
	Outcomes   map[string]map[string]int `json:"outcomes" yaml:"outcomes"`
	Violations int                       `json:"violations" yaml:"violations"`
	Details    []string                  `json:"details,omitempty" yaml:"details,omitempty"`
}

func (r *Report) summary() summary {
	s := summary{
		RunID:      r.RunID,
		Trials:     r.Trials,
		Workers:    r.Workers,
		Seed:       r.Seed,
		Completed:  r.Completed,
		Elapsed:    r.Elapsed.String(),
		Outcomes:   make(map[string]map[string]int, len(Modes)),
		Violations: r.ViolationCount,
	}
	for _, m := range Modes {
		row := make(map[string]int)
		for _, v := range Verdicts {
			if n := r.Counts[m][v]; n > 0 {
				row[v.String()] = n
			}
		}
		if len(row) > 0 {
			s.Outcomes[m.String()] = row
		}
	}
	for _, res := range r.Violations {
		s.Details = append(s.Details, fmt.Sprintf("#%d %s", res.Seq, res.Detail))
	}
	return s
}

// Encode writes the report to w in format: "text", "json" or "yaml".
func (r *Report) Encode(w io.Writer, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r.summary())
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.summary()); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		return r.encodeText(w)
	}
	return fmt.Errorf("stress: unknown report format %q", format)
}

func (r *Report) encodeText(w io.Writer) error {
	fmt.Fprintf(w, "run %s: %d/%d trials, %d workers, seed %d, %s\n",
		r.RunID, r.Completed, r.Trials, r.Workers, r.Seed, r.Elapsed)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "MODE")
	for _, v := range Verdicts {
		fmt.Fprintf(tw, "\t%s", v)
	}
	fmt.Fprintln(tw)
	for _, m := range Modes {
		fmt.Fprint(tw, m)
		for _, v := range Verdicts {
			fmt.Fprintf(tw, "\t%d", r.Counts[m][v])
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if r.ViolationCount == 0 {
		_, err := fmt.Fprintln(w, "no violations")
		return err
	}
	fmt.Fprintf(w, "%d violations\n", r.ViolationCount)
	for _, res := range r.Violations {
		fmt.Fprintf(w, "  #%d %s\n", res.Seq, res.Detail)
	}
	return nil
}

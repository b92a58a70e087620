// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output maps capped extraction results into the requested output
// files. It reshapes data only; all selection and capping happens upstream.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/transition-engine/internal/extract"
	"github.com/pdiddy/transition-engine/pkg/types"
)

// Output file names. The names double as the selection keys.
const (
	KindExamplesJSON        = "fewshot_examples.json"
	KindRejected            = "fewshots_rejected.txt"
	KindTransitionsOnly     = "transitions_only.txt"
	KindTransitionsRejected = "transitions_only_rejected.txt"
	KindExamplesJSONL       = "fewshot_examples.jsonl"
	KindFineTuningRejected  = "fewshots_finetuning_rejected.txt"
)

// AllKinds lists every output kind in emission order.
var AllKinds = []string{
	KindExamplesJSON,
	KindRejected,
	KindTransitionsOnly,
	KindTransitionsRejected,
	KindExamplesJSONL,
	KindFineTuningRejected,
}

// contextSeparator joins paragraph A and B into the chat-format context.
const contextSeparator = " ... "

// chatMessage is one turn of a chat-format training record.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRecord pairs the context with the expected transition response.
type chatRecord struct {
	Messages []chatMessage `json:"messages"`
}

// Write produces the requested output files under dir and returns a map from
// file name to entry count. The report files are only written when they have
// content. Files are emitted in a fixed order; the first write error aborts
// with the file name wrapped in, and files already written stay on disk.
func Write(dir string, kinds []string, res extract.CapResult, raw []types.Triplet, w io.Writer) (map[string]int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	selected := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		selected[k] = true
	}
	if len(kinds) == 0 {
		for _, k := range AllKinds {
			selected[k] = true
		}
	}

	counts := make(map[string]int)

	emit := func(name string, entries int, data []byte) error {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		counts[name] = entries
		fmt.Fprintf(w, "wrote %s (%d entries)\n", name, entries)
		return nil
	}

	if selected[KindExamplesJSON] {
		data, err := marshalJSON(orEmpty(res.Final), true)
		if err != nil {
			return counts, fmt.Errorf("encoding %s: %w", KindExamplesJSON, err)
		}
		if err := emit(KindExamplesJSON, len(res.Final), data); err != nil {
			return counts, err
		}
	}

	if selected[KindRejected] {
		lines := rejectedLines(res)
		if len(lines) > 0 {
			data := []byte(strings.Join(lines, "\n"))
			if err := emit(KindRejected, len(lines), data); err != nil {
				return counts, err
			}
		}
	}

	if selected[KindTransitionsOnly] {
		transitions := distinctTransitions(res.Final)
		var b strings.Builder
		for _, t := range transitions {
			b.WriteString(t)
			b.WriteByte('\n')
		}
		if err := emit(KindTransitionsOnly, len(transitions), []byte(b.String())); err != nil {
			return counts, err
		}
	}

	if selected[KindTransitionsRejected] {
		lines := rawDuplicateLines(raw)
		if len(lines) > 0 {
			data := []byte(strings.Join(lines, "\n"))
			if err := emit(KindTransitionsRejected, len(lines), data); err != nil {
				return counts, err
			}
		}
	}

	if selected[KindExamplesJSONL] {
		data, err := chatRecords(res.Final)
		if err != nil {
			return counts, fmt.Errorf("encoding %s: %w", KindExamplesJSONL, err)
		}
		if err := emit(KindExamplesJSONL, len(res.Final), data); err != nil {
			return counts, err
		}
	}

	if selected[KindFineTuningRejected] {
		dups := orderedDuplicates(res)
		if len(dups) > 0 {
			data, err := chatRecords(dups)
			if err != nil {
				return counts, fmt.Errorf("encoding %s: %w", KindFineTuningRejected, err)
			}
			data = bytes.TrimRight(data, "\n")
			if err := emit(KindFineTuningRejected, len(dups), data); err != nil {
				return counts, err
			}
		}
	}

	return counts, nil
}

// rejectedLines renders the cap-exceeded report, one line per transition
// whose total occurrence count went over the cap.
func rejectedLines(res extract.CapResult) []string {
	var lines []string
	for _, e := range extract.CapExceeded(res) {
		lines = append(lines, fmt.Sprintf("Transition: '%s' used %d times (exceeded by %d)",
			e.Transition, e.Total, e.Excess))
	}
	return lines
}

// rawDuplicateLines renders the raw-duplicate report, one line per transition
// occurring more than once among all raw triplets.
func rawDuplicateLines(raw []types.Triplet) []string {
	var lines []string
	for _, e := range extract.RawDuplicates(raw) {
		lines = append(lines, fmt.Sprintf("Transition: '%s' used %d times", e.Transition, e.Count))
	}
	return lines
}

// distinctTransitions returns the sorted, duplicate-free transitions present
// in the given triplets.
func distinctTransitions(triplets []types.Triplet) []string {
	seen := make(map[string]bool)
	var transitions []string
	for _, t := range triplets {
		if !seen[t.Transition] {
			seen[t.Transition] = true
			transitions = append(transitions, t.Transition)
		}
	}
	sort.Strings(transitions)
	return transitions
}

// orderedDuplicates flattens the duplicate map, sorted by transition text and
// keeping each transition's rejected triplets in original order.
func orderedDuplicates(res extract.CapResult) []types.Triplet {
	transitions := make([]string, 0, len(res.Duplicates))
	for t := range res.Duplicates {
		if len(res.Duplicates[t]) > 0 {
			transitions = append(transitions, t)
		}
	}
	sort.Strings(transitions)

	var dups []types.Triplet
	for _, t := range transitions {
		dups = append(dups, res.Duplicates[t]...)
	}
	return dups
}

// chatRecords encodes triplets as newline-delimited chat-format records,
// pairing the joined context with the canonical transition as the response.
func chatRecords(triplets []types.Triplet) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	for _, t := range triplets {
		record := chatRecord{Messages: []chatMessage{
			{Role: "user", Content: t.ParagraphA + contextSeparator + t.ParagraphB},
			{Role: "assistant", Content: t.Transition},
		}}
		if err := enc.Encode(record); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// marshalJSON encodes v without HTML escaping so the French text stays
// readable in the output files.
func marshalJSON(v any, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "    ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// orEmpty keeps the JSON array form for an empty triplet list.
func orEmpty(triplets []types.Triplet) []types.Triplet {
	if triplets == nil {
		return []types.Triplet{}
	}
	return triplets
}

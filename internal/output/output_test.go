// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/transition-engine/internal/extract"
	"github.com/pdiddy/transition-engine/pkg/types"
)

func testResult() (extract.CapResult, []types.Triplet) {
	raw := []types.Triplet{
		{ParagraphA: "A1", Transition: "en effet", ParagraphB: "B1"},
		{ParagraphA: "A2", Transition: "en effet", ParagraphB: "B2"},
		{ParagraphA: "A3", Transition: "en effet", ParagraphB: "B3"},
		{ParagraphA: "A4", Transition: "en effet", ParagraphB: "B4"},
		{ParagraphA: "A5", Transition: "de plus", ParagraphB: "B5"},
		{ParagraphA: "A6", Transition: "de plus", ParagraphB: "B6"},
	}
	return extract.Cap(raw, 3), raw
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}

func TestWriteAllKinds(t *testing.T) {
	res, raw := testResult()
	dir := t.TempDir()

	counts, err := Write(dir, nil, res, raw, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	want := map[string]int{
		KindExamplesJSON:        5,
		KindRejected:            1,
		KindTransitionsOnly:     2,
		KindTransitionsRejected: 2,
		KindExamplesJSONL:       5,
		KindFineTuningRejected:  1,
	}
	for name, n := range want {
		if counts[name] != n {
			t.Errorf("counts[%s] = %d, want %d", name, counts[name], n)
		}
	}
}

func TestWriteExamplesJSON(t *testing.T) {
	res, raw := testResult()
	dir := t.TempDir()

	if _, err := Write(dir, []string{KindExamplesJSON}, res, raw, &bytes.Buffer{}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var got []types.Triplet
	if err := json.Unmarshal([]byte(readFile(t, dir, KindExamplesJSON)), &got); err != nil {
		t.Fatalf("unmarshaling: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("got %d triplets, want 5", len(got))
	}
	if got[0].ParagraphA != "A1" || got[4].ParagraphA != "A6" {
		t.Errorf("triplet order lost: first %q, last %q", got[0].ParagraphA, got[4].ParagraphA)
	}
}

func TestWriteTransitionsOnlySorted(t *testing.T) {
	res, raw := testResult()
	dir := t.TempDir()

	if _, err := Write(dir, []string{KindTransitionsOnly}, res, raw, &bytes.Buffer{}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got := readFile(t, dir, KindTransitionsOnly)
	if got != "de plus\nen effet\n" {
		t.Errorf("transitions_only = %q, want sorted distinct list", got)
	}
}

func TestWriteRejectedReports(t *testing.T) {
	res, raw := testResult()
	dir := t.TempDir()

	kinds := []string{KindRejected, KindTransitionsRejected}
	if _, err := Write(dir, kinds, res, raw, &bytes.Buffer{}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if got := readFile(t, dir, KindRejected); got != "Transition: 'en effet' used 4 times (exceeded by 1)" {
		t.Errorf("fewshots_rejected = %q", got)
	}

	want := "Transition: 'de plus' used 2 times\nTransition: 'en effet' used 4 times"
	if got := readFile(t, dir, KindTransitionsRejected); got != want {
		t.Errorf("transitions_only_rejected = %q, want %q", got, want)
	}
}

func TestWriteRejectedReportsSkippedWhenEmpty(t *testing.T) {
	raw := []types.Triplet{{ParagraphA: "A", Transition: "t", ParagraphB: "B"}}
	res := extract.Cap(raw, 3)
	dir := t.TempDir()

	counts, err := Write(dir, nil, res, raw, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	for _, name := range []string{KindRejected, KindTransitionsRejected, KindFineTuningRejected} {
		if _, ok := counts[name]; ok {
			t.Errorf("%s written for input with no duplicates", name)
		}
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("%s exists on disk", name)
		}
	}
}

func TestWriteChatRecords(t *testing.T) {
	res, raw := testResult()
	dir := t.TempDir()

	if _, err := Write(dir, []string{KindExamplesJSONL}, res, raw, &bytes.Buffer{}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	lines := strings.Split(strings.TrimRight(readFile(t, dir, KindExamplesJSONL), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d jsonl lines, want 5", len(lines))
	}

	var record chatRecord
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("unmarshaling first line: %v", err)
	}
	if record.Messages[0].Role != "user" || record.Messages[0].Content != "A1 ... B1" {
		t.Errorf("user message = %+v", record.Messages[0])
	}
	if record.Messages[1].Role != "assistant" || record.Messages[1].Content != "en effet" {
		t.Errorf("assistant message = %+v", record.Messages[1])
	}
}

func TestWriteIsDeterministic(t *testing.T) {
	res, raw := testResult()

	dir1, dir2 := t.TempDir(), t.TempDir()
	if _, err := Write(dir1, nil, res, raw, &bytes.Buffer{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := Write(dir2, nil, res, raw, &bytes.Buffer{}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	for _, name := range AllKinds {
		a, errA := os.ReadFile(filepath.Join(dir1, name))
		b, errB := os.ReadFile(filepath.Join(dir2, name))
		if os.IsNotExist(errA) && os.IsNotExist(errB) {
			continue
		}
		if errA != nil || errB != nil {
			t.Fatalf("reading %s: %v / %v", name, errA, errB)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s differs between identical runs", name)
		}
	}
}

func TestWriteSummary(t *testing.T) {
	dir := t.TempDir()
	s := Summary{
		Document:           "digest.docx",
		Articles:           2,
		RawTriplets:        6,
		TotalValidExamples: 5,
		GeneratedFiles:     map[string]int{KindExamplesJSON: 5},
	}
	if err := WriteSummary(dir, s); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}

	got := readFile(t, dir, summaryFile)
	if !strings.Contains(got, "total_valid_examples: 5") {
		t.Errorf("summary missing counts: %q", got)
	}
}

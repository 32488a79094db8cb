package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestBenchRunsEveryTest(t *testing.T) {
	b, err := newBench(64, 48, 2)
	if err != nil {
		t.Fatalf("newBench() = %v", err)
	}
	defer b.close()

	tests, cleanup, err := b.benchmarks()
	if err != nil {
		t.Fatalf("benchmarks() = %v", err)
	}
	defer cleanup()

	results, total := runBenchmarks(tests)
	if len(results) != len(tests) {
		t.Fatalf("results = %d, want %d", len(results), len(tests))
	}
	var sum uint64
	for _, r := range results {
		if r.usec == 0 {
			t.Fatalf("%s: usec = 0", r.name)
		}
		sum += r.score
	}
	if sum != total {
		t.Fatalf("total = %d, want %d", total, sum)
	}

	var out bytes.Buffer
	report(&out, results, total)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(results)+3 {
		t.Fatalf("report has %d lines, want %d:\n%s", len(lines), len(results)+3, out.String())
	}
	if !strings.HasPrefix(lines[1], "Clear             ") {
		t.Fatalf("first row = %q", lines[1])
	}
}

func TestScoreFromOps(t *testing.T) {
	tests := []struct{ ops, usec, want uint64 }{
		{1000, 1000, 1000},
		{500, 0, 500000},
		{3, 2, 1500},
	}
	for _, tt := range tests {
		if got := scoreFromOps(tt.ops, tt.usec); got != tt.want {
			t.Fatalf("scoreFromOps(%d, %d) = %d, want %d", tt.ops, tt.usec, got, tt.want)
		}
	}
}

func TestNewBenchRejectsBadSize(t *testing.T) {
	if _, err := newBench(0, 10, 1); err == nil {
		t.Fatal("newBench(0, 10) = nil error")
	}
}

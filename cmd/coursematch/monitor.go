package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/poiesic/coursematch/core"
	"github.com/poiesic/coursematch/pipeline"
)

const rule = "============================================================"

// consoleMonitor prints run progress and the final summary.
type consoleMonitor struct {
	w io.Writer
}

var _ pipeline.Monitor = (*consoleMonitor)(nil)

func newConsoleMonitor(w io.Writer) *consoleMonitor {
	return &consoleMonitor{w: w}
}

func (m *consoleMonitor) Start(courses int, digest core.ID) {
	fmt.Fprintln(m.w, rule)
	fmt.Fprintln(m.w, "Course Recommendation: keywords vs. embeddings")
	fmt.Fprintln(m.w, rule)
	fmt.Fprintf(m.w, "\n[1/4] Building course representations...\n")
	fmt.Fprintf(m.w, "  %d courses converted to text (digest %s)\n", courses, digest)
	fmt.Fprintf(m.w, "\n[2/4] Fitting semantic backend...\n")
}

func (m *consoleMonitor) AfterFit(s *pipeline.Summary) {
	if s.VocabularySize > 0 {
		fmt.Fprintf(m.w, "  Vocabulary size: %d terms\n", s.VocabularySize)
	}
	fmt.Fprintf(m.w, "  Embedding matrix: %d x %d\n", s.Courses, s.Dimensions)
	if s.ExplainedVariance > 0 {
		fmt.Fprintf(m.w, "  Variance explained: %.1f%%\n", s.ExplainedVariance*100)
	}
	fmt.Fprintf(m.w, "\n[3/4] Running before/after comparisons...\n")
}

func (m *consoleMonitor) QueryRanked(r pipeline.QueryRanking) {
	printComparison(m.w, r, 3)
}

func (m *consoleMonitor) Rendering(charts int) {
	fmt.Fprintf(m.w, "\n[4/4] Generating visualizations (%d charts)...\n", charts)
}

func (m *consoleMonitor) FileWritten(path string) {
	fmt.Fprintf(m.w, "  wrote %s\n", path)
}

func (m *consoleMonitor) Finish(s *pipeline.Summary) {
	fmt.Fprintln(m.w)
	fmt.Fprintln(m.w, rule)
	fmt.Fprintln(m.w, "MODEL SUMMARY")
	fmt.Fprintf(m.w, "  Backend:        %s\n", s.Backend)
	if s.VocabularySize > 0 {
		fmt.Fprintf(m.w, "  Vocabulary:     %d terms (unigrams + bigrams)\n", s.VocabularySize)
	}
	fmt.Fprintf(m.w, "  Embedding dim:  %d\n", s.Dimensions)
	fmt.Fprintf(m.w, "  Courses:        %d\n", s.Courses)
	if s.ExplainedVariance > 0 {
		fmt.Fprintf(m.w, "  Variance:       %.1f%%\n", s.ExplainedVariance*100)
	}
	if len(s.TopFeatures) > 0 {
		fmt.Fprintf(m.w, "  Top terms:      %s\n", strings.Join(s.TopFeatures, ", "))
	}
	fmt.Fprintf(m.w, "  Digest:         %s\n", s.Digest)
	fmt.Fprintln(m.w, rule)
}

// printComparison prints the first n rows of both rankings side by side.
func printComparison(w io.Writer, r pipeline.QueryRanking, n int) {
	fmt.Fprintf(w, "\n  Query: %q\n", r.Query)
	fmt.Fprintf(w, "  %-40s | %-40s\n", "BEFORE (keywords)", "AFTER (embeddings)")
	fmt.Fprintf(w, "  %s | %s\n", strings.Repeat("-", 40), strings.Repeat("-", 40))

	rows := max(min(n, len(r.Keyword)), min(n, len(r.Embedding)))
	for i := 0; i < rows; i++ {
		var kw, emb string
		if i < len(r.Keyword) {
			sc := r.Keyword[i]
			kw = fmt.Sprintf("%s: %s (%d matches)", sc.Course.Code, truncate(sc.Course.Name, 20), int(sc.Score))
		}
		if i < len(r.Embedding) {
			sc := r.Embedding[i]
			emb = fmt.Sprintf("%s: %s (%.3f)", sc.Course.Code, truncate(sc.Course.Name, 20), sc.Score)
		}
		fmt.Fprintf(w, "  %-40s | %-40s\n", kw, emb)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

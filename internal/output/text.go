package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mj1618/outlook-a11y/internal/outlook"
)

// WriteText renders results as a plain log, one line per entry. Values
// without a text form fall back to YAML.
func WriteText(w io.Writer, v interface{}) error {
	var b strings.Builder
	switch r := v.(type) {
	case outlook.ReplayReport:
		writeReplay(&b, r)
	case *outlook.ReplayReport:
		writeReplay(&b, *r)
	case ClassifyResult:
		writeClassify(&b, r)
	case *ClassifyResult:
		writeClassify(&b, *r)
	default:
		return WriteYAML(w, v)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeReplay(b *strings.Builder, r outlook.ReplayReport) {
	fmt.Fprintf(b, "%s (session %s", r.Scenario, r.Session)
	if r.Version != 0 {
		fmt.Fprintf(b, ", version %d", r.Version)
	}
	b.WriteString(")\n")
	for _, st := range r.Steps {
		mark := "ok"
		if !st.Passed {
			mark = "FAIL"
		}
		fmt.Fprintf(b, "%d. %s [%s]\n", st.Step, st.Input, mark)
		for _, e := range st.Entries {
			fmt.Fprintf(b, "   %s\n", e)
		}
		if st.Error != "" {
			fmt.Fprintf(b, "   error: %s\n", st.Error)
		}
		if !st.Passed && st.Error == "" {
			for _, e := range st.Expected {
				fmt.Fprintf(b, "   want %s\n", e)
			}
		}
	}
}

func writeClassify(b *strings.Builder, r ClassifyResult) {
	for _, c := range r.Elements {
		fmt.Fprintf(b, "%d %s", c.ID, c.Path)
		if c.Name != "" {
			fmt.Fprintf(b, " %q", c.Name)
		}
		if len(c.Overlays) > 0 {
			ids := make([]string, len(c.Overlays))
			for i, id := range c.Overlays {
				ids[i] = string(id)
			}
			fmt.Fprintf(b, " overlays=%s", strings.Join(ids, ","))
		}
		if len(c.Corrections) > 0 {
			fmt.Fprintf(b, " corrections=%s", strings.Join(c.Corrections, ","))
		}
		if len(c.Gestures) > 0 {
			fmt.Fprintf(b, " gestures=%s", strings.Join(c.Gestures, ","))
		}
		if d := c.Document; d != nil {
			fmt.Fprintf(b, " layout-tables=%t", d.IncludeLayoutTables)
		}
		b.WriteString("\n")
	}
}

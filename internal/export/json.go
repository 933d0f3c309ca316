package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/san-kum/kinelab/internal/metrics"
	"github.com/san-kum/kinelab/internal/scene"
)

// Document is the JSON form of a finished run.
type Document struct {
	Scenario scene.Scenario                 `json:"scenario"`
	Dt       float64                        `json:"dt"`
	Duration float64                        `json:"duration"`
	Steps    int                            `json:"steps"`
	Final    scene.Snapshot                 `json:"final"`
	Stats    map[string]metrics.ObjectStats `json:"stats"`
	Pair     *metrics.PairStats             `json:"pair,omitempty"`
}

// NewDocument summarizes the final snapshot of a run.
func NewDocument(sn scene.Snapshot, dt float64, steps int) Document {
	doc := Document{
		Scenario: sn.Scenario,
		Dt:       dt,
		Duration: sn.Time,
		Steps:    steps,
		Final:    sn,
		Stats:    make(map[string]metrics.ObjectStats, len(sn.Objects)),
	}
	for _, o := range sn.Objects {
		doc.Stats[o.ID] = metrics.ForObject(o, sn.GroundY)
	}
	if sn.Scenario == scene.Collision1D {
		ps := metrics.ForPair(sn.Collision)
		doc.Pair = &ps
	}
	return doc
}

func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteJSONFile writes doc to path, or to stdout when path is "-".
func WriteJSONFile(path string, doc Document) error {
	if path == "-" {
		return WriteJSON(os.Stdout, doc)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	defer f.Close()
	if err := WriteJSON(f, doc); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// WriteFile writes a rendered document such as an SVG to path.
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

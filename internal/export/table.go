package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/solarsim/internal/orbit"
)

// Row is one body's output for one frame.
type Row struct {
	Frame   int     `json:"frame"`
	Time    float64 `json:"time"`
	Azimuth float64 `json:"azimuth"`
	Body    string  `json:"body"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
	LabelX  float64 `json:"label_x"`
	LabelY  float64 `json:"label_y"`
	LabelZ  float64 `json:"label_z"`
}

// Ephemeris is the JSON document written by WriteJSON.
type Ephemeris struct {
	TimeStep    float64 `json:"time_step"`
	Tilt        float64 `json:"tilt"`
	LabelOffset float64 `json:"label_offset"`
	Start       int     `json:"start"`
	Frames      int     `json:"frames"`
	Rows        []Row   `json:"rows"`
}

// Table evaluates frames [start, start+n) and flattens them, one row per
// body in configuration order. Frames before 0 are skipped.
func Table(u *orbit.Updater, start, n int) []Row {
	end := start + n
	if start < 0 {
		start = 0
	}
	if end <= start {
		return []Row{}
	}
	rows := make([]Row, 0, (end-start)*len(u.Bodies()))
	for f := start; f < end; f++ {
		rows = append(rows, FrameRows(u.Frame(f))...)
	}
	return rows
}

// FrameRows flattens one frame.
func FrameRows(fr orbit.Frame) []Row {
	rows := make([]Row, len(fr.Bodies))
	for i, st := range fr.Bodies {
		rows[i] = Row{
			Frame:   fr.Index,
			Time:    fr.Time,
			Azimuth: fr.Azimuth,
			Body:    st.Name,
			X:       st.Position.X,
			Y:       st.Position.Y,
			Z:       st.Position.Z,
			LabelX:  st.Label.X,
			LabelY:  st.Label.Y,
			LabelZ:  st.Label.Z,
		}
	}
	return rows
}

var csvHeader = []string{"frame", "time", "azimuth", "body", "x", "y", "z", "label_x", "label_y", "label_z"}

// CSVStream writes rows incrementally, emitting the header before the first
// batch and flushing after every batch.
type CSVStream struct {
	w      *csv.Writer
	header bool
}

func NewCSVStream(w io.Writer) *CSVStream {
	return &CSVStream{w: csv.NewWriter(w)}
}

func (s *CSVStream) Write(rows []Row) error {
	if !s.header {
		if err := s.w.Write(csvHeader); err != nil {
			return err
		}
		s.header = true
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Frame),
			formatFloat(r.Time),
			formatFloat(r.Azimuth),
			r.Body,
			formatFloat(r.X),
			formatFloat(r.Y),
			formatFloat(r.Z),
			formatFloat(r.LabelX),
			formatFloat(r.LabelY),
			formatFloat(r.LabelZ),
		}
		if err := s.w.Write(record); err != nil {
			return err
		}
	}
	s.w.Flush()
	return s.w.Error()
}

// WriteCSV writes rows with a header line.
func WriteCSV(w io.Writer, rows []Row) error {
	return NewCSVStream(w).Write(rows)
}

// WriteJSON writes an indented Ephemeris document.
func WriteJSON(w io.Writer, u *orbit.Updater, start, n int) error {
	p := u.Params()
	data := Ephemeris{
		TimeStep:    p.TimeStep,
		Tilt:        p.Tilt,
		LabelOffset: p.LabelOffset,
		Start:       start,
		Frames:      n,
		Rows:        Table(u, start, n),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

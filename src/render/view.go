package render

// Kind identifies how a Block is drawn by the front-end.
type Kind string

// Block kinds.
const (
	Text     Kind = "text"
	Info     Kind = "info"
	Success  Kind = "success"
	Warning  Kind = "warning"
	Caption  Kind = "caption"
	Metric   Kind = "metric"
	Table    Kind = "table"
	Bar      Kind = "bar"
	Polar    Kind = "polar"
	Gauge    Kind = "gauge"
	Scatter  Kind = "scatter"
	Progress Kind = "progress"
	Divider  Kind = "divider"
	Slider   Kind = "slider"
	Select   Kind = "select"
	Action   Kind = "action"
)

// View is everything the front-end needs to draw one page.
type View struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Page     string  `json:"page"`
	Header   string  `json:"header"`
	Blocks   []Block `json:"blocks"`
	Sidebar  Sidebar `json:"sidebar"`
}

// Sidebar is the navigation column.
type Sidebar struct {
	Title    string   `json:"title"`
	Pages    []string `json:"pages"`
	Selected string   `json:"selected"`
	Footer   []string `json:"footer"`
}

// Block is one element of a page. Exactly one payload matches Kind; text-like
// kinds only use Title and Text. Column places the block in a multi-column
// row (0 means full width).
type Block struct {
	Kind     Kind          `json:"kind"`
	Column   int           `json:"column,omitempty"`
	Title    string        `json:"title,omitempty"`
	Text     string        `json:"text,omitempty"`
	Metric   *MetricSpec   `json:"metric,omitempty"`
	Table    *TableSpec    `json:"table,omitempty"`
	Bar      *BarSpec      `json:"bar,omitempty"`
	Polar    *PolarSpec    `json:"polar,omitempty"`
	Gauge    *GaugeSpec    `json:"gauge,omitempty"`
	Scatter  *ScatterSpec  `json:"scatter,omitempty"`
	Progress *ProgressSpec `json:"progress,omitempty"`
	Slider   *SliderSpec   `json:"slider,omitempty"`
	Select   *SelectSpec   `json:"select,omitempty"`
	Action   *ActionSpec   `json:"action,omitempty"`
}

// MetricSpec is a big number with a delta.
type MetricSpec struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Delta   string `json:"delta,omitempty"`
	Inverse bool   `json:"inverse,omitempty"`
}

// TableSpec is a table of preformatted cells.
type TableSpec struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Series is one named trace of numbers.
type Series struct {
	Name      string    `json:"name"`
	Values    []float64 `json:"values"`
	Color     string    `json:"color,omitempty"`
	Highlight bool      `json:"highlight,omitempty"`
	Dashed    bool      `json:"dashed,omitempty"`
}

// BarSpec is a (possibly stacked) bar chart.
type BarSpec struct {
	XLabel     string   `json:"x_label"`
	YLabel     string   `json:"y_label"`
	Categories []string `json:"categories"`
	Series     []Series `json:"series"`
	Stacked    bool     `json:"stacked,omitempty"`
	TickAngle  int      `json:"tick_angle,omitempty"`
	Emphasis   string   `json:"emphasis,omitempty"`
}

// PolarSpec is a radar chart. Axes are closed by the front-end.
type PolarSpec struct {
	Axes   []string `json:"axes"`
	Range  float64  `json:"range"`
	Series []Series `json:"series"`
}

// GaugeBand is a colored range of a gauge.
type GaugeBand struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Color string  `json:"color"`
}

// GaugeSpec is a dial with a threshold marker.
type GaugeSpec struct {
	Value     float64     `json:"value"`
	Max       float64     `json:"max"`
	Threshold float64     `json:"threshold"`
	Bands     []GaugeBand `json:"bands"`
}

// ScatterSpec is a line/marker chart.
type ScatterSpec struct {
	XLabel string    `json:"x_label"`
	YLabel string    `json:"y_label"`
	X      []float64 `json:"x"`
	YMax   float64   `json:"y_max"`
	Series []Series  `json:"series"`
}

// ProgressSpec is a static or animated progress bar.
type ProgressSpec struct {
	Percent int    `json:"percent"`
	Label   string `json:"label"`
}

// SliderSpec is a numeric input bound to a Controls field.
type SliderSpec struct {
	Control string  `json:"control"`
	Label   string  `json:"label"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Value   float64 `json:"value"`
}

// SelectSpec is a single or multiple choice bound to a Controls field.
type SelectSpec struct {
	Control  string   `json:"control"`
	Label    string   `json:"label"`
	Options  []string `json:"options"`
	Selected []string `json:"selected"`
	Multiple bool     `json:"multiple,omitempty"`
}

// ActionSpec is a button. Pressing it sends Method to Path with the session
// header.
type ActionSpec struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Path   string `json:"path"`
}

func text(kind Kind, column int, title, body string) Block {
	return Block{Kind: kind, Column: column, Title: title, Text: body}
}

func divider() Block {
	return Block{Kind: Divider}
}

package receipt

// Block kinds. The composer emits these and every renderer maps them
// to its own formatting, so the grouping and differencing logic lives
// in exactly one place.
const (
	KindHeader    = "header"
	KindField     = "field"
	KindSeparator = "separator"
)

// Block is one renderer-agnostic receipt line.
type Block struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
}

func header(text string) Block { return Block{Kind: KindHeader, Text: text} }
func field(text string) Block  { return Block{Kind: KindField, Text: text} }
func separator() Block         { return Block{Kind: KindSeparator} }

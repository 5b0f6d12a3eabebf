package parser

// Record is one (index, text) entry of a CBF string table dump.
type Record struct {
	// Index is the original line number and the stable identity of the entry.
	Index int
	// Text is the raw payload, unquoted.
	Text string
}

const (
	// RecordSeparator terminates every record in the dump.
	RecordSeparator = "\"\"\"\"\n"
	// FieldSeparator sits between the index and the text of a record.
	FieldSeparator = ",\"\"\"\""

	// OutputSuffix is appended to the input path to name the output file.
	OutputSuffix = "_translated"
)

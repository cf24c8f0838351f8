package syntax

// SourceFile is a parsed source text
type SourceFile struct {
	fileName string
	text     string
	root     *Node
	hash     uint64
}

// NewSourceFile creates a source file; the root span always covers the whole text
func NewSourceFile(fileName, text string, root *Node) *SourceFile {
	if root != nil {
		root = root.WithSpan(Span{Start: 0, End: len(text)})
	}
	hash, _ := Hash([]byte(text))
	return &SourceFile{fileName: fileName, text: text, root: root, hash: hash}
}

func (f *SourceFile) FileName() string {
	return f.fileName
}

func (f *SourceFile) Text() string {
	return f.text
}

func (f *SourceFile) Root() *Node {
	return f.root
}

// Hash returns the content hash of the file text
func (f *SourceFile) Hash() uint64 {
	return f.hash
}

// Statements returns the top level nodes of the file
func (f *SourceFile) Statements() []*Node {
	if f.root == nil {
		return nil
	}
	return f.root.children
}

// Position converts an offset into 1-based line and column
func (f *SourceFile) Position(offset int) (line, column int) {
	line, column = 1, 1
	if offset > len(f.text) {
		offset = len(f.text)
	}
	for i := 0; i < offset; i++ {
		if f.text[i] == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}

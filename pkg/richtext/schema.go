package richtext

// NodeType identifies a node in the document tree.
type NodeType string

const (
	NodeDoc            NodeType = "doc"
	NodeParagraph      NodeType = "paragraph"
	NodeHeading        NodeType = "heading"
	NodeBulletList     NodeType = "bulletList"
	NodeOrderedList    NodeType = "orderedList"
	NodeListItem       NodeType = "listItem"
	NodeImage          NodeType = "image"
	NodeHardBreak      NodeType = "hardBreak"
	NodeText           NodeType = "text"
	NodeBlockquote     NodeType = "blockquote"
	NodeCodeBlock      NodeType = "codeBlock"
	NodeHorizontalRule NodeType = "horizontalRule"
)

// MarkType identifies an inline annotation on a text run.
type MarkType string

const (
	MarkBold      MarkType = "bold"
	MarkItalic    MarkType = "italic"
	MarkUnderline MarkType = "underline"
	MarkStrike    MarkType = "strike"
	MarkCode      MarkType = "code"
	MarkLink      MarkType = "link"
)

const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 3
)

// Link marks always open a new browsing context without an opener.
const (
	LinkTarget = "_blank"
	LinkRel    = "noopener noreferrer nofollow"
)

type category int

const (
	catUnknown category = iota
	catBlock
	catInline
	catTextblock
	catList
	catListItem
	catRoot
)

var nodeCategory = map[NodeType]category{
	NodeDoc:            catRoot,
	NodeParagraph:      catTextblock,
	NodeHeading:        catTextblock,
	NodeCodeBlock:      catTextblock,
	NodeBulletList:     catList,
	NodeOrderedList:    catList,
	NodeListItem:       catListItem,
	NodeBlockquote:     catBlock,
	NodeImage:          catBlock,
	NodeHorizontalRule: catBlock,
	NodeText:           catInline,
	NodeHardBreak:      catInline,
}

var knownMarks = map[MarkType]bool{
	MarkBold:      true,
	MarkItalic:    true,
	MarkUnderline: true,
	MarkStrike:    true,
	MarkCode:      true,
	MarkLink:      true,
}

// markOrder is the nesting order used when rendering, outermost first.
var markOrder = []MarkType{MarkLink, MarkBold, MarkItalic, MarkUnderline, MarkStrike, MarkCode}

// IsKnown reports whether t belongs to the closed node vocabulary.
func (t NodeType) IsKnown() bool {
	_, ok := nodeCategory[t]
	return ok
}

// IsKnown reports whether m belongs to the closed mark vocabulary.
func (m MarkType) IsKnown() bool {
	return knownMarks[m]
}

// IsBlock reports whether t may appear directly under the root.
func (t NodeType) IsBlock() bool {
	switch nodeCategory[t] {
	case catBlock, catTextblock, catList:
		return true
	}
	return false
}

// IsInline reports whether t may appear inside a textblock.
func (t NodeType) IsInline() bool {
	return nodeCategory[t] == catInline
}

// IsTextblock reports whether t holds inline content directly.
func (t NodeType) IsTextblock() bool {
	return nodeCategory[t] == catTextblock
}

// IsList reports whether t is a bullet or ordered list.
func (t NodeType) IsList() bool {
	return nodeCategory[t] == catList
}

// IsLeaf reports whether t never carries children.
func (t NodeType) IsLeaf() bool {
	switch t {
	case NodeText, NodeHardBreak, NodeImage, NodeHorizontalRule:
		return true
	}
	return false
}

// AllowedIn reports whether child may appear directly inside parent.
// Unknown node types are allowed anywhere and left for consumers to degrade.
func AllowedIn(child, parent NodeType) bool {
	if !child.IsKnown() || !parent.IsKnown() {
		return true
	}
	switch parent {
	case NodeDoc, NodeListItem, NodeBlockquote:
		return child.IsBlock()
	case NodeParagraph, NodeHeading:
		return child.IsInline()
	case NodeCodeBlock:
		return child == NodeText
	case NodeBulletList, NodeOrderedList:
		return child == NodeListItem
	}
	return false
}

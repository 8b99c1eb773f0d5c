package inspect

// Node is one component in the inspection tree.
type Node struct {
	// Type is the component type (e.g. "Slider", "Readout", "Cone").
	Type string `json:"type"`

	ID string `json:"id,omitempty"`

	// Bounds holds the rendered size. X and Y are zero unless the caller
	// knows where the component was placed.
	Bounds Bounds `json:"bounds"`

	// Visible is false when the layout dropped the component.
	Visible bool `json:"visible"`

	// State holds component-specific values such as the slider position.
	State map[string]interface{} `json:"state,omitempty"`

	Styles *StyleInfo `json:"styles,omitempty"`

	Children []*Node `json:"children,omitempty"`

	// Content is the plain text the component shows, when it is short.
	Content string `json:"content,omitempty"`
}

// Bounds represents component position and dimensions.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewNode creates a visible node of the given type.
func NewNode(nodeType string) *Node {
	return &Node{
		Type:    nodeType,
		Visible: true,
		State:   make(map[string]interface{}),
	}
}

func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

// WithSize sets the node width and height.
func (n *Node) WithSize(width, height int) *Node {
	n.Bounds.Width = width
	n.Bounds.Height = height
	return n
}

// WithState adds a state key-value pair and returns the node for chaining.
func (n *Node) WithState(key string, value interface{}) *Node {
	if n.State == nil {
		n.State = make(map[string]interface{})
	}
	n.State[key] = value
	return n
}

func (n *Node) WithStyles(styles *StyleInfo) *Node {
	n.Styles = styles
	return n
}

func (n *Node) WithVisible(visible bool) *Node {
	n.Visible = visible
	return n
}

// AddChild adds a child node and returns the parent for chaining.
func (n *Node) AddChild(child *Node) *Node {
	if child != nil {
		n.Children = append(n.Children, child)
	}
	return n
}

func (n *Node) WithContent(content string) *Node {
	n.Content = content
	return n
}

// Find returns the first node in the tree with the given ID, or nil.
func (n *Node) Find(id string) *Node {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

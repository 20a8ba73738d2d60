package sim

import (
	"fmt"

	"github.com/mj1618/outlook-a11y/internal/model"
	"github.com/mj1618/outlook-a11y/internal/platform"
)

// Node is a fixture element exposed as a platform node.
type Node struct {
	host     *Host
	el       model.Element
	states   model.StateSet
	parent   *Node
	children []*Node
	focusErr error
}

func newNode(h *Host, el model.Element, parent *Node) *Node {
	kids := el.Children
	el.Children = nil
	n := &Node{host: h, el: el, states: model.ParseStates(el.States), parent: parent}
	for _, c := range kids {
		n.children = append(n.children, newNode(h, c, n))
	}
	return n
}

// Build creates the node tree for root.
func (h *Host) Build(root model.Element) *Node {
	return newNode(h, root, nil)
}

// Find returns the node with the given fixture id below and including n.
func (n *Node) Find(id int) (*Node, bool) {
	if n.el.ID == id {
		return n, true
	}
	for _, c := range n.children {
		if found, ok := c.Find(id); ok {
			return found, true
		}
	}
	return nil, false
}

// Element returns the fixture element of the node, without children.
func (n *Node) Element() model.Element { return n.el }

// NodeChildren returns the child nodes.
func (n *Node) NodeChildren() []*Node { return n.children }

// SetStates replaces the node's states.
func (n *Node) SetStates(s model.StateSet) { n.states = s }

// SetName replaces the node's name.
func (n *Node) SetName(name string) { n.el.Name = name }

// SetSelection replaces the document selection.
func (n *Node) SetSelection(r *model.Range) { n.el.Selection = r }

// FailSetFocus makes SetFocus return err.
func (n *Node) FailSetFocus(err error) { n.focusErr = err }

func (n *Node) Role() model.Role { return model.MapRole(n.el.Role) }
func (n *Node) States() model.StateSet { return n.states }
func (n *Node) Name() string { return n.el.Name }
func (n *Node) Value() string { return n.el.Value }
func (n *Node) Description() string { return n.el.Description }
func (n *Node) Backend() model.Backend { return model.ParseBackend(n.el.Backend) }
func (n *Node) WindowHandle() int { return n.el.WindowHandle }
func (n *Node) ControlID() int { return n.el.ControlID }
func (n *Node) WindowThreadID() int { return n.host.threadOf(n.el.WindowHandle) }

func (n *Node) Parent() platform.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) WindowClassName() string {
	if n.el.WindowClass != "" {
		return n.el.WindowClass
	}
	return n.host.ClassName(n.el.WindowHandle)
}

func (n *Node) PositionInfo() model.PositionInfo {
	return model.PositionInfo{}
}

func (n *Node) EventSource() (model.EventSource, bool) {
	sig := n.el.Signature()
	if sig.EventSource == nil {
		return model.EventSource{}, false
	}
	return *sig.EventSource, true
}

func (n *Node) SetFocus() error {
	if n.focusErr != nil {
		return n.focusErr
	}
	n.host.record(KindSetFocus, n.el.Name)
	if w, ok := n.host.windows[n.el.WindowHandle]; ok {
		n.host.SetFocusedWindow(w.ThreadID, w.Handle)
	}
	return nil
}

// UIAElement returns the node's UI Automation element, or nil for nodes
// from other backends.
func (n *Node) UIAElement() platform.UIAElement {
	if n.Backend() != model.BackendUIA {
		return nil
	}
	return &uiaElement{n: n}
}

// Selection returns the document selection.
func (n *Node) Selection() (platform.TextRange, error) {
	if n.el.Selection == nil {
		return nil, fmt.Errorf("node %d has no selection: %w", n.el.ID, platform.ErrUnsupported)
	}
	return textRange{r: *n.el.Selection}, nil
}

type uiaElement struct {
	n   *Node
	req *platform.CacheRequest
}

func (e *uiaElement) CachedClassName() string { return e.n.el.ClassName }
func (e *uiaElement) CachedName() string { return e.n.el.Name }
func (e *uiaElement) CurrentName() string { return e.n.el.Name }

func (e *uiaElement) BuildUpdatedCache(req platform.CacheRequest) (platform.UIAElement, error) {
	return &uiaElement{n: e.n, req: &req}, nil
}

func (e *uiaElement) CachedChildren() []platform.UIAElement {
	if e.req == nil || e.req.Scope&platform.ScopeChildren == 0 {
		return nil
	}
	var out []platform.UIAElement
	for _, c := range e.n.children {
		if e.req.Filter == platform.ControlText && c.Role() != model.RoleStaticText {
			continue
		}
		out = append(out, &uiaElement{n: c, req: e.req})
	}
	return out
}

func (e *uiaElement) CachedColumnHeaderItems() []platform.UIAElement {
	if e.req == nil || !e.req.Includes(platform.PropertyColumnHeaderItems) {
		return nil
	}
	out := make([]platform.UIAElement, 0, len(e.n.el.Headers))
	for _, h := range e.n.el.Headers {
		out = append(out, headerElement(h))
	}
	return out
}

// headerElement is a column header known only by name.
type headerElement string

func (h headerElement) CachedClassName() string { return "HeaderItem" }
func (h headerElement) CachedName() string { return string(h) }
func (h headerElement) CurrentName() string { return string(h) }

func (h headerElement) BuildUpdatedCache(platform.CacheRequest) (platform.UIAElement, error) {
	return h, nil
}

func (h headerElement) CachedChildren() []platform.UIAElement { return nil }
func (h headerElement) CachedColumnHeaderItems() []platform.UIAElement { return nil }

type textRange struct {
	r model.Range
}

func (t textRange) Bookmark() string { return fmt.Sprintf("%d:%d", t.r.Start, t.r.End) }
func (t textRange) IsCollapsed() bool { return t.r.Start == t.r.End }
func (t textRange) InTable() bool { return t.r.InTable }
func (t textRange) Text() string { return t.r.Text }

func (t textRange) ExpandToCell() platform.TextRange {
	return textRange{r: model.Range{
		Start:   t.r.Start,
		End:     t.r.Start + len(t.r.Cell),
		Text:    t.r.Cell,
		InTable: true,
		Cell:    t.r.Cell,
	}}
}

// GenericOverlays returns the behaviours the host chose for the node.
func (n *Node) GenericOverlays() []model.OverlayID { return n.el.GenericOverlays() }

package overlay

import (
	"github.com/mj1618/outlook-a11y/internal/model"
	"github.com/mj1618/outlook-a11y/internal/platform"
	"github.com/mj1618/outlook-a11y/internal/remote"
	"go.uber.org/zap"
)

// mailBody is the body of a message opened in its own window. Received
// messages are read only and browsed like a web page.
type mailBody struct{}

func (*mailBody) ID() model.OverlayID { return model.OverlayMailBody }

func (*mailBody) readOnly(o *Object) bool {
	return remote.BoolOr(o.log(), o.env.app(), false, "ActiveInspector()", "CurrentItem", "Sent")
}

func (m *mailBody) Role(o *Object, next func() model.Role) model.Role {
	if m.readOnly(o) {
		return model.RoleDocument
	}
	return next()
}

func (m *mailBody) TreeInterceptor(o *Object) (*MailViewer, bool) {
	if !m.readOnly(o) {
		return nil, false
	}
	doc, ok := o.Node.(platform.Document)
	if !ok {
		return nil, false
	}
	return &MailViewer{root: o, doc: doc}, true
}

func (*mailBody) DocumentOptions(o *Object) DocumentOptions {
	return DocumentOptions{
		IgnorePageNumbers:     true,
		IgnoreEditorRevisions: true,
		IncludeLayoutTables:   o.env.Config.DocumentFormatting.IncludeLayoutTables,
	}
}

// MailViewer is the browse-mode wrapper of a read-only message body.
type MailViewer struct {
	root *Object
	doc  platform.Document
}

// Root returns the document the viewer wraps.
func (v *MailViewer) Root() *Object { return v.root }

// ExecuteScript handles tab and shift+tab, which move between links and
// table cells. Other gestures are left to the host.
func (v *MailViewer) ExecuteScript(g platform.Gesture) bool {
	switch platform.NormalizeGesture(g.ID()) {
	case "kb:tab", "kb:shift+tab":
		v.tab(g)
		return true
	}
	return false
}

func (v *MailViewer) tab(g platform.Gesture) {
	log := v.root.log()
	var before string
	if r, err := v.doc.Selection(); err == nil {
		before = r.Bookmark()
	}
	if err := g.Send(); err != nil {
		log.Debug("sending gesture failed", zap.String("gesture", g.ID()), zap.Error(err))
		return
	}
	after, err := v.doc.Selection()
	if err != nil {
		log.Debug("reading selection failed", zap.Error(err))
		return
	}
	if after.Bookmark() == before {
		return
	}
	if after.InTable() && after.IsCollapsed() {
		after = after.ExpandToCell()
	}
	p := v.root.env.Provider
	if !after.IsCollapsed() {
		p.Presenter.SpeakTextRange(after)
	}
	p.Braille.HandleCaretMove(v.root)
}

package overlay

import (
	"github.com/mj1618/outlook-a11y/internal/config"
	"github.com/mj1618/outlook-a11y/internal/platform"
	"github.com/mj1618/outlook-a11y/internal/remote"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Env is the shared state overlays read from. One Env exists per adapter.
type Env struct {
	Session  *remote.Session
	Provider *platform.Provider
	Events   platform.EventDispatcher
	Config   config.Config
	Log      *zap.Logger

	// LastDate remembers the calendar date last announced.
	LastDate *DateCell

	// Wrap classifies a raw node and composes its overlays.
	Wrap func(platform.Node) *Object
}

func (e *Env) logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

// app returns the client's root object, or nil when the session is not bound.
func (e *Env) app() remote.Object {
	if e.Session == nil {
		return nil
	}
	return e.Session.App()
}

func (e *Env) version() int {
	if e.Session == nil {
		return 0
	}
	return e.Session.Version()
}

func (e *Env) language() language.Tag {
	return e.Config.Language()
}

func (e *Env) lastDate() *DateCell {
	if e.LastDate == nil {
		e.LastDate = &DateCell{}
	}
	return e.LastDate
}

// DocumentOptions are the text tracking options of a document node.
type DocumentOptions struct {
	IgnorePageNumbers     bool `yaml:"ignore_page_numbers"     json:"ignore_page_numbers"`
	IgnoreEditorRevisions bool `yaml:"ignore_editor_revisions" json:"ignore_editor_revisions"`
	IncludeLayoutTables   bool `yaml:"include_layout_tables"   json:"include_layout_tables"`
}

package model

// Window is a native window in a fixture file.
type Window struct {
	Handle   int    `yaml:"hwnd"             json:"hwnd"`
	Class    string `yaml:"class"            json:"class"`
	Parent   int    `yaml:"parent,omitempty" json:"parent,omitempty"`
	ThreadID int    `yaml:"thread,omitempty" json:"thread,omitempty"`
	Title    string `yaml:"title,omitempty"  json:"title,omitempty"`
}

package classify

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mj1618/outlook-a11y/internal/model"
)

func fixedVersion(v int, calls *int) func() int {
	return func() int {
		if calls != nil {
			*calls++
		}
		return v
	}
}

func parentClass(class string) func() string {
	return func() string { return class }
}

func TestChoose(t *testing.T) {
	client := &model.EventSource{ObjectID: model.ObjIDClient, ChildID: 0}
	tests := []struct {
		name    string
		sig     model.Signature
		generic []model.OverlayID
		parent  string
		version int
		want    []model.OverlayID
	}{
		{
			name: "uia leaf row",
			sig:  model.Signature{Backend: model.BackendUIA, Role: model.RoleDataItem, CachedClassName: "LeafRow"},
			want: []model.OverlayID{model.OverlayGridRow},
		},
		{
			name: "uia thread header",
			sig:  model.Signature{Backend: model.BackendUIA, Role: model.RoleTreeView, CachedClassName: "ThreadHeader"},
			want: []model.OverlayID{model.OverlayGridRow},
		},
		{
			name: "uia node never gets legacy overlays",
			sig:  model.Signature{Backend: model.BackendUIA, Role: model.RoleListItem, WindowClassName: ClassAddressBook},
			want: []model.OverlayID{},
		},
		{
			name:    "embedded form dialog loses caption behaviour",
			sig:     model.Signature{Role: model.RoleDialog, WindowClassName: "#32770"},
			generic: []model.OverlayID{model.OverlayDialog},
			parent:  ClassAfxWnd,
			want:    []model.OverlayID{},
		},
		{
			name:    "ordinary dialog keeps caption behaviour",
			sig:     model.Signature{Role: model.RoleDialog, WindowClassName: "#32770"},
			generic: []model.OverlayID{model.OverlayDialog},
			parent:  "rctrl_renwnd32",
			want:    []model.OverlayID{model.OverlayDialog},
		},
		{
			name:    "word document wrapped by mail body",
			sig:     model.Signature{Role: model.RoleEditableText, WindowClassName: "_WwG"},
			generic: []model.OverlayID{model.OverlayWordDocument},
			want:    []model.OverlayID{model.OverlayMailBody, model.OverlayWordDocument},
		},
		{
			name: "date picker button",
			sig:  model.Signature{Role: model.RoleButton, WindowControlID: ControlDatePicker},
			want: []model.OverlayID{model.OverlayDatePickerButton},
		},
		{
			name: "date picker cell",
			sig:  model.Signature{Role: model.RoleTableCell, WindowClassName: ClassRenWnd},
			want: []model.OverlayID{model.OverlayDatePickerCell},
		},
		{
			name: "checkbox list item",
			sig:  model.Signature{Role: model.RoleCheckBox, WindowClassName: ClassREListBox},
			want: []model.OverlayID{model.OverlayCheckboxListItem},
		},
		{
			name: "autocomplete in REListBox",
			sig:  model.Signature{Role: model.RoleListItem, WindowClassName: "REListBox20W"},
			want: []model.OverlayID{model.OverlayAutocompleteItem},
		},
		{
			name: "autocomplete in NetUI",
			sig:  model.Signature{Role: model.RoleListItem, WindowClassName: "NetUIHWND"},
			want: []model.OverlayID{model.OverlayAutocompleteItem},
		},
		{
			name: "address book entry",
			sig:  model.Signature{Role: model.RoleListItem, WindowClassName: ClassAddressBook},
			want: []model.OverlayID{model.OverlayAddressBookEntry},
		},
		{
			name:    "legacy message list",
			sig:     model.Signature{Role: model.RoleList, WindowClassName: ClassSuperGrid, WindowControlID: ControlSuperGrid},
			version: 9,
			want:    []model.OverlayID{model.OverlayLegacyMessages},
		},
		{
			name:    "modern grid client at client root",
			sig:     model.Signature{Role: model.RoleList, WindowClassName: ClassRenWnd, WindowControlID: ControlMessageList, EventSource: client},
			version: 16,
			want:    []model.OverlayID{model.OverlayGridClient},
		},
		{
			name:    "modern grid not at client root",
			sig:     model.Signature{Role: model.RoleList, WindowClassName: ClassRenWnd, WindowControlID: ControlMessageList, EventSource: &model.EventSource{ObjectID: model.ObjIDClient, ChildID: 4}},
			version: 16,
			want:    []model.OverlayID{},
		},
		{
			name:    "unknown version is not legacy",
			sig:     model.Signature{Role: model.RoleList, WindowClassName: ClassSuperGrid, WindowControlID: ControlSuperGrid, EventSource: client},
			version: 0,
			want:    []model.OverlayID{model.OverlayGridClient},
		},
		{
			name: "calendar afx view",
			sig:  model.Signature{Role: model.RolePane, WindowClassName: ClassAfxWnd, WindowControlID: ControlMessageList},
			want: []model.OverlayID{model.OverlayCalendarView},
		},
		{
			name: "calendar week view",
			sig:  model.Signature{Role: model.RolePane, WindowClassName: ClassWeekView},
			want: []model.OverlayID{model.OverlayCalendarView},
		},
		{
			name: "calendar day view",
			sig:  model.Signature{Role: model.RolePane, WindowClassName: ClassDayView},
			want: []model.OverlayID{model.OverlayCalendarView},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generic := tt.generic
			if generic == nil {
				generic = []model.OverlayID{}
			}
			got := Choose(tt.sig, generic, Context{
				ParentWindowClass: parentClass(tt.parent),
				Version:           fixedVersion(tt.version, nil),
			})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Choose mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChoose_AddressBookShortCircuits(t *testing.T) {
	calls := 0
	sig := model.Signature{Role: model.RoleListItem, WindowClassName: ClassAddressBook}
	Choose(sig, nil, Context{Version: fixedVersion(16, &calls)})
	if calls != 0 {
		t.Errorf("version consulted %d times after an address book match", calls)
	}
}

func TestChoose_VersionOnlyForMessageLists(t *testing.T) {
	calls := 0
	ctx := Context{Version: fixedVersion(16, &calls)}
	Choose(model.Signature{Role: model.RoleButton, WindowControlID: ControlDatePicker}, nil, ctx)
	if calls != 0 {
		t.Errorf("version consulted for a date picker button")
	}
	Choose(model.Signature{Role: model.RoleList, WindowClassName: ClassSuperGrid, WindowControlID: ControlSuperGrid}, nil, ctx)
	if calls != 1 {
		t.Errorf("version calls: got %d, want 1", calls)
	}
}

func TestChoose_DoesNotModifyInput(t *testing.T) {
	in := []model.OverlayID{model.OverlayDialog, model.OverlayWordDocument}
	Choose(model.Signature{Role: model.RoleDialog}, in, Context{ParentWindowClass: parentClass(ClassAfxWnd)})
	if in[0] != model.OverlayDialog || in[1] != model.OverlayWordDocument {
		t.Errorf("input modified: %v", in)
	}
}

func TestChoose_DialogRemovedWhateverElseMatches(t *testing.T) {
	sig := model.Signature{Role: model.RoleDialog, WindowClassName: ClassWeekView}
	got := Choose(sig, []model.OverlayID{model.OverlayDialog}, Context{ParentWindowClass: parentClass(ClassAfxWnd)})
	if model.ContainsOverlay(got, model.OverlayDialog) {
		t.Errorf("dialog behaviour kept: %v", got)
	}
	if !model.ContainsOverlay(got, model.OverlayCalendarView) {
		t.Errorf("calendar view missing: %v", got)
	}
}

func TestCorrect(t *testing.T) {
	tests := []struct {
		name string
		sig  model.Signature
		want Corrections
	}{
		{
			name: "plain text body",
			sig:  model.Signature{Role: model.RoleEditableText, WindowClassName: ClassRichEdit, WindowControlID: ControlPlainTextMsg},
			want: Corrections{ReparentToGrandparent: true},
		},
		{
			name: "rich edit elsewhere",
			sig:  model.Signature{Role: model.RoleEditableText, WindowClassName: ClassRichEdit, WindowControlID: 1},
			want: Corrections{},
		},
		{
			name: "html body pane",
			sig:  model.Signature{Role: model.RolePane, WindowClassName: ClassIEServer},
			want: Corrections{ReparentToGrandparent: true},
		},
		{
			name: "html document node stays",
			sig:  model.Signature{Role: model.RolePane, WindowClassName: ClassIEServer, Backend: model.BackendMSHTML},
			want: Corrections{},
		},
		{
			name: "menu item",
			sig:  model.Signature{Role: model.RoleMenuItem},
			want: Corrections{ClearDescription: true},
		},
		{
			name: "menu bar",
			sig:  model.Signature{Role: model.RoleMenuBar},
			want: Corrections{ClearDescription: true},
		},
		{
			name: "tree view item",
			sig:  model.Signature{Role: model.RoleTreeViewItem},
			want: Corrections{AllowFocusEvent: true},
		},
		{
			name: "supergrid unknown",
			sig:  model.Signature{Role: model.RoleUnknown, WindowClassName: ClassSuperGrid, WindowControlID: ControlSuperGrid},
			want: Corrections{Role: model.RoleListItem, RoleChanged: true},
		},
		{
			name: "renwnd unknown",
			sig:  model.Signature{Role: model.RoleUnknown, WindowClassName: ClassRenWnd, WindowControlID: ControlMessageList},
			want: Corrections{Role: model.RoleListItem, RoleChanged: true},
		},
		{
			name: "renwnd list is left alone",
			sig:  model.Signature{Role: model.RoleList, WindowClassName: ClassRenWnd, WindowControlID: ControlMessageList},
			want: Corrections{AllowFocusEvent: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Correct(tt.sig)); diff != "" {
				t.Errorf("Correct mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIsBadUIAWindow(t *testing.T) {
	for _, class := range []string{ClassWeekView, ClassDayView} {
		if !IsBadUIAWindow(class) {
			t.Errorf("%s should be bad", class)
		}
	}
	if IsBadUIAWindow(ClassSuperGrid) {
		t.Error("SUPERGRID should not be bad")
	}
}

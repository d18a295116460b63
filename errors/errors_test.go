package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseBuild,
				Kind:   KindNotFound,
				Path:   []string{"scene", "sidebar"},
				Detail: "parent not defined",
			},
			contains: []string{"[build]", "not_found", "scene.sidebar", "parent not defined"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindInvalidData,
			},
			contains: []string{"[decode]", "invalid_data"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseInit,
				Kind:   KindAllocation,
				Detail: "config",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[init]", "allocation", "config", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseResolve,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseBuild,
		Kind:  KindDuplicate,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseBuild, Kind: KindDuplicate}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindDuplicate}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseBuild, Kind: KindNotFound}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseBuild, Kind: KindDuplicate}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseBuild, KindInvalidData).
		Path("node", "width").
		Value("12pt").
		Cause(cause).
		Detail("bad dimension %q", "12pt").
		Build()

	if err.Phase != PhaseBuild {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseBuild)
	}
	if err.Kind != KindInvalidData {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidData)
	}
	if len(err.Path) != 2 || err.Path[0] != "node" || err.Path[1] != "width" {
		t.Errorf("Path = %v, want [node width]", err.Path)
	}
	if err.Value != "12pt" {
		t.Errorf("Value = %v, want 12pt", err.Value)
	}
	if !errors.Is(err, err) || !errors.Is(err.Unwrap(), cause) {
		t.Error("cause chain broken")
	}
	if err.Detail != `bad dimension "12pt"` {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestMissingExportsError(t *testing.T) {
	err := NewMissingExportsError([]string{"YGNodeNew", "YGNodeFree"})

	msg := err.Error()
	for _, s := range []string{"missing 2", "YGNodeNew", "YGNodeFree"} {
		if !strings.Contains(msg, s) {
			t.Errorf("message %q does not contain %q", msg, s)
		}
	}

	if !errors.Is(err, &MissingExportsError{}) {
		t.Error("errors.Is should match by type")
	}

	empty := NewMissingExportsError(nil)
	if !strings.Contains(empty.Error(), "no exports specified") {
		t.Errorf("empty message = %q", empty.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		err      error
		kind     Kind
		contains string
	}{
		{NotFound(PhaseBuild, "node", "root"), KindNotFound, `node "root" not found`},
		{Duplicate(PhaseBuild, "id", "root"), KindDuplicate, `id "root" already defined`},
		{InvalidInput(PhaseInit, "nil backend"), KindInvalidInput, "nil backend"},
		{Unsupported(PhaseResolve, "gap"), KindUnsupported, "gap"},
		{AllocationFailed(PhaseInit, "config"), KindAllocation, "no config"},
	}

	for _, tt := range tests {
		e, ok := tt.err.(*Error)
		if !ok {
			t.Fatalf("%v is not *Error", tt.err)
		}
		if e.Kind != tt.kind {
			t.Errorf("Kind = %v, want %v", e.Kind, tt.kind)
		}
		if !strings.Contains(e.Error(), tt.contains) {
			t.Errorf("message %q does not contain %q", e.Error(), tt.contains)
		}
	}
}

package chart

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "kind only",
			err:  &Error{Kind: InsufficientData},
			want: "chart: insufficient data",
		},
		{
			name: "chart and field",
			err:  &Error{Kind: MissingField, Chart: "line_chart", Field: "data"},
			want: "chart: line_chart: data: missing field",
		},
		{
			name: "with cause",
			err:  &Error{Kind: ResourceFailure, Chart: "pie_chart", Err: fs.ErrPermission},
			want: "chart: pie_chart: resource failure: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := error(&Error{Kind: ResourceFailure, Err: fs.ErrPermission})
	if !errors.Is(err, ErrResource) {
		t.Error("errors.Is(err, ErrResource) = false")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is(err, fs.ErrPermission) = false")
	}
	if errors.Is(err, ErrMissingField) {
		t.Error("errors.Is(err, ErrMissingField) = true")
	}
}

func TestKindOf(t *testing.T) {
	if k := KindOf(&Error{Kind: InvalidColor}); k != InvalidColor {
		t.Errorf("KindOf() = %v, want InvalidColor", k)
	}
	if k := KindOf(errors.New("plain")); k != 0 {
		t.Errorf("KindOf(plain) = %v, want 0", k)
	}
}

func TestKindString(t *testing.T) {
	for k := MissingField; k <= ResourceFailure; k++ {
		if s := k.String(); s == "" || strings.Contains(s, "unknown") {
			t.Errorf("Kind(%d).String() = %q", k, s)
		}
	}
	if s := Kind(0).String(); s != "unknown" {
		t.Errorf("Kind(0).String() = %q, want unknown", s)
	}
}

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "invalid route file",
			code:    CodeInvalidRouteFile,
			wantMsg: "Invalid route file",
			wantCat: CategoryRoute,
		},
		{
			name:    "duplicate route",
			code:    CodeDuplicateRoute,
			wantMsg: "Duplicate route detected",
			wantCat: CategoryRegistry,
		},
		{
			name:    "scan failure",
			code:    CodeScanFailed,
			wantMsg: "Route directory unreadable",
			wantCat: CategoryScan,
		},
		{
			name:    "unknown error code",
			code:    "R999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryScan, "directory %q not found", "app/routes")
	if err.Message != `directory "app/routes" not found` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Code != "" {
		t.Errorf("Code = %q, want empty", err.Code)
	}
}

func TestErrorString(t *testing.T) {
	err := New(CodeDuplicateRoute)
	want := "R003: Duplicate route detected"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	nocode := Newf(CategoryRoute, "bad file")
	if nocode.Error() != "bad file" {
		t.Errorf("Error() = %q, want %q", nocode.Error(), "bad file")
	}
}

func TestUnwrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := New(CodeScanFailed).Wrap(inner)

	if !stderrors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}

	var ee *EngineError
	if !stderrors.As(err, &ee) {
		t.Fatal("errors.As should match *EngineError")
	}
	if ee.Code != CodeScanFailed {
		t.Errorf("Code = %q, want %q", ee.Code, CodeScanFailed)
	}
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("register: %w", New(CodeDuplicateRoute))
	if !IsCode(err, CodeDuplicateRoute) {
		t.Error("IsCode should match through wrapping")
	}
	if IsCode(err, CodeScanFailed) {
		t.Error("IsCode should not match a different code")
	}
	if IsCode(fmt.Errorf("plain"), CodeDuplicateRoute) {
		t.Error("IsCode should not match a plain error")
	}
}

func TestWithFile(t *testing.T) {
	err := New(CodeInvalidParamName).WithFile("app/routes/[func].go")
	if err.Location == nil {
		t.Fatal("Location should be set")
	}
	if got := err.Location.String(); got != "app/routes/[func].go" {
		t.Errorf("Location = %q", got)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New(CodeInvalidRouteFile).WithFile("app/routes/users.go")
	out := err.Format()

	for _, want := range []string{
		"ERROR R001",
		"Invalid route file",
		"app/routes/users.go",
		"var Handler http.Handler",
		"func GET(c *router.Ctx)",
		"Learn more:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New(CodeDuplicateRoute).WithFile("app/routes/users.go")
	got := err.FormatCompact()
	want := "app/routes/users.go: R003: Duplicate route detected"
	if got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six seven eight nine ten", 20)
	for _, line := range lines {
		if len(line) > 20 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if strings.Join(lines, " ") != "one two three four five six seven eight nine ten" {
		t.Errorf("wrapText lost words: %v", lines)
	}
}

package eval

import "testing"

func strEnv(s string) map[string]any {
	return map[string]any{"value": s, "length": len(s)}
}

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		src  string
		in   string
		want bool
	}{
		{`value == "a"`, "a", true},
		{`value == "a"`, "b", false},
		{`value in ["a", "b"]`, "b", true},
		{`value not in ["e", "g"]`, "g", false},
		{`length > 1`, "ab", true},
		{`length > 1`, "a", false},
	}
	for _, tt := range tests {
		f, err := CompileFilter(tt.src, strEnv)
		if err != nil {
			t.Errorf("CompileFilter(%q): %v", tt.src, err)
			continue
		}
		if got := f(tt.in); got != tt.want {
			t.Errorf("%q on %q = %v, want %v", tt.src, tt.in, got, tt.want)
		}
	}
}

func TestCompileFilterErrors(t *testing.T) {
	for _, src := range []string{
		`value ==`,    // malformed
		`1 + 1`,       // not a boolean
		`value in [3`, // unterminated
	} {
		if _, err := CompileFilter(src, strEnv); err == nil {
			t.Errorf("CompileFilter(%q) compiled", src)
		}
	}
}

package platform

import (
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func newTestState(t *testing.T, info *Info) *lua.LState {
	t.Helper()
	L := lua.NewState()
	t.Cleanup(L.Close)
	if err := InjectPlatformTable(L, info); err != nil {
		t.Fatalf("InjectPlatformTable() error = %v", err)
	}
	return L
}

func evalString(t *testing.T, L *lua.LState, expr string) string {
	t.Helper()
	if err := L.DoString("result = " + expr); err != nil {
		t.Fatalf("eval %q: %v", expr, err)
	}
	return L.GetGlobal("result").String()
}

func TestInjectPlatformTableFields(t *testing.T) {
	info := &Info{
		OS:      "darwin",
		Arch:    "amd64",
		ArchRaw: "amd64",
	}
	L := newTestState(t, info)

	tests := []struct {
		expr string
		want string
	}{
		{"platform.os", "darwin"},
		{"platform.arch", "amd64"},
		{"platform.identifier", "x86_64-darwin"},
		{"tostring(platform.is_macos)", "true"},
		{"tostring(platform.is_linux)", "false"},
		{"tostring(platform.is_amd64)", "true"},
		{"tostring(platform.is_apple_silicon)", "false"},
		{"tostring(platform.distro)", "nil"},
	}

	for _, tt := range tests {
		if got := evalString(t, L, tt.expr); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.expr, got, tt.want)
		}
	}
}

func TestInjectPlatformTableDistro(t *testing.T) {
	info := &Info{
		OS:       "linux",
		Arch:     "arm64",
		ArchRaw:  "arm64",
		Platform: "ubuntu",
		Family:   FamilyDebian,
		Version:  "22.04",
	}
	L := newTestState(t, info)

	if got := evalString(t, L, "platform.distro.id"); got != "ubuntu" {
		t.Errorf("distro.id = %q, want ubuntu", got)
	}
	if got := evalString(t, L, "platform.distro.family"); got != FamilyDebian {
		t.Errorf("distro.family = %q, want %q", got, FamilyDebian)
	}
	if got := evalString(t, L, "platform.identifier"); got != "aarch64-linux" {
		t.Errorf("identifier = %q, want aarch64-linux", got)
	}
}

func TestPlatformWhenHelper(t *testing.T) {
	info := &Info{OS: "darwin", Arch: "amd64", ArchRaw: "amd64"}
	L := newTestState(t, info)

	if got := evalString(t, L, `platform.when(platform.is_macos, "Security")`); got != "Security" {
		t.Errorf("when(true, v) = %q, want Security", got)
	}
	if got := evalString(t, L, `tostring(platform.when(platform.is_linux, "Security"))`); got != "nil" {
		t.Errorf("when(false, v) = %q, want nil", got)
	}
}

func TestPlatformTableIsReadOnly(t *testing.T) {
	info := &Info{OS: "linux", Arch: "amd64", ArchRaw: "amd64"}
	L := newTestState(t, info)

	if err := L.DoString(`platform.os = "windows"`); err == nil {
		t.Error("expected write to platform table to fail")
	}
	if err := L.DoString(`platform.injected = true`); err == nil {
		t.Error("expected adding a key to platform table to fail")
	}

	// Reads still work after the rejected writes.
	if got := evalString(t, L, "platform.os"); got != "linux" {
		t.Errorf("platform.os = %q after failed write, want linux", got)
	}
}

package shell

import (
	"testing"
)

func TestParseShellFromPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ShellType
	}{
		{"bash", "/bin/bash", ShellBash},
		{"zsh", "/usr/bin/zsh", ShellZsh},
		{"fish", "/usr/local/bin/fish", ShellFish},
		{"uppercase base", "/bin/BASH", ShellBash},
		{"unknown shell", "/bin/tcsh", ShellUnknown},
		{"bare name", "zsh", ShellZsh},
		{"empty", "", ShellUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseShellFromPath(tt.input); got != tt.want {
				t.Errorf("parseShellFromPath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDetectShellFromEnv(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/zsh")

	result, err := DetectShell()
	if err != nil {
		t.Fatalf("DetectShell() error = %v", err)
	}
	if result.Shell != ShellZsh {
		t.Errorf("Shell = %v, want zsh", result.Shell)
	}
	if result.Confidence != "high" {
		t.Errorf("Confidence = %q, want high", result.Confidence)
	}
}

func TestDetectShellUnknown(t *testing.T) {
	t.Setenv("SHELL", "/bin/tcsh")

	result, err := DetectShell()
	if err != nil {
		t.Fatalf("DetectShell() error = %v", err)
	}
	if result.Shell != ShellUnknown {
		t.Errorf("Shell = %v, want unknown", result.Shell)
	}
}

func TestParseShellName(t *testing.T) {
	tests := []struct {
		input   string
		want    ShellType
		wantErr bool
	}{
		{"bash", ShellBash, false},
		{"ZSH", ShellZsh, false},
		{" fish ", ShellFish, false},
		{"powershell", ShellUnknown, true},
		{"", ShellUnknown, true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			got, err := ParseShellName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseShellName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseShellName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateShell(t *testing.T) {
	for _, s := range GetSupportedShells() {
		if err := ValidateShell(s); err != nil {
			t.Errorf("ValidateShell(%v) = %v, want nil", s, err)
		}
	}
	if err := ValidateShell(ShellUnknown); err == nil {
		t.Error("ValidateShell(unknown) = nil, want error")
	}
}

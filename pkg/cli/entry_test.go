package cli

import "testing"

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		file     string
		typeName string
		input    string
		output   string
		wantErr  bool
	}{
		{
			name: "file only",
			args: []string{"sensors.ads"},
			file: "sensors.ads",
		},
		{
			name:     "file and type",
			args:     []string{"sensors.ads", "Reading"},
			file:     "sensors.ads",
			typeName: "Reading",
		},
		{
			name:     "flags",
			args:     []string{"-input", "Item", "-o", "-", "sensors.ads", "Reading"},
			file:     "sensors.ads",
			typeName: "Reading",
			input:    "Item",
			output:   "-",
		},
		{
			name:    "no file",
			args:    []string{},
			wantErr: true,
		},
		{
			name:    "too many positionals",
			args:    []string{"a.ads", "B", "C"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-frob", "a.ads"},
			wantErr: true,
		},
		{
			name:    "missing flag value",
			args:    []string{"a.ads", "-input"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", opts)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseArgs: %v", err)
			}
			if opts.file != tt.file || opts.typeName != tt.typeName ||
				opts.inputName != tt.input || opts.output != tt.output {
				t.Errorf("parseArgs(%v) = %+v", tt.args, opts)
			}
		})
	}
}

func TestIsSourceFile(t *testing.T) {
	exts := []string{".ads", ".ada"}
	if !isSourceFile("pack/sensors.ADS", exts) {
		t.Errorf("case-insensitive extension not matched")
	}
	if isSourceFile("sensors.txt", exts) {
		t.Errorf("unrelated extension matched")
	}
}

package adatypes

import "testing"

func TestLookupBuiltin(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
	}{
		{"Integer", KindScalar},
		{"BOOLEAN", KindScalar},
		{"float", KindScalar},
		{"String", KindArray},
		{"Wide_String", KindArray},
	}
	for _, tt := range tests {
		def, ok := LookupBuiltin(tt.name)
		if !ok {
			t.Errorf("LookupBuiltin(%s) not found", tt.name)
			continue
		}
		if def.Kind() != tt.kind {
			t.Errorf("LookupBuiltin(%s).Kind() = %s, want %s", tt.name, def.Kind(), tt.kind)
		}
	}
	if _, ok := LookupBuiltin("Sensor"); ok {
		t.Errorf("LookupBuiltin(Sensor) should not resolve")
	}
}

func TestStringBuiltinIsCharacterArray(t *testing.T) {
	def, ok := LookupBuiltin("String")
	if !ok {
		t.Fatal("String not recognized")
	}
	arr := def.(Array)
	if !arr.IsString || arr.Element.Name != "Character" {
		t.Errorf("String = %+v, want character-element array", arr)
	}
}

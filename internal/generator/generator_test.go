package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/tunner/ada-struct-validation/internal/adatypes"
	"github.com/tunner/ada-struct-validation/internal/registry"
)

func build(t *testing.T, src string) *registry.Registry {
	t.Helper()
	reg, err := registry.Build(src)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return reg
}

func TestGenerateStringAndBoolean(t *testing.T) {
	reg := build(t, `
   type Sensor is record
      Name    : String (1 .. 20);
      Enabled : Boolean;
   end record;`)

	got, err := Generate(reg, "Sensor", "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := `function Is_Valid (Input : Sensor) return Boolean is
   Valid : Boolean := True;
begin
   for I_Name_1 in Input.Name'Range loop
      Valid := Valid AND Input.Name (I_Name_1)'Valid;
   end loop;
   Valid := Valid AND Input.Enabled'Valid;
   return Valid;
end Is_Valid;
`
	if got != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateNestedArrays(t *testing.T) {
	reg := build(t, `
   type Samples is array (1 .. 3) of Float;
   type Sensor_State is record
      Level   : Float;
      History : Samples;
   end record;
   type State_Array is array (1 .. 2) of Sensor_State;
   type Device is record
      States : State_Array;
   end record;`)

	got, err := Generate(reg, "Device", "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := `function Is_Valid (Input : Device) return Boolean is
   Valid : Boolean := True;
begin
   for I_States_1 in Input.States'Range loop
      Valid := Valid AND Input.States (I_States_1).Level'Valid;
      for I_History_2 in Input.States (I_States_1).History'Range loop
         Valid := Valid AND Input.States (I_States_1).History (I_History_2)'Valid;
      end loop;
   end loop;
   return Valid;
end Is_Valid;
`
	if got != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestLoopVariableNamesDifferAlongNesting(t *testing.T) {
	// record -> array -> record -> array, arbitrarily deep: every loop
	// lexically enclosing another must use a different variable.
	reg := build(t, `
   type Inner_Row is array (1 .. 2) of Integer;
   type Cell is record
      Row : Inner_Row;
   end record;
   type Grid is array (1 .. 2) of Cell;
   type Board is record
      Rows : Grid;
   end record;
   type Stack is array (1 .. 2) of Board;
   type Top is record
      Boards : Stack;
   end record;`)

	got, err := Generate(reg, "Top", "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	vars := []string{"I_Boards_1", "I_Rows_2", "I_Row_3"}
	for _, v := range vars {
		if !strings.Contains(got, "for "+v+" in ") {
			t.Errorf("missing loop variable %s in:\n%s", v, got)
		}
	}
}

func TestLeafCountInvariant(t *testing.T) {
	// 1 (Id) + 2*3 (Pair of Triple of Float) + 1 (Flag) = 8 leaves.
	src := `
   type Triple is array (1 .. 3) of Float;
   type Pairs is array (1 .. 2) of Triple;
   type Packet is record
      Id   : Integer;
      Data : Pairs;
      Flag : Boolean;
   end record;`
	permuted := `
   type Packet is record
      Id   : Integer;
      Data : Pairs;
      Flag : Boolean;
   end record;
   type Pairs is array (1 .. 2) of Triple;
   type Triple is array (1 .. 3) of Float;`

	for _, source := range []string{src, permuted} {
		got, err := Generate(build(t, source), "Packet", "")
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		// Fixed-size bounds are never unrolled: one check per distinct
		// leaf path, arrays covered by loops.
		if n := strings.Count(got, "'Valid;"); n != 3 {
			t.Errorf("got %d leaf checks, want 3:\n%s", n, got)
		}
		if n := strings.Count(got, ":= Valid AND "); n != 3 {
			t.Errorf("got %d AND accumulations, want 3:\n%s", n, got)
		}
		if n := strings.Count(got, "'Range loop"); n != 2 {
			t.Errorf("got %d loops, want 2:\n%s", n, got)
		}
	}
}

func TestIdempotence(t *testing.T) {
	src := `
   type Reading is record
      Value : Float;
      Tag   : String (1 .. 8);
   end record;`
	first, err := Generate(build(t, src), "Reading", "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := Generate(build(t, src), "Reading", "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if first != second {
		t.Errorf("output not byte-identical across runs")
	}
}

func TestAliasTransparency(t *testing.T) {
	direct := `
   type R is record
      X : Integer;
   end record;`
	aliased := `
   subtype Mid is Integer;
   subtype Deep is Mid;
   type R is record
      X : Deep;
   end record;`

	a, err := Generate(build(t, direct), "R", "")
	if err != nil {
		t.Fatalf("Generate(direct): %v", err)
	}
	b, err := Generate(build(t, aliased), "R", "")
	if err != nil {
		t.Fatalf("Generate(aliased): %v", err)
	}
	if a != b {
		t.Errorf("alias chain changed emission:\ndirect:\n%s\naliased:\n%s", a, b)
	}
}

func TestInputNameOverride(t *testing.T) {
	reg := build(t, `type R is record X : Integer; end record;`)
	got, err := Generate(reg, "R", "Item")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(got, "function Is_Valid (Item : R) return Boolean is") {
		t.Errorf("parameter name not overridden:\n%s", got)
	}
	if !strings.Contains(got, "Item.X'Valid") {
		t.Errorf("paths do not use the overridden name:\n%s", got)
	}
}

func TestUnknownTypeAbortsWithNoOutput(t *testing.T) {
	reg := build(t, `
   type R is record
      A : Integer;
      B : Ghost;
   end record;`)
	got, err := Generate(reg, "R", "")
	var unknown *adatypes.UnknownTypeError
	if !errors.As(err, &unknown) {
		t.Fatalf("got %v, want UnknownTypeError", err)
	}
	if got != "" {
		t.Errorf("partial output emitted: %q", got)
	}
	if unknown.Path != "Input.B" {
		t.Errorf("error path = %q, want Input.B", unknown.Path)
	}
}

func TestUnsupportedConstructAborts(t *testing.T) {
	reg := build(t, `
   type Handle is access Integer;
   type R is record
      H : Handle;
   end record;`)
	got, err := Generate(reg, "R", "")
	var unsupported *adatypes.UnsupportedConstructError
	if !errors.As(err, &unsupported) {
		t.Fatalf("got %v, want UnsupportedConstructError", err)
	}
	if got != "" {
		t.Errorf("partial output emitted: %q", got)
	}
}

func TestEnumerationUsesScalarRule(t *testing.T) {
	reg := build(t, `
   type Mode is (Off, On);
   type R is record
      M : Mode;
   end record;`)
	got, err := Generate(reg, "R", "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(got, "Valid := Valid AND Input.M'Valid;") {
		t.Errorf("enumeration leaf not checked like a scalar:\n%s", got)
	}
	if strings.Contains(got, "loop") {
		t.Errorf("enumeration introduced a loop:\n%s", got)
	}
}

func TestGenerateFileHeader(t *testing.T) {
	reg := build(t, `type R is record X : Integer; end record;`)
	got, err := GenerateFile(reg, "R", "")
	if err != nil {
		t.Fatalf("GenerateFile: %v", err)
	}
	if !strings.HasPrefix(got, "--  Generated validation function for R\n") {
		t.Errorf("missing header:\n%s", got)
	}
	if !strings.Contains(got, "function Is_Valid (Input : R) return Boolean is") {
		t.Errorf("missing function body:\n%s", got)
	}
}

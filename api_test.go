package enum_test

import (
	"testing"

	"github.com/zoobzio/enum"
)

func TestItem(t *testing.T) {
	d := enum.Item[uint16]("Admin", 8)

	if d.Name != "Admin" || d.Value != 8 || d.Display != "" {
		t.Errorf("Item() = %+v", d)
	}
}

func TestDecl_Labeled(t *testing.T) {
	base := enum.Item("DarkBlue", 3)
	labeled := base.Labeled("Dark Blue")

	if labeled.Display != "Dark Blue" {
		t.Errorf("Display = %q, want %q", labeled.Display, "Dark Blue")
	}
	if base.Display != "" {
		t.Error("Labeled() should not modify the receiver")
	}
	if labeled.Name != base.Name || labeled.Value != base.Value {
		t.Error("Labeled() should keep name and value")
	}
}

func TestDeclarer(t *testing.T) {
	var d enum.Declarer[uint8] = Permission{}

	def := d.Definition()
	if def.Name != "Permission" || !def.Flags || len(def.Members) != 4 {
		t.Errorf("Definition() = %+v", def)
	}
}

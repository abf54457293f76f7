package benchmarks

import (
	"testing"

	"github.com/zoobzio/enum"
	enumtest "github.com/zoobzio/enum/testing"
)

func BenchmarkType_FromRaw_Registered(b *testing.B) {
	perms := enum.MustUse[enumtest.Permission, uint8]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = perms.FromRaw(2)
	}
}

func BenchmarkType_FromRaw_Transient(b *testing.B) {
	perms := enum.MustUse[enumtest.Permission, uint8]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = perms.FromRaw(6)
	}
}

func BenchmarkType_Format_Plain(b *testing.B) {
	colors := enum.MustUse[enumtest.Color, int]()
	m := colors.MustMember("DarkBlue")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = colors.Format(m)
	}
}

func BenchmarkType_Format_Decomposed(b *testing.B) {
	perms := enum.MustUse[enumtest.Permission, uint8]()
	m := perms.FromRaw(7)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = perms.Format(m)
	}
}

func BenchmarkType_Parse_Plain(b *testing.B) {
	colors := enum.MustUse[enumtest.Color, int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = colors.Parse("Dark Blue")
	}
}

func BenchmarkType_Parse_Flags(b *testing.B) {
	perms := enum.MustUse[enumtest.Permission, uint8]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = perms.Parse("Read, Write, Execute")
	}
}

func BenchmarkType_Or(b *testing.B) {
	perms := enum.MustUse[enumtest.Permission, uint8]()
	read := perms.MustMember("Read")
	write := perms.MustMember("Write")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = perms.Or(read, write)
	}
}

func BenchmarkUse_Cached(b *testing.B) {
	_ = enum.MustUse[enumtest.Color, int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = enum.Use[enumtest.Color, int]()
	}
}

func BenchmarkFingerprint(b *testing.B) {
	perms := enum.MustUse[enumtest.Permission, uint8]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = perms.Fingerprint()
	}
}

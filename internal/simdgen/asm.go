// Command simdgen generates a hardware SIMD group matcher for amd64: a
// 16-byte group compare using PCMPEQB/PMOVMSKB.
//
// Run from the repository root with: go generate ./...
//
// Broadcast-via-PSHUFB, MOVOU load, PCMPEQB compare, PMOVMSKB extract --
// named to the symbol the swissset matcher capability would expect, with
// the mask narrowed to the 16 bits a 16-byte group actually produces.
package main

import (
	. "github.com/mmcloughlin/avo/build"
	"github.com/mmcloughlin/avo/operand"
)

func main() {
	TEXT("matchGroup16Asm", NOSPLIT, "func(tag uint8, group *[16]byte) (mask uint16, ok bool)")
	Doc("matchGroup16Asm compares a 16-byte group against a broadcast tag",
		"using SSE2 PCMPEQB, returning a per-position bitmask.")

	n := Load(Param("group"), GP64())
	CMPQ(n, operand.Imm(0))
	JNE(operand.LabelRef("valid"))
	result := GP32()
	XORL(result, result)
	Store(result, ReturnIndex(0))
	okZero, err := ReturnIndex(1).Resolve()
	if err != nil {
		panic(err)
	}
	MOVB(operand.Imm(0), okZero.Addr)
	RET()

	Label("valid")
	tag := Load(Param("tag"), GP32())
	ptr := Load(Param("group"), GP64())

	broadcast, loaded, group := XMM(), XMM(), XMM()
	PXOR(broadcast, broadcast)
	MOVD(tag, loaded)
	PSHUFB(broadcast, loaded)

	MOVOU(operand.Mem{Base: ptr}, group)
	PCMPEQB(group, loaded)
	PMOVMSKB(loaded, result)

	Store(result, ReturnIndex(0))
	ok, err := ReturnIndex(1).Resolve()
	if err != nil {
		panic(err)
	}
	MOVB(operand.Imm(1), ok.Addr)
	RET()

	Generate()
}

package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/goplus/cequiv/aggregate"
	"github.com/goplus/cequiv/arith"
	"github.com/goplus/cequiv/control"
	"github.com/goplus/cequiv/generic"
	"github.com/goplus/cequiv/indirect"
	"github.com/goplus/cequiv/memref"
)

// entries is kept sorted by name.
var entries = []*Entry{
	{
		Name:     "access_array",
		Category: CatMemory,
		Symbols:  []string{"memref.AccessArray", "memref.Access"},
		Policy:   PolicySentinel,
		Notes: "The C counterpart indexes arr[10 + index] with an unsigned index and relies on " +
			"wraparound; out of range indices return -1 here instead of reading past the array.",
		Check: checkAccessArray,
	},
	{
		Name:     "add",
		Category: CatArith,
		Symbols:  []string{"arith.Add"},
		Policy:   PolicyWrap,
		Notes:    "Signed overflow is undefined in C (add nsw); Go wraps, so the Go side is more defined.",
		Check:    checkAdd,
	},
	{
		Name:     "add_u32",
		Category: CatArith,
		Symbols:  []string{"arith.AddU32"},
		Policy:   PolicyWrap,
		Notes:    "Unsigned addition wraps on both sides.",
		Check:    checkAddU32,
	},
	{
		Name:     "atomic",
		Category: CatMemory,
		Symbols:  []string{"memref.FetchAdd", "memref.Load", "memref.Store", "memref.Counter"},
		Policy:   PolicyWrap,
		Notes:    "Plain memory operations; memref.Counter provides the atomic variant.",
		Check:    checkAtomic,
	},
	{
		Name:     "binary_search",
		Category: CatControl,
		Symbols:  []string{"control.BinarySearch", "control.BinarySearchInt32"},
		Policy:   PolicySentinel,
		Notes: "The C counterpart takes raw pointers that may be null; the Go slice and " +
			"pointer parameters are assumed valid.",
		Check: checkBinarySearch,
	},
	{
		Name:     "bitfield_ops",
		Category: CatArith,
		Symbols:  []string{"arith.ExtractBits"},
		Policy:   PolicyUnchecked,
		Notes:    "start+length must not exceed 32; larger shifts follow Go shift semantics.",
		Check:    checkBitfield,
	},
	{
		Name:     "callback",
		Category: CatIndirect,
		Symbols:  []string{"indirect.Process"},
		Policy:   PolicyTotal,
		Check:    checkCallback,
	},
	{
		Name:     "clone",
		Category: CatAggregate,
		Symbols:  []string{"aggregate.ClonePointAndReadX", "aggregate.Point.Clone"},
		Policy:   PolicyTotal,
		Check:    checkClone,
	},
	{
		Name:     "deref",
		Category: CatMemory,
		Symbols:  []string{"memref.Deref"},
		Policy:   PolicyUnchecked,
		Notes:    "The pointer must be non-nil; a nil pointer panics in Go where C faults.",
		Check:    checkDeref,
	},
	{
		Name:     "factorial",
		Category: CatArith,
		Symbols:  []string{"arith.Factorial", "arith.FactorialIter"},
		Policy:   PolicyWrap,
		Notes:    "Recursive form has no depth guard; FactorialIter gives the same results iteratively.",
		Check:    checkFactorial,
	},
	{
		Name:     "initialize_array",
		Category: CatMemory,
		Symbols:  []string{"memref.InitializeArray"},
		Policy:   PolicyTotal,
		Check:    checkInitializeArray,
	},
	{
		Name:     "nested_switch",
		Category: CatControl,
		Symbols:  []string{"control.ProcessTokens"},
		Policy:   PolicySentinel,
		Notes:    "C case fallthrough is expressed with Go fallthrough; arithmetic wraps.",
		Check:    checkNestedSwitch,
	},
	{
		Name:     "simple_enum",
		Category: CatAggregate,
		Symbols:  []string{"aggregate.CreateColor", "aggregate.CreateColorUnchecked"},
		Policy:   PolicyUnchecked,
		Notes: "CreateColor rejects values outside {0,1,2}; CreateColorUnchecked mirrors the C " +
			"static_cast and may produce a tag with no declared variant.",
		Check: checkSimpleEnum,
	},
	{
		Name:     "simple_generic",
		Category: CatGeneric,
		Symbols:  []string{"generic.AddGeneric", "generic.AddGenericInt", "generic.AddGenericFloat"},
		Policy:   PolicyWrap,
		Check:    checkSimpleGeneric,
	},
	{
		Name:     "simple_reference",
		Category: CatMemory,
		Symbols:  []string{"memref.Swap"},
		Policy:   PolicyTotal,
		Notes:    "Aliasing pointers are allowed and leave the value unchanged.",
		Check:    checkSimpleReference,
	},
	{
		Name:     "simple_struct",
		Category: CatAggregate,
		Symbols:  []string{"aggregate.CreatePoint"},
		Policy:   PolicyTotal,
		Check:    checkSimpleStruct,
	},
	{
		Name:     "str_len",
		Category: CatMemory,
		Symbols:  []string{"memref.StrLen"},
		Policy:   PolicyTotal,
		Notes:    "The bound is clamped to len(s), so a short buffer never causes an out of range read.",
		Check:    checkStrLen,
	},
	{
		Name:     "switch_case",
		Category: CatControl,
		Symbols:  []string{"control.ClassifyChar"},
		Policy:   PolicyTotal,
		Notes:    "The input is a signed byte; negative values classify as other.",
		Check:    checkSwitchCase,
	},
	{
		Name:     "union",
		Category: CatAggregate,
		Symbols:  []string{"aggregate.IntBitsToFloat", "aggregate.IntFloat"},
		Policy:   PolicyTotal,
		Notes:    "Overlapping storage is modeled with an explicit bit cast.",
		Check:    checkUnion,
	},
}

// -----------------------------------------------------------------------------

func checkAccessArray() error {
	for i := int32(0); i < memref.ArrayLen; i++ {
		if err := expect(fmt.Sprintf("AccessArray(%d)", i), memref.AccessArray(i), i); err != nil {
			return err
		}
	}
	for _, i := range []int32{-1, 10, math.MaxInt32, math.MinInt32} {
		if err := expect(fmt.Sprintf("AccessArray(%d)", i), memref.AccessArray(i), -1); err != nil {
			return err
		}
	}
	return nil
}

func checkAdd() error {
	return firstErr(
		expect("Add(1, 2)", arith.Add(1, 2), 3),
		expect("Add(MaxInt32, 1)", arith.Add(math.MaxInt32, 1), math.MinInt32),
		expect("Add(MinInt32, -1)", arith.Add(math.MinInt32, -1), math.MaxInt32),
	)
}

func checkAddU32() error {
	return firstErr(
		expect("AddU32(1, 2)", arith.AddU32(1, 2), 3),
		expect("AddU32(MaxUint32, 1)", arith.AddU32(math.MaxUint32, 1), 0),
	)
}

func checkAtomic() error {
	var cell int32
	memref.Store(&cell, 0)
	if err := expect("FetchAdd(&cell, 5)", memref.FetchAdd(&cell, 5), 0); err != nil {
		return err
	}
	if err := expect("Load(&cell)", memref.Load(&cell), 5); err != nil {
		return err
	}
	if err := expect("FetchAdd(&cell, -3)", memref.FetchAdd(&cell, -3), 5); err != nil {
		return err
	}
	if err := expect("Load(&cell)", memref.Load(&cell), 2); err != nil {
		return err
	}

	var c memref.Counter
	c.Store(0)
	if err := expect("Counter.FetchAdd(5)", c.FetchAdd(5), 0); err != nil {
		return err
	}
	if err := expect("Counter.FetchAdd(-3)", c.FetchAdd(-3), 5); err != nil {
		return err
	}
	return expect("Counter.Load()", c.Load(), 2)
}

func checkBinarySearch() error {
	arr := []int32{1, 2, 3, 4, 5}
	search := func(target int32) int64 {
		return control.BinarySearch(arr, &target)
	}
	search32 := func(target int32) int32 {
		return control.BinarySearchInt32(arr, int64(len(arr)), &target)
	}
	empty := int32(1)
	return firstErr(
		expect("BinarySearch(arr, 3)", search(3), 2),
		expect("BinarySearch(arr, 6)", search(6), -1),
		expect("BinarySearch(arr, 1)", search(1), 0),
		expect("BinarySearch([], 1)", control.BinarySearch([]int32{}, &empty), -1),
		expect("BinarySearchInt32(arr, 3)", search32(3), 2),
		expect("BinarySearchInt32(arr, 6)", search32(6), -1),
		expect("BinarySearchInt32(arr, 1)", search32(1), 0),
		expect("BinarySearchInt32([], 1)", control.BinarySearchInt32(nil, 0, &empty), -1),
	)
}

func checkBitfield() error {
	return firstErr(
		expect("ExtractBits(0b10110110, 1, 3)", arith.ExtractBits(0b1011_0110, 1, 3), 3),
		expect("ExtractBits(0xdeadbeef, 16, 16)", arith.ExtractBits(0xdeadbeef, 16, 16), 0xdead),
	)
}

func checkCallback() error {
	inc := func(x int32) int32 { return x + 1 }
	return firstErr(
		expect("Process(inc, 41)", indirect.Process(inc, 41), 42),
		expect("Process(inc, MaxInt32)", indirect.Process(inc, math.MaxInt32), math.MinInt32),
	)
}

func checkClone() error {
	if err := expect("ClonePointAndReadX(3, 4)", aggregate.ClonePointAndReadX(3, 4), 3); err != nil {
		return err
	}
	p := aggregate.CreatePoint(1, 2)
	clone := p.Clone()
	clone.X = 100
	return expect("p.X after clone.X = 100", p.X, 1)
}

func checkDeref() error {
	v := int32(-7)
	return expect("Deref(&v)", memref.Deref(&v), -7)
}

func checkFactorial() error {
	for _, c := range []struct{ n, want int32 }{{0, 1}, {1, 1}, {5, 120}, {13, 1932053504}, {-3, 1}} {
		if err := firstErr(
			expect(fmt.Sprintf("Factorial(%d)", c.n), arith.Factorial(c.n), c.want),
			expect(fmt.Sprintf("FactorialIter(%d)", c.n), arith.FactorialIter(c.n), c.want),
		); err != nil {
			return err
		}
	}
	return nil
}

func checkInitializeArray() error {
	arr := memref.InitializeArray()
	for i, v := range arr {
		if err := expect(fmt.Sprintf("InitializeArray()[%d]", i), v, int32(i)); err != nil {
			return err
		}
	}
	return nil
}

func checkNestedSwitch() error {
	for _, c := range []struct {
		typ   int8
		value int32
		want  int32
	}{
		{'n', 0, -1}, {'n', 1, 10}, {'n', 150, 100}, {'n', 10, 0}, {'n', 40, 90},
		{'c', 10, 0}, {'s', 10, 60}, {'x', 0, -99},
	} {
		expr := fmt.Sprintf("ProcessTokens(%q, %d)", rune(c.typ), c.value)
		if err := expect(expr, control.ProcessTokens(c.typ, c.value), c.want); err != nil {
			return err
		}
	}
	return nil
}

func checkSimpleEnum() error {
	for x, want := range []aggregate.Color{aggregate.Red, aggregate.Green, aggregate.Blue} {
		c, err := aggregate.CreateColor(int32(x))
		if err != nil {
			return err
		}
		if err = expect(fmt.Sprintf("CreateColor(%d)", x), c, want); err != nil {
			return err
		}
	}
	if _, err := aggregate.CreateColor(3); !errors.Is(err, aggregate.ErrColorOutOfRange) {
		return fmt.Errorf("CreateColor(3): err = %v, want %v", err, aggregate.ErrColorOutOfRange)
	}
	return expect("CreateColorUnchecked(2)", aggregate.CreateColorUnchecked(2), aggregate.Blue)
}

func checkSimpleGeneric() error {
	return firstErr(
		expect("AddGenericInt(MaxInt32, 1)", generic.AddGenericInt(math.MaxInt32, 1), math.MinInt32),
		expect("AddGenericFloat(1.25, 2.25)", generic.AddGenericFloat(1.25, 2.25), 3.5),
	)
}

func checkSimpleReference() error {
	a, b := int32(1), int32(2)
	memref.Swap(&a, &b)
	if err := firstErr(expect("a after Swap", a, 2), expect("b after Swap", b, 1)); err != nil {
		return err
	}
	c := int32(9)
	memref.Swap(&c, &c)
	return expect("c after Swap(&c, &c)", c, 9)
}

func checkSimpleStruct() error {
	return expect("CreatePoint(3, -4)", aggregate.CreatePoint(3, -4), aggregate.Point{X: 3, Y: -4})
}

func checkStrLen() error {
	return firstErr(
		expect(`StrLen("abc\x00d", 8)`, memref.StrLen([]byte("abc\x00d"), 8), 3),
		expect(`StrLen("abcdef", 2)`, memref.StrLen([]byte("abcdef"), 2), 2),
	)
}

func checkSwitchCase() error {
	for _, c := range []struct {
		c    int8
		want int32
	}{
		{' ', control.CharSpace}, {'\t', control.CharSpace}, {'\n', control.CharSpace},
		{'0', control.CharDigit}, {'9', control.CharDigit},
		{'a', control.CharLetter}, {'Z', control.CharLetter},
		{'$', control.CharOther}, {-1, control.CharOther},
	} {
		if err := expect(fmt.Sprintf("ClassifyChar(%d)", c.c), control.ClassifyChar(c.c), c.want); err != nil {
			return err
		}
	}
	return nil
}

func checkUnion() error {
	return expect("IntBitsToFloat(0x3F800000)", aggregate.IntBitsToFloat(0x3F800000), 1.0)
}
